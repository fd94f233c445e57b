package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

type MailHandler struct {
	Log logging.Logger
}

func NewMailHandler(log logging.Logger) *MailHandler {
	return &MailHandler{Log: log}
}

func (h *MailHandler) List(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	messages, err := client.MailMessages(c.Request.Context())
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch mail", "messages")
		return
	}
	util.Success(c, util.Response{"messages": messages})
}
