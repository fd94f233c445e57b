package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/middleware"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

type UserHandler struct {
	Log logging.Logger
}

func NewUserHandler(log logging.Logger) *UserHandler {
	return &UserHandler{Log: log}
}

// Get returns the identity stored at login plus the resolved data center.
// No upstream call: the session already carries everything the UI shows.
func (h *UserHandler) Get(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if s == nil {
		util.Error(c, 401, "unauthorized")
		return
	}

	util.Success(c, util.Response{
		"user": s.User,
		"dataCenter": gin.H{
			"code": s.DataCenter.Code,
			"name": s.DataCenter.Name,
		},
	})
}
