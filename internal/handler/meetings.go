package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

// MeetingHandler serves the Meetings-family listings. Upstream failures map
// to 500 with an empty collection so the UI can tell "failed" from "empty".
type MeetingHandler struct {
	Log logging.Logger
}

func NewMeetingHandler(log logging.Logger) *MeetingHandler {
	return &MeetingHandler{Log: log}
}

func (h *MeetingHandler) List(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	meetings, err := client.Meetings(c.Request.Context())
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch meetings", "meetings")
		return
	}
	util.Success(c, util.Response{"meetings": meetings})
}

func (h *MeetingHandler) Recordings(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	recordings, err := client.MeetingRecordings(c.Request.Context())
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch recordings", "recordings")
		return
	}
	util.Success(c, util.Response{"recordings": recordings})
}

func (h *MeetingHandler) SharedRecordings(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	recordings, err := client.SharedRecordings(c.Request.Context())
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch shared recordings", "recordings")
		return
	}
	util.Success(c, util.Response{"recordings": recordings})
}

func (h *MeetingHandler) Participants(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	participants, err := client.MeetingParticipants(c.Request.Context(), c.Param("sessionKey"))
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch participants", "participants")
		return
	}
	util.Success(c, util.Response{"participants": participants})
}
