package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

type CourseHandler struct {
	Log logging.Logger
}

func NewCourseHandler(log logging.Logger) *CourseHandler {
	return &CourseHandler{Log: log}
}

func (h *CourseHandler) List(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	courses, err := client.LearnCourses(c.Request.Context())
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch courses", "courses")
		return
	}
	util.Success(c, util.Response{"courses": courses})
}
