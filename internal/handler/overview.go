package handler

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

// OverviewHandler fans out the four dashboard listings concurrently and
// merges whatever settles. One failed section does not abort the others;
// it comes back as its own error tag with an empty list.
type OverviewHandler struct {
	Log logging.Logger
}

func NewOverviewHandler(log logging.Logger) *OverviewHandler {
	return &OverviewHandler{Log: log}
}

type overviewSection struct {
	Items any    `json:"items"`
	Error string `json:"error,omitempty"`
}

func (h *OverviewHandler) Get(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}
	ctx := c.Request.Context()

	sections := map[string]*overviewSection{
		"meetings":   {},
		"recordings": {},
		"courses":    {},
		"mail":       {},
	}

	var wg sync.WaitGroup
	run := func(key string, fetch func() (any, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := fetch()
			if err != nil {
				h.Log.Warn(ctx, "overview section failed", "section", key, "err", err)
				sections[key].Error = "failed to fetch " + key
				sections[key].Items = []any{}
				return
			}
			sections[key].Items = items
		}()
	}

	run("meetings", func() (any, error) { return client.Meetings(ctx) })
	run("recordings", func() (any, error) { return client.MeetingRecordings(ctx) })
	run("courses", func() (any, error) { return client.LearnCourses(ctx) })
	run("mail", func() (any, error) { return client.MailMessages(ctx) })
	wg.Wait()

	util.Success(c, util.Response{
		"meetings":   sections["meetings"],
		"recordings": sections["recordings"],
		"courses":    sections["courses"],
		"mail":       sections["mail"],
	})
}
