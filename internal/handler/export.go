package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/zoho"
)

// ExportHandler streams the caller's meeting list as a spreadsheet.
type ExportHandler struct {
	Log logging.Logger
}

func NewExportHandler(log logging.Logger) *ExportHandler {
	return &ExportHandler{Log: log}
}

var exportHeader = []string{"Topic", "Start Time", "Duration (min)", "Presenter", "Presenter Email", "Join Link", "Recurring"}

func exportRow(m zoho.Meeting) []string {
	recurring := "no"
	if m.IsRecurring {
		recurring = "yes"
	}
	return []string{
		m.Topic,
		m.StartTime,
		strconv.FormatInt(m.Duration, 10),
		m.PresenterFullName,
		m.PresenterEmail,
		m.JoinLink,
		recurring,
	}
}

// MeetingsCSV exports meetings as CSV.
func (h *ExportHandler) MeetingsCSV(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	meetings, err := client.Meetings(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch meetings")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"meetings_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for _, m := range meetings {
		writer.Write(exportRow(m))
	}
}

// MeetingsXLSX exports meetings as an Excel workbook.
func (h *ExportHandler) MeetingsXLSX(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	meetings, err := client.Meetings(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch meetings")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Meetings"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, m := range meetings {
		for col, val := range exportRow(m) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"meetings_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		h.Log.Error(c.Request.Context(), "write xlsx", "err", err)
	}
}
