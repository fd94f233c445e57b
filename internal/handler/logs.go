package handler

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/middleware"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/models"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

// LogHandler pages through the caller's audit trail.
type LogHandler struct {
	DB         *gorm.DB
	EncryptKey string
}

func NewLogHandler(db *gorm.DB, encryptKey string) *LogHandler {
	return &LogHandler{DB: db, EncryptKey: encryptKey}
}

func (h *LogHandler) decryptField(cipherStr string) string {
	if cipherStr == "" || h.EncryptKey == "" {
		return cipherStr
	}
	b, err := base64.StdEncoding.DecodeString(cipherStr)
	if err != nil {
		return cipherStr
	}
	plain, err := util.DecryptAES(h.EncryptKey, b)
	if err != nil {
		return cipherStr
	}
	return string(plain)
}

type logResp struct {
	ID        uint      `json:"id"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
	Status    int       `json:"status"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// List returns the current user's audit entries, newest first.
func (h *LogHandler) List(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if s == nil {
		util.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	var total int64
	q := h.DB.Model(&models.AuditLog{}).Where("user_email = ?", s.User.Email)
	if err := q.Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to query logs")
		return
	}

	var entries []models.AuditLog
	if err := q.Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&entries).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to query logs")
		return
	}

	items := make([]logResp, 0, len(entries))
	for _, e := range entries {
		items = append(items, logResp{
			ID:        e.ID,
			Path:      h.decryptField(e.PathEnc),
			Method:    e.Method,
			Status:    e.Status,
			IP:        e.IP,
			UserAgent: e.UserAgent,
			CreatedAt: e.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"logs":  items,
		"total": total,
		"page":  page,
	})
}
