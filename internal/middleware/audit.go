package middleware

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/models"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

func encryptField(encryptKey, plain string) (string, error) {
	if plain == "" || encryptKey == "" {
		return plain, nil
	}
	b, err := util.EncryptAES(encryptKey, []byte(plain))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Audit records authenticated API hits. Must run after SessionRequired:
// requests without a session are not recorded.
func Audit(db *gorm.DB, encryptKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		s := CurrentSession(c)
		if s == nil {
			return
		}

		encPath, _ := encryptField(encryptKey, c.Request.URL.Path)

		entry := models.AuditLog{
			UserEmail: s.User.Email,
			PathEnc:   encPath,
			Method:    c.Request.Method,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&entry).Error
	}
}
