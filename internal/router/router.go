package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/config"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/handler"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/middleware"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/session"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/zoho"
)

// SetupRouter configures the Gin engine, templates and all routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, log logging.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.EncryptKey, cfg.Server.Mode == gin.ReleaseMode)
	oauth := zoho.NewOAuth(cfg.Zoho, log)

	// pages
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"title": "SoftMania Client Dashboard"})
	})
	r.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title": "SoftMania Client Dashboard",
			"error": c.Query("error"),
		})
	})
	r.GET("/dashboard", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{"title": "Dashboard"})
	})

	// OAuth flow (no session yet)
	authHandler := handler.NewAuthHandler(oauth, sessions, log)
	r.GET("/login/start", authHandler.Start)
	r.GET("/callback", authHandler.Callback)

	// ====== API ======
	api := r.Group("/api")
	api.POST("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(
		middleware.SessionRequired(sessions),
		middleware.Audit(db, cfg.Session.EncryptKey),
	)

	userHandler := handler.NewUserHandler(log)
	protected.GET("/user", userHandler.Get)

	overviewHandler := handler.NewOverviewHandler(log)
	protected.GET("/overview", overviewHandler.Get)

	meetingHandler := handler.NewMeetingHandler(log)
	protected.GET("/meetings", meetingHandler.List)
	protected.GET("/meetings/recordings", meetingHandler.Recordings)
	protected.GET("/meetings/shared-recordings", meetingHandler.SharedRecordings)
	protected.GET("/meetings/:sessionKey/participants", meetingHandler.Participants)

	courseHandler := handler.NewCourseHandler(log)
	protected.GET("/courses", courseHandler.List)

	mailHandler := handler.NewMailHandler(log)
	protected.GET("/mail", mailHandler.List)

	workDriveHandler := handler.NewWorkDriveHandler(log)
	protected.GET("/workdrive", workDriveHandler.Files)
	protected.GET("/workdrive/shared-files", workDriveHandler.SharedFiles)
	protected.GET("/workdrive/folder-contents", workDriveHandler.FolderContents)
	protected.GET("/workdrive/user-info", workDriveHandler.UserInfo)

	exportHandler := handler.NewExportHandler(log)
	protected.GET("/export/meetings.csv", exportHandler.MeetingsCSV)
	protected.GET("/export/meetings.xlsx", exportHandler.MeetingsXLSX)

	logHandler := handler.NewLogHandler(db, cfg.Session.EncryptKey)
	protected.GET("/logs", logHandler.List)

	return r
}
