package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

type WorkDriveHandler struct {
	Log logging.Logger
}

func NewWorkDriveHandler(log logging.Logger) *WorkDriveHandler {
	return &WorkDriveHandler{Log: log}
}

func (h *WorkDriveHandler) Files(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	files, err := client.WorkDriveFiles(c.Request.Context())
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch files", "files")
		return
	}
	util.Success(c, util.Response{"files": files})
}

// SharedFiles walks the chain: WorkDrive user id → private space id →
// incoming files and folders. The identity steps are required; the listing
// step tolerates partial failure inside the gateway.
func (h *WorkDriveHandler) SharedFiles(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}
	ctx := c.Request.Context()

	userInfo, err := client.WorkDriveUserInfo(ctx)
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch shared files", "files")
		return
	}

	privatespaceID, err := client.WorkDrivePrivateSpace(ctx, userInfo.ID)
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch shared files", "files")
		return
	}

	files, err := client.SharedFiles(ctx, privatespaceID)
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch shared files", "files")
		return
	}
	util.Success(c, util.Response{"files": files})
}

func (h *WorkDriveHandler) FolderContents(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	folderID := c.Query("folderId")
	if folderID == "" {
		util.Error(c, http.StatusBadRequest, "folderId is required")
		return
	}

	files, err := client.FolderContents(c.Request.Context(), folderID)
	if err != nil {
		util.ErrorList(c, http.StatusInternalServerError, "failed to fetch folder contents", "files")
		return
	}
	util.Success(c, util.Response{"files": files})
}

func (h *WorkDriveHandler) UserInfo(c *gin.Context) {
	client, _ := clientFromSession(c, h.Log)
	if client == nil {
		return
	}

	userInfo, err := client.WorkDriveUserInfo(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch user info")
		return
	}
	util.Success(c, util.Response{"user": userInfo})
}
