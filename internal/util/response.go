package util

import "github.com/gin-gonic/gin"

// Response is the payload map written on success.
type Response map[string]interface{}

// Success writes the payload as-is with HTTP 200.
func Success(c *gin.Context, data Response) {
	c.JSON(200, data)
}

// Error writes the uniform error envelope: {"error": msg}.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}

// ErrorList writes the error envelope plus an empty collection under
// listKey, so listing endpoints always carry the field the UI reads.
func ErrorList(c *gin.Context, httpStatus int, msg, listKey string) {
	c.JSON(httpStatus, gin.H{
		"error": msg,
		listKey: []interface{}{},
	})
}
