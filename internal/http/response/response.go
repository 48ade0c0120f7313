package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON 成功响应，直接输出数据本体
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 成功响应（仅提示消息）
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Error 错误响应，HTTP 状态码即业务状态码
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, attachRequestID(c, gin.H{"error": msg}))
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// NotFound 404 响应
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// InternalError 500 响应
func InternalError(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}

func attachRequestID(c *gin.Context, body gin.H) gin.H {
	if c == nil {
		return body
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok && id != "" {
			body["request_id"] = id
		}
	}
	return body
}
