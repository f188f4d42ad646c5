package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应形状是对外契约：成功直接返回负载本身，
// 失败统一返回 {"error": "<message>"} 加 HTTP 状态码

// ErrorBody 统一错误响应体
type ErrorBody struct {
	Error string `json:"error"`
}

func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
