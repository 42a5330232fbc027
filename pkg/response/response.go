package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Messages shared by handlers
const (
	MsgOK            = "ok"
	MsgBindFailed    = "参数绑定失败"
	MsgInternalError = "服务器内部错误"
)

// Response is the envelope of every API response
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// Success sends a 200 response carrying data
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Msg:  MsgOK,
		Data: data,
	})
}

// Error sends an error response; the HTTP status and the envelope code match
func Error(c *gin.Context, code int, message string) {
	ErrorWithData(c, code, message, nil)
}

// ErrorWithData sends an error response with a payload, e.g. field errors
func ErrorWithData(c *gin.Context, code int, message string, data any) {
	c.AbortWithStatusJSON(code, Response{
		Code: code,
		Msg:  message,
		Data: data,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError sends a 500 response with the generic message
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgInternalError)
}
