package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the success envelope: {message, data?}
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// TokenResponse is the login envelope: {message, token}
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorBody is the failure envelope: {error}
type ErrorBody struct {
	Error string `json:"error"`
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Message: message,
		Data:    data,
	})
}

func Token(c *gin.Context, statusCode int, message, token string) {
	c.JSON(statusCode, TokenResponse{
		Message: message,
		Token:   token,
	})
}

// Error writes {error: message}
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// Abort writes {error: message} and stops the handler chain
func Abort(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message})
}
