package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse adalah amplop JSON standar seluruh endpoint.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Message: message, Data: data})
}

func Error(c *gin.Context, status int, message string, err error) {
	resp := APIResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}
