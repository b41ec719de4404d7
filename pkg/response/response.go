package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
)

// Envelope represents the common response contract.
//
// Message is populated instead of Data when a list endpoint finds no rows;
// existing clients rely on the explanatory message rather than an empty
// array.
type Envelope struct {
	Message string           `json:"message,omitempty"`
	Data    interface{}      `json:"data,omitempty"`
	Error   *appErrors.Error `json:"error,omitempty"`
}

// JSON sends a success response with an optional message.
func JSON(c *gin.Context, status int, data interface{}, message string) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Message: message, Data: data})
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data, "")
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}, message string) {
	JSON(c, http.StatusCreated, data, message)
}

// Message responds with HTTP 200 and only an explanatory message.
func Message(c *gin.Context, message string) {
	JSON(c, http.StatusOK, nil, message)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}
