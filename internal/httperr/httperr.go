package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Message string   `json:"error"`
	Code    string   `json:"error_code"`
	Fields  []string `json:"fields,omitempty"`
}

const internalMessage = "Wystąpił nieoczekiwany błąd serwera"

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Message: message,
		Code:    code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond writes err as a JSON error body. Business errors are mapped to a
// status by code; anything else is a 500 with fallback as the message.
func Respond(c *gin.Context, err error, fallback string) {
	be, ok := AsBusiness(err)
	if !ok {
		if fallback == "" {
			fallback = internalMessage
		}
		_ = c.Error(err)
		Internal(c, "internal_error", fallback)
		return
	}

	message := be.Message
	if message == "" {
		message = be.Code
	}

	c.JSON(StatusFor(be.Code), HTTPError{
		Message: message,
		Code:    be.Code,
		Fields:  be.Fields,
	})
}

func StatusFor(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_exists"):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
