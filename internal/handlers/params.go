package handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/podoclinic/booking/internal/httperr"
)

const invalidPayload = "Nieprawidłowy format danych"

// pathID reads the :id parameter. Non-numeric ids answer 404.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, "not_found", "Nie znaleziono zasobu")
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body into dst or answers 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", invalidPayload)
		return false
	}
	return true
}

// rawText returns a JSON scalar as text: strings unquoted, numbers verbatim,
// null and absent as "".
func rawText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return s
}
