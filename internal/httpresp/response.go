package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podoclinic/booking/internal/dto"
)

type PageResponse[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message answers with {"message": msg}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, dto.Message{Message: msg})
}

func Page[T any](c *gin.Context, page, limit int, total int64, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: items,
	})
}
