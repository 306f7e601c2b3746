package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/podoclinic/booking/internal/domain/catalog"
	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/httpresp"
	ucCatalog "github.com/podoclinic/booking/internal/usecase/catalog"
)

type CategoryHandler struct {
	list   *ucCatalog.ListCategories
	save   *ucCatalog.SaveCategory
	remove *ucCatalog.DeleteCategory
}

func NewCategoryHandler(
	list *ucCatalog.ListCategories,
	save *ucCatalog.SaveCategory,
	remove *ucCatalog.DeleteCategory,
) *CategoryHandler {
	return &CategoryHandler{
		list:   list,
		save:   save,
		remove: remove,
	}
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "Nie udało się pobrać kategorii usług")
		return
	}
	httpresp.OK(c, dto.FromCategories(categories))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.save.Create(c.Request.Context(), domain.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err, "Nie udało się utworzyć kategorii")
		return
	}
	httpresp.Created(c, dto.FromCategory(*cat))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.save.Update(c.Request.Context(), id, domain.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	httpresp.OK(c, dto.FromCategory(*cat))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, "")
		return
	}
	httpresp.Message(c, "Kategoria została usunięta")
}
