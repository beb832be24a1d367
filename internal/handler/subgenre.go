package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/validation"
)

type SubgenreHandler struct {
	repo repository.SubgenreRepository
}

func NewSubgenreHandler(repo repository.SubgenreRepository) *SubgenreHandler {
	return &SubgenreHandler{repo: repo}
}

type CreateSubgenreRequest struct {
	Name    string    `json:"name" binding:"required,min=1,max=100"`
	GenreID uuid.UUID `json:"genre_id" binding:"required" swaggertype:"string"`
}

type UpdateSubgenreRequest struct {
	Name    *string    `json:"name" binding:"omitempty,min=1,max=100"`
	GenreID *uuid.UUID `json:"genre_id" swaggertype:"string"`
}

type SubgenreResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Genre NamedRef  `json:"genre"`
}

func toSubgenreResponse(s model.Subgenre) SubgenreResponse {
	return SubgenreResponse{
		ID:    s.ID,
		Name:  s.Name,
		Genre: NamedRef{ID: s.GenreID, Name: s.Genre.Name},
	}
}

func (h *SubgenreHandler) RegisterRoutes(r *gin.RouterGroup) {
	subgenres := r.Group("/subgenres")
	{
		subgenres.POST("", h.CreateSubgenre)
		subgenres.GET("", h.ListSubgenres)
		subgenres.GET("/:id", h.GetSubgenreByID)
		subgenres.PATCH("/:id", h.UpdateSubgenre)
		subgenres.DELETE("/:id", h.DeleteSubgenre)
	}
}

// CreateSubgenre godoc
// @Summary      Create a subgenre under a genre
// @Tags         subgenres
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateSubgenreRequest     true  "Subgenre to create"
// @Success      201      {object}  SubgenreResponse
// @Failure      400      {object}  validation.ErrorResponse  "Unknown genre"
// @Failure      409      {object}  validation.ErrorResponse  "Name already taken"
// @Router       /subgenres [post]
func (h *SubgenreHandler) CreateSubgenre(c *gin.Context) {
	var req CreateSubgenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	subgenre := model.Subgenre{Name: req.Name, GenreID: req.GenreID}
	if err := h.repo.Create(ctx, &subgenre); err != nil {
		writeStoreError(c, err, "subgenre", "create")
		return
	}

	created, err := h.repo.FindByID(ctx, subgenre.ID)
	if err != nil {
		writeInternal(c, err, "SUBGENRE_FETCH_FAILED", "failed to fetch created subgenre")
		return
	}

	c.JSON(http.StatusCreated, toSubgenreResponse(*created))
}

// ListSubgenres godoc
// @Summary      List subgenres
// @Tags         subgenres
// @Produce      json
// @Success      200  {array}  SubgenreResponse
// @Router       /subgenres [get]
func (h *SubgenreHandler) ListSubgenres(c *gin.Context) {
	subgenres, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeInternal(c, err, "SUBGENRE_LIST_FAILED", "failed to list subgenres")
		return
	}

	res := make([]SubgenreResponse, 0, len(subgenres))
	for _, s := range subgenres {
		res = append(res, toSubgenreResponse(s))
	}

	c.JSON(http.StatusOK, res)
}

// GetSubgenreByID godoc
// @Summary      Get subgenre by ID
// @Tags         subgenres
// @Produce      json
// @Param        id   path      string  true  "Subgenre ID (UUID)"
// @Success      200  {object}  SubgenreResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /subgenres/{id} [get]
func (h *SubgenreHandler) GetSubgenreByID(c *gin.Context) {
	id, ok := parseID(c, "subgenre")
	if !ok {
		return
	}

	subgenre, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "subgenre", "fetch")
		return
	}

	c.JSON(http.StatusOK, toSubgenreResponse(*subgenre))
}

// UpdateSubgenre godoc
// @Summary      Update a subgenre
// @Description  Moving a subgenre to another genre refiles its books under that genre
// @Tags         subgenres
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Subgenre ID (UUID)"
// @Param        payload  body      UpdateSubgenreRequest  true  "Fields to update"
// @Success      200      {object}  SubgenreResponse
// @Failure      404      {object}  validation.ErrorResponse
// @Router       /subgenres/{id} [patch]
func (h *SubgenreHandler) UpdateSubgenre(c *gin.Context) {
	id, ok := parseID(c, "subgenre")
	if !ok {
		return
	}

	var req UpdateSubgenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	subgenre, err := h.repo.FindByID(ctx, id)
	if err != nil {
		writeStoreError(c, err, "subgenre", "fetch")
		return
	}

	if req.Name != nil {
		subgenre.Name = *req.Name
	}
	if req.GenreID != nil {
		subgenre.GenreID = *req.GenreID
	}

	if err := h.repo.Update(ctx, subgenre); err != nil {
		writeStoreError(c, err, "subgenre", "update")
		return
	}

	updated, err := h.repo.FindByID(ctx, id)
	if err != nil {
		writeInternal(c, err, "SUBGENRE_FETCH_FAILED", "failed to fetch updated subgenre")
		return
	}

	c.JSON(http.StatusOK, toSubgenreResponse(*updated))
}

// DeleteSubgenre godoc
// @Summary      Delete a subgenre
// @Description  Deletes the subgenre and every book filed under it
// @Tags         subgenres
// @Param        id   path  string  true  "Subgenre ID (UUID)"
// @Success      204  "No Content"
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /subgenres/{id} [delete]
func (h *SubgenreHandler) DeleteSubgenre(c *gin.Context) {
	id, ok := parseID(c, "subgenre")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "subgenre", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
