package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/validation"
)

type GenreHandler struct {
	repo repository.GenreRepository
}

func NewGenreHandler(repo repository.GenreRepository) *GenreHandler {
	return &GenreHandler{repo: repo}
}

type GenreRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type NamedRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type GenreResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Subgenres []NamedRef `json:"subgenres"`
}

func toGenreResponse(g model.Genre) GenreResponse {
	subs := make([]NamedRef, 0, len(g.Subgenres))
	for _, s := range g.Subgenres {
		subs = append(subs, NamedRef{ID: s.ID, Name: s.Name})
	}

	return GenreResponse{
		ID:        g.ID,
		Name:      g.Name,
		Subgenres: subs,
	}
}

func (h *GenreHandler) RegisterRoutes(r *gin.RouterGroup) {
	genres := r.Group("/genres")
	{
		genres.POST("", h.CreateGenre)
		genres.GET("", h.ListGenres)
		genres.GET("/:id", h.GetGenreByID)
		genres.PATCH("/:id", h.UpdateGenre)
		genres.DELETE("/:id", h.DeleteGenre)
	}
}

// CreateGenre godoc
// @Summary      Create a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        payload  body      GenreRequest  true  "Genre to create"
// @Success      201      {object}  GenreResponse
// @Failure      409      {object}  validation.ErrorResponse  "Name already taken"
// @Router       /genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req GenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	genre := model.Genre{Name: req.Name}
	if err := h.repo.Create(c.Request.Context(), &genre); err != nil {
		writeStoreError(c, err, "genre", "create")
		return
	}

	c.JSON(http.StatusCreated, toGenreResponse(genre))
}

// ListGenres godoc
// @Summary      List genres with their subgenres
// @Tags         genres
// @Produce      json
// @Success      200  {array}  GenreResponse
// @Router       /genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeInternal(c, err, "GENRE_LIST_FAILED", "failed to list genres")
		return
	}

	res := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		res = append(res, toGenreResponse(g))
	}

	c.JSON(http.StatusOK, res)
}

// GetGenreByID godoc
// @Summary      Get genre by ID
// @Tags         genres
// @Produce      json
// @Param        id   path      string  true  "Genre ID (UUID)"
// @Success      200  {object}  GenreResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /genres/{id} [get]
func (h *GenreHandler) GetGenreByID(c *gin.Context) {
	id, ok := parseID(c, "genre")
	if !ok {
		return
	}

	genre, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "genre", "fetch")
		return
	}

	c.JSON(http.StatusOK, toGenreResponse(*genre))
}

// UpdateGenre godoc
// @Summary      Rename a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        id       path      string        true  "Genre ID (UUID)"
// @Param        payload  body      GenreRequest  true  "New name"
// @Success      200      {object}  GenreResponse
// @Failure      404      {object}  validation.ErrorResponse
// @Failure      409      {object}  validation.ErrorResponse
// @Router       /genres/{id} [patch]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	id, ok := parseID(c, "genre")
	if !ok {
		return
	}

	var req GenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	genre, err := h.repo.FindByID(ctx, id)
	if err != nil {
		writeStoreError(c, err, "genre", "fetch")
		return
	}

	genre.Name = req.Name
	if err := h.repo.Update(ctx, genre); err != nil {
		writeStoreError(c, err, "genre", "update")
		return
	}

	c.JSON(http.StatusOK, toGenreResponse(*genre))
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Description  Deletes the genre, its subgenres, and every book filed under any of them
// @Tags         genres
// @Param        id   path  string  true  "Genre ID (UUID)"
// @Success      204  "No Content"
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, ok := parseID(c, "genre")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "genre", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
