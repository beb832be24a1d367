package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/validation"
)

type PublisherHandler struct {
	repo repository.PublisherRepository
}

func NewPublisherHandler(repo repository.PublisherRepository) *PublisherHandler {
	return &PublisherHandler{repo: repo}
}

type CreatePublisherRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Country     string `json:"country" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=5000"`
}

type UpdatePublisherRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

type PublisherResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
}

func toPublisherResponse(p model.Publisher) PublisherResponse {
	return PublisherResponse{
		ID:          p.ID,
		Name:        p.Name,
		Country:     p.Country,
		Description: p.Description,
	}
}

func (h *PublisherHandler) RegisterRoutes(r *gin.RouterGroup) {
	publishers := r.Group("/publishers")
	{
		publishers.POST("", h.CreatePublisher)
		publishers.GET("", h.ListPublishers)
		publishers.GET("/:id", h.GetPublisherByID)
		publishers.PATCH("/:id", h.UpdatePublisher)
		publishers.DELETE("/:id", h.DeletePublisher)
	}
}

// CreatePublisher godoc
// @Summary      Create a publisher
// @Tags         publishers
// @Accept       json
// @Produce      json
// @Param        payload  body      CreatePublisherRequest     true  "Publisher to create"
// @Success      201      {object}  PublisherResponse
// @Failure      400      {object}  validation.ErrorResponse
// @Failure      409      {object}  validation.ErrorResponse   "Name already taken"
// @Router       /publishers [post]
func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req CreatePublisherRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	publisher := model.Publisher{
		Name:        req.Name,
		Country:     req.Country,
		Description: req.Description,
	}

	if err := h.repo.Create(c.Request.Context(), &publisher); err != nil {
		writeStoreError(c, err, "publisher", "create")
		return
	}

	c.JSON(http.StatusCreated, toPublisherResponse(publisher))
}

// ListPublishers godoc
// @Summary      List publishers
// @Tags         publishers
// @Produce      json
// @Success      200  {array}   PublisherResponse
// @Router       /publishers [get]
func (h *PublisherHandler) ListPublishers(c *gin.Context) {
	publishers, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeInternal(c, err, "PUBLISHER_LIST_FAILED", "failed to list publishers")
		return
	}

	res := make([]PublisherResponse, 0, len(publishers))
	for _, p := range publishers {
		res = append(res, toPublisherResponse(p))
	}

	c.JSON(http.StatusOK, res)
}

// GetPublisherByID godoc
// @Summary      Get publisher by ID
// @Tags         publishers
// @Produce      json
// @Param        id   path      string  true  "Publisher ID (UUID)"
// @Success      200  {object}  PublisherResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /publishers/{id} [get]
func (h *PublisherHandler) GetPublisherByID(c *gin.Context) {
	id, ok := parseID(c, "publisher")
	if !ok {
		return
	}

	publisher, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "publisher", "fetch")
		return
	}

	c.JSON(http.StatusOK, toPublisherResponse(*publisher))
}

// UpdatePublisher godoc
// @Summary      Update a publisher
// @Tags         publishers
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Publisher ID (UUID)"
// @Param        payload  body      UpdatePublisherRequest  true  "Fields to update"
// @Success      200      {object}  PublisherResponse
// @Failure      404      {object}  validation.ErrorResponse
// @Failure      409      {object}  validation.ErrorResponse
// @Router       /publishers/{id} [patch]
func (h *PublisherHandler) UpdatePublisher(c *gin.Context) {
	id, ok := parseID(c, "publisher")
	if !ok {
		return
	}

	var req UpdatePublisherRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	publisher, err := h.repo.FindByID(ctx, id)
	if err != nil {
		writeStoreError(c, err, "publisher", "fetch")
		return
	}

	if req.Name != nil {
		publisher.Name = *req.Name
	}
	if req.Country != nil {
		publisher.Country = *req.Country
	}
	if req.Description != nil {
		publisher.Description = *req.Description
	}

	if err := h.repo.Update(ctx, publisher); err != nil {
		writeStoreError(c, err, "publisher", "update")
		return
	}

	c.JSON(http.StatusOK, toPublisherResponse(*publisher))
}

// DeletePublisher godoc
// @Summary      Delete a publisher
// @Description  Deletes the publisher and every book it published
// @Tags         publishers
// @Param        id   path  string  true  "Publisher ID (UUID)"
// @Success      204  "No Content"
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /publishers/{id} [delete]
func (h *PublisherHandler) DeletePublisher(c *gin.Context) {
	id, ok := parseID(c, "publisher")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "publisher", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
