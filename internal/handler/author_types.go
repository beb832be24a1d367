package handler

import (
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
)

type CreateAuthorRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Country   string `json:"country" binding:"omitempty,max=100"`
	Biography string `json:"biography" binding:"omitempty,max=5000"`
}

type UpdateAuthorRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Country   *string `json:"country" binding:"omitempty,max=100"`
	Biography *string `json:"biography" binding:"omitempty,max=5000"`
}

type AuthorResponse struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Country   string     `json:"country"`
	Biography string     `json:"biography"`
	CreatedAt model.Date `json:"created_at" swaggertype:"string" example:"2025-11-24"`
	UpdatedAt model.Date `json:"updated_at" swaggertype:"string" example:"2025-11-24"`
}

func toAuthorResponse(a model.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Country:   a.Country,
		Biography: a.Biography,
		CreatedAt: model.Date{Time: a.CreatedAt},
		UpdatedAt: model.Date{Time: a.UpdatedAt},
	}
}
