package handler

import (
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
)

type CreateBookRequest struct {
	Title           string         `json:"title" binding:"required,max=100"`
	Synopsis        string         `json:"synopsis" binding:"required"`
	Pages           int            `json:"pages" binding:"required,min=50"`
	Language        model.Language `json:"language" binding:"required,oneof=SPA ENG" enums:"SPA,ENG"`
	Cover           string         `json:"cover" binding:"omitempty,max=255"`
	ISBN            string         `json:"isbn" binding:"required,isbn_hyphenated" example:"978-0-345-39180-3"`
	FormatType      model.Format   `json:"format_type" binding:"required,oneof=PHY EB" enums:"PHY,EB"`
	PublicationDate *model.Date    `json:"publication_date" binding:"required" swaggertype:"string" example:"2001-05-01"`
	AuthorID        uuid.UUID      `json:"author_id" binding:"required" swaggertype:"string"`
	PublisherID     uuid.UUID      `json:"publisher_id" binding:"required" swaggertype:"string"`
	GenreID         uuid.UUID      `json:"genre_id" binding:"required" swaggertype:"string"`
	SubgenreID      uuid.UUID      `json:"subgenre_id" binding:"required" swaggertype:"string"`
}

type UpdateBookRequest struct {
	Title           *string         `json:"title" binding:"omitempty,min=1,max=100"`
	Synopsis        *string         `json:"synopsis" binding:"omitempty,min=1"`
	Pages           *int            `json:"pages" binding:"omitempty,min=50"`
	Language        *model.Language `json:"language" binding:"omitempty,oneof=SPA ENG" enums:"SPA,ENG"`
	Cover           *string         `json:"cover" binding:"omitempty,max=255"`
	ISBN            *string         `json:"isbn" binding:"omitempty,isbn_hyphenated"`
	FormatType      *model.Format   `json:"format_type" binding:"omitempty,oneof=PHY EB" enums:"PHY,EB"`
	PublicationDate *model.Date     `json:"publication_date" swaggertype:"string" example:"2001-05-01"`
	AuthorID        *uuid.UUID      `json:"author_id" swaggertype:"string"`
	PublisherID     *uuid.UUID      `json:"publisher_id" swaggertype:"string"`
	GenreID         *uuid.UUID      `json:"genre_id" swaggertype:"string"`
	SubgenreID      *uuid.UUID      `json:"subgenre_id" swaggertype:"string"`
}

func (r UpdateBookRequest) empty() bool {
	return r.Title == nil && r.Synopsis == nil && r.Pages == nil &&
		r.Language == nil && r.Cover == nil && r.ISBN == nil &&
		r.FormatType == nil && r.PublicationDate == nil &&
		r.AuthorID == nil && r.PublisherID == nil &&
		r.GenreID == nil && r.SubgenreID == nil
}

type AuthorSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country"`
	Biography string `json:"biography"`
}

type PublisherSummary struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

type GenreSummary struct {
	Name string `json:"name"`
}

type SubgenreSummary struct {
	Name string `json:"name"`
}

// BookResponse is the public shape of a book, used for single results and
// list elements alike.
type BookResponse struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Synopsis        string           `json:"synopsis"`
	Pages           int              `json:"pages"`
	Language        model.Language   `json:"language"`
	Cover           string           `json:"cover"`
	ISBN            string           `json:"isbn"`
	FormatType      model.Format     `json:"format_type"`
	PublicationDate model.Date       `json:"publication_date" swaggertype:"string" example:"2001-05-01"`
	Author          AuthorSummary    `json:"author"`
	Publisher       PublisherSummary `json:"publisher"`
	Genre           GenreSummary     `json:"genre"`
	Subgenre        SubgenreSummary  `json:"subgenre"`
	CreatedAt       model.Date       `json:"created_at" swaggertype:"string" example:"2025-11-24"`
	UpdatedAt       model.Date       `json:"updated_at" swaggertype:"string" example:"2025-11-24"`
}
