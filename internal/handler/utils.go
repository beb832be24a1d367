package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
)

// parseID reads the :id path parameter, writing a 400 when it is not a UUID.
func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_"+strings.ToUpper(entity)+"_ID",
			"invalid "+entity+" id",
		)
		return uuid.Nil, false
	}
	return id, true
}

// lookupValue prefers the path form of a lookup parameter over the query form.
func lookupValue(c *gin.Context, key string) string {
	if v := c.Param(key); v != "" {
		return v
	}
	return c.Query(key)
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Synopsis:        b.Synopsis,
		Pages:           b.Pages,
		Language:        b.Language,
		Cover:           b.Cover,
		ISBN:            b.ISBN,
		FormatType:      b.FormatType,
		PublicationDate: model.Date{Time: b.PublicationDate},
		Author: AuthorSummary{
			FirstName: b.Author.FirstName,
			LastName:  b.Author.LastName,
			Country:   b.Author.Country,
			Biography: b.Author.Biography,
		},
		Publisher: PublisherSummary{
			Name:        b.Publisher.Name,
			Country:     b.Publisher.Country,
			Description: b.Publisher.Description,
		},
		Genre:     GenreSummary{Name: b.Genre.Name},
		Subgenre:  SubgenreSummary{Name: b.Subgenre.Name},
		CreatedAt: model.Date{Time: b.CreatedAt},
		UpdatedAt: model.Date{Time: b.UpdatedAt},
	}
}

func toBookListResponse(books []model.Book) []BookResponse {
	res := make([]BookResponse, 0, len(books))
	for _, b := range books {
		res = append(res, toBookResponse(b))
	}
	return res
}
