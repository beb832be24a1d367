package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/catalog"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/middleware"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/validation"
	"gorm.io/gorm"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func writeInternal(c *gin.Context, err error, code, message string) {
	log.Printf("request_id=%s code=%s error=%v", middleware.RequestIDFrom(c), code, err)
	writeError(c, http.StatusInternalServerError, code, message)
}

// writeStoreError reports a repository failure for entity while performing
// action (create, update, delete, fetch).
func writeStoreError(c *gin.Context, err error, entity, action string) {
	prefix := strings.ToUpper(entity)

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeError(c, http.StatusNotFound, prefix+"_NOT_FOUND", entity+" not found")
	case errors.Is(err, repository.ErrDuplicate):
		writeError(c, http.StatusConflict, prefix+"_ALREADY_EXISTS", entity+" already exists")
	case errors.Is(err, repository.ErrReferenceNotFound):
		writeError(c, http.StatusBadRequest, "REFERENCE_NOT_FOUND",
			"referenced author, publisher, genre or subgenre does not exist")
	case errors.Is(err, repository.ErrSubgenreGenreMismatch):
		writeError(c, http.StatusBadRequest, "SUBGENRE_GENRE_MISMATCH",
			"subgenre does not belong to the given genre")
	case errors.Is(err, repository.ErrInvalid):
		writeError(c, http.StatusBadRequest, "CONSTRAINT_VIOLATION", err.Error())
	default:
		writeInternal(c, err, prefix+"_"+strings.ToUpper(action)+"_FAILED",
			"failed to "+action+" "+entity)
	}
}

// writeLookupError turns a resolver outcome into a response.
func writeLookupError(c *gin.Context, err error) {
	var lerr *catalog.Error
	if !errors.As(err, &lerr) {
		writeInternal(c, err, "BOOK_LOOKUP_FAILED", "failed to look up books")
		return
	}

	switch lerr.Kind {
	case catalog.KindInvalidInput:
		writeError(c, http.StatusBadRequest, lerr.Code, lerr.Message)
	case catalog.KindEmpty:
		c.JSON(http.StatusOK, MessageResponse{Message: lerr.Message})
	default:
		writeError(c, http.StatusNotFound, lerr.Code, lerr.Message)
	}
}
