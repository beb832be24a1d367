package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/catalog"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/validation"
)

type BookHandler struct {
	repo     repository.BookRepository
	resolver *catalog.Resolver
}

func NewBookHandler(repo repository.BookRepository, resolver *catalog.Resolver) *BookHandler {
	return &BookHandler{repo: repo, resolver: resolver}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)

		books.GET("/by-genre", h.GetBooksByGenre)
		books.GET("/by-genre/:genre", h.GetBooksByGenrePath)
		books.GET("/by-subgenre", h.GetBooksBySubgenre)
		books.GET("/by-subgenre/:subgenre", h.GetBooksBySubgenrePath)
		books.GET("/by-language", h.GetBooksByLanguage)
		books.GET("/by-language/:lang", h.GetBooksByLanguagePath)
		books.GET("/by-format", h.GetBooksByFormat)
		books.GET("/by-format/:format_type", h.GetBooksByFormatPath)
		books.GET("/by-title", h.GetBooksByTitle)
		books.GET("/by-title/:title", h.GetBooksByTitlePath)
		books.GET("/by-publisher", h.GetBooksByPublisher)
		books.GET("/by-publisher/:publisher", h.GetBooksByPublisherPath)
		books.GET("/by-isbn", h.GetBookByISBN)
		books.GET("/by-isbn/:isbn", h.GetBookByISBNPath)
		books.GET("/by-author", h.GetBooksByAuthor)
		books.GET("/by-author/:author", h.GetBooksByAuthorToken)

		books.GET("/:id", h.GetBookByID)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a book referencing an existing author, publisher, genre and subgenre
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error or unknown reference"
// @Failure      409      {object}  validation.ErrorResponse   "ISBN already exists"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.PublicationDate == nil || req.PublicationDate.IsZero() {
		writeError(c, http.StatusBadRequest,
			"INVALID_PUBLICATION_DATE",
			"publication_date is required",
		)
		return
	}

	book := model.Book{
		Title:           req.Title,
		Synopsis:        req.Synopsis,
		Pages:           req.Pages,
		Language:        req.Language,
		Cover:           req.Cover,
		ISBN:            req.ISBN,
		FormatType:      req.FormatType,
		PublicationDate: req.PublicationDate.Time,
		AuthorID:        req.AuthorID,
		PublisherID:     req.PublisherID,
		GenreID:         req.GenreID,
		SubgenreID:      req.SubgenreID,
	}

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &book); err != nil {
		writeStoreError(c, err, "book", "create")
		return
	}

	created, err := h.repo.FindByID(ctx, book.ID)
	if err != nil {
		writeInternal(c, err, "BOOK_FETCH_FAILED", "failed to fetch created book")
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(*created))
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books with their author, publisher, genre and subgenre
// @Tags         books
// @Produce      json
// @Success      200  {array}   BookResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeInternal(c, err, "BOOK_LIST_FAILED", "failed to fetch books")
		return
	}

	c.JSON(http.StatusOK, toBookListResponse(books))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	bookID, ok := parseID(c, "book")
	if !ok {
		return
	}

	book, err := h.repo.FindByID(c.Request.Context(), bookID)
	if err != nil {
		writeStoreError(c, err, "book", "fetch")
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update a book by its UUID
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Book ID (UUID)"
// @Param        payload  body      UpdateBookRequest   true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      409      {object}  validation.ErrorResponse   "ISBN already exists"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, ok := parseID(c, "book")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	book, err := h.repo.FindByID(ctx, bookID)
	if err != nil {
		writeStoreError(c, err, "book", "fetch")
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.empty() {
		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}

	if req.PublicationDate != nil && req.PublicationDate.IsZero() {
		writeError(c, http.StatusBadRequest,
			"INVALID_PUBLICATION_DATE",
			"publication_date cannot be cleared",
		)
		return
	}

	applyBookUpdate(book, req)

	if err := h.repo.Update(ctx, book); err != nil {
		writeStoreError(c, err, "book", "update")
		return
	}

	updated, err := h.repo.FindByID(ctx, book.ID)
	if err != nil {
		writeInternal(c, err, "BOOK_FETCH_FAILED", "failed to fetch updated book")
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*updated))
}

func applyBookUpdate(book *model.Book, req UpdateBookRequest) {
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Synopsis != nil {
		book.Synopsis = *req.Synopsis
	}
	if req.Pages != nil {
		book.Pages = *req.Pages
	}
	if req.Language != nil {
		book.Language = *req.Language
	}
	if req.Cover != nil {
		book.Cover = *req.Cover
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.FormatType != nil {
		book.FormatType = *req.FormatType
	}
	if req.PublicationDate != nil {
		book.PublicationDate = req.PublicationDate.Time
	}
	if req.AuthorID != nil {
		book.AuthorID = *req.AuthorID
	}
	if req.PublisherID != nil {
		book.PublisherID = *req.PublisherID
	}
	if req.GenreID != nil {
		book.GenreID = *req.GenreID
	}
	if req.SubgenreID != nil {
		book.SubgenreID = *req.SubgenreID
	}
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := parseID(c, "book")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), bookID); err != nil {
		writeStoreError(c, err, "book", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
