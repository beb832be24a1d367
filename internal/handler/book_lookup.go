package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
)

func (h *BookHandler) respondBooks(c *gin.Context, books []model.Book, err error) {
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookListResponse(books))
}

// GetBooksByGenre godoc
// @Summary      List books of a genre
// @Description  Case-insensitive exact match on the genre name. 404 when the genre is unknown or has no books.
// @Tags         lookups
// @Produce      json
// @Param        genre  query     string  false  "Genre name"
// @Success      200    {array}   BookResponse
// @Failure      404    {object}  validation.ErrorResponse
// @Router       /books/by-genre [get]
func (h *BookHandler) GetBooksByGenre(c *gin.Context) {
	books, err := h.resolver.ByGenre(c.Request.Context(), lookupValue(c, "genre"))
	h.respondBooks(c, books, err)
}

// GetBooksBySubgenre godoc
// @Summary      List books of a subgenre
// @Tags         lookups
// @Produce      json
// @Param        subgenre  query     string  false  "Subgenre name"
// @Success      200       {array}   BookResponse
// @Failure      404       {object}  validation.ErrorResponse
// @Router       /books/by-subgenre [get]
func (h *BookHandler) GetBooksBySubgenre(c *gin.Context) {
	books, err := h.resolver.BySubgenre(c.Request.Context(), lookupValue(c, "subgenre"))
	h.respondBooks(c, books, err)
}

// GetBooksByLanguage godoc
// @Summary      List books in a language
// @Description  Accepts "spanish" or "english" in any case.
// @Tags         lookups
// @Produce      json
// @Param        lang  query     string  false  "Language word"  Enums(spanish, english)
// @Success      200   {array}   BookResponse
// @Failure      404   {object}  validation.ErrorResponse
// @Router       /books/by-language [get]
func (h *BookHandler) GetBooksByLanguage(c *gin.Context) {
	books, err := h.resolver.ByLanguage(c.Request.Context(), lookupValue(c, "lang"))
	h.respondBooks(c, books, err)
}

// GetBooksByFormat godoc
// @Summary      List books in a format
// @Description  Accepts "physical" or "e-book" in any case.
// @Tags         lookups
// @Produce      json
// @Param        format_type  query     string  false  "Format word"  Enums(physical, e-book)
// @Success      200          {array}   BookResponse
// @Failure      404          {object}  validation.ErrorResponse
// @Router       /books/by-format [get]
func (h *BookHandler) GetBooksByFormat(c *gin.Context) {
	books, err := h.resolver.ByFormat(c.Request.Context(), lookupValue(c, "format_type"))
	h.respondBooks(c, books, err)
}

// GetBooksByTitle godoc
// @Summary      Search books by title
// @Description  Case-insensitive substring match on the title.
// @Tags         lookups
// @Produce      json
// @Param        title  query     string  false  "Title fragment"
// @Success      200    {array}   BookResponse
// @Failure      404    {object}  validation.ErrorResponse
// @Router       /books/by-title [get]
func (h *BookHandler) GetBooksByTitle(c *gin.Context) {
	books, err := h.resolver.ByTitle(c.Request.Context(), lookupValue(c, "title"))
	h.respondBooks(c, books, err)
}

// GetBooksByPublisher godoc
// @Summary      List books of a publisher
// @Tags         lookups
// @Produce      json
// @Param        publisher  query     string  false  "Publisher name"
// @Success      200        {array}   BookResponse
// @Failure      404        {object}  validation.ErrorResponse
// @Router       /books/by-publisher [get]
func (h *BookHandler) GetBooksByPublisher(c *gin.Context) {
	books, err := h.resolver.ByPublisher(c.Request.Context(), lookupValue(c, "publisher"))
	h.respondBooks(c, books, err)
}

// GetBookByISBN godoc
// @Summary      Get a book by ISBN
// @Description  Case-insensitive exact match. Returns a single book, not a list.
// @Tags         lookups
// @Produce      json
// @Param        isbn  query     string  false  "ISBN"
// @Success      200   {object}  BookResponse
// @Failure      404   {object}  validation.ErrorResponse
// @Router       /books/by-isbn [get]
func (h *BookHandler) GetBookByISBN(c *gin.Context) {
	book, err := h.resolver.ByISBN(c.Request.Context(), lookupValue(c, "isbn"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookResponse(*book))
}

// GetBooksByAuthor godoc
// @Summary      Search books by author name
// @Description  Substring match on first_name and/or last_name (at least one required).
// @Tags         lookups
// @Produce      json
// @Param        first_name  query     string  false  "First name fragment"
// @Param        last_name   query     string  false  "Last name fragment"
// @Success      200         {array}   BookResponse
// @Failure      400         {object}  validation.ErrorResponse
// @Failure      404         {object}  validation.ErrorResponse
// @Router       /books/by-author [get]
func (h *BookHandler) GetBooksByAuthor(c *gin.Context) {
	books, err := h.resolver.ByAuthorName(c.Request.Context(), c.Query("first_name"), c.Query("last_name"))
	h.respondBooks(c, books, err)
}

// GetBooksByAuthorToken godoc
// @Summary      List books of one author
// @Description  Exact author match on a First-Last token. 200 with a message when the author has no books.
// @Tags         lookups
// @Produce      json
// @Param        author  path      string  true  "Author as First-Last"
// @Success      200     {array}   BookResponse
// @Failure      400     {object}  validation.ErrorResponse
// @Failure      404     {object}  validation.ErrorResponse
// @Router       /books/by-author/{author} [get]
func (h *BookHandler) GetBooksByAuthorToken(c *gin.Context) {
	books, err := h.resolver.ByAuthorToken(c.Request.Context(), c.Param("author"))
	h.respondBooks(c, books, err)
}

// The path forms below take the lookup value from the URL and otherwise
// behave like their query counterparts.

// GetBooksByGenrePath godoc
// @Summary      List books of a genre
// @Tags         lookups
// @Produce      json
// @Param        genre  path      string  true  "Genre name"
// @Success      200  {array}   BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/by-genre/{genre} [get]
func (h *BookHandler) GetBooksByGenrePath(c *gin.Context) {
	h.GetBooksByGenre(c)
}

// GetBooksBySubgenrePath godoc
// @Summary      List books of a subgenre
// @Tags         lookups
// @Produce      json
// @Param        subgenre  path      string  true  "Subgenre name"
// @Success      200  {array}   BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/by-subgenre/{subgenre} [get]
func (h *BookHandler) GetBooksBySubgenrePath(c *gin.Context) {
	h.GetBooksBySubgenre(c)
}

// GetBooksByLanguagePath godoc
// @Summary      List books in a language
// @Tags         lookups
// @Produce      json
// @Param        lang  path      string  true  "Language word"  Enums(spanish, english)
// @Success      200  {array}   BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/by-language/{lang} [get]
func (h *BookHandler) GetBooksByLanguagePath(c *gin.Context) {
	h.GetBooksByLanguage(c)
}

// GetBooksByFormatPath godoc
// @Summary      List books in a format
// @Tags         lookups
// @Produce      json
// @Param        format_type  path      string  true  "Format word"  Enums(physical, e-book)
// @Success      200  {array}   BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/by-format/{format_type} [get]
func (h *BookHandler) GetBooksByFormatPath(c *gin.Context) {
	h.GetBooksByFormat(c)
}

// GetBooksByTitlePath godoc
// @Summary      Search books by title
// @Tags         lookups
// @Produce      json
// @Param        title  path      string  true  "Title fragment"
// @Success      200  {array}   BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/by-title/{title} [get]
func (h *BookHandler) GetBooksByTitlePath(c *gin.Context) {
	h.GetBooksByTitle(c)
}

// GetBooksByPublisherPath godoc
// @Summary      List books of a publisher
// @Tags         lookups
// @Produce      json
// @Param        publisher  path      string  true  "Publisher name"
// @Success      200  {array}   BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/by-publisher/{publisher} [get]
func (h *BookHandler) GetBooksByPublisherPath(c *gin.Context) {
	h.GetBooksByPublisher(c)
}

// GetBookByISBNPath godoc
// @Summary      Get a book by ISBN
// @Tags         lookups
// @Produce      json
// @Param        isbn  path      string  true  "ISBN"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/by-isbn/{isbn} [get]
func (h *BookHandler) GetBookByISBNPath(c *gin.Context) {
	h.GetBookByISBN(c)
}
