// Package catalog resolves named book lookups (by genre, ISBN, author and so
// on) into validated repository filters.
//
// Referenced entities are looked up by natural key before any book query so
// that an unknown filter value and an empty result stay distinguishable.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"gorm.io/gorm"
)

const (
	CodeGenreNotFound     = "GENRE_NOT_FOUND"
	CodeSubgenreNotFound  = "SUBGENRE_NOT_FOUND"
	CodePublisherNotFound = "PUBLISHER_NOT_FOUND"
	CodeAuthorNotFound    = "AUTHOR_NOT_FOUND"
	CodeBookNotFound      = "BOOK_NOT_FOUND"
	CodeBooksNotFound     = "BOOKS_NOT_FOUND"
	CodeLanguageUnknown   = "LANGUAGE_NOT_SUPPORTED"
	CodeFormatUnknown     = "FORMAT_NOT_SUPPORTED"
	CodeAuthorRequired    = "AUTHOR_NAME_REQUIRED"
	CodeAuthorToken       = "INVALID_AUTHOR_TOKEN"
	CodeAuthorHasNoBooks  = "AUTHOR_HAS_NO_BOOKS"
)

type Resolver struct {
	books      repository.BookRepository
	authors    repository.AuthorRepository
	publishers repository.PublisherRepository
	genres     repository.GenreRepository
	subgenres  repository.SubgenreRepository
}

func NewResolver(
	books repository.BookRepository,
	authors repository.AuthorRepository,
	publishers repository.PublisherRepository,
	genres repository.GenreRepository,
	subgenres repository.SubgenreRepository,
) *Resolver {
	return &Resolver{
		books:      books,
		authors:    authors,
		publishers: publishers,
		genres:     genres,
		subgenres:  subgenres,
	}
}

func (r *Resolver) ByGenre(ctx context.Context, raw string) ([]model.Book, error) {
	genre, err := r.genres.FindByName(ctx, normalize(raw))
	if err != nil {
		return nil, missing(err, notFound(CodeGenreNotFound, "Genre not found."))
	}

	return r.nonEmpty(ctx, repository.BookFilter{GenreName: genre.Name},
		"No books found with that genre.")
}

func (r *Resolver) BySubgenre(ctx context.Context, raw string) ([]model.Book, error) {
	subgenre, err := r.subgenres.FindByName(ctx, normalize(raw))
	if err != nil {
		return nil, missing(err, notFound(CodeSubgenreNotFound, "Subgenre not found."))
	}

	return r.nonEmpty(ctx, repository.BookFilter{SubgenreName: subgenre.Name},
		"No books found with that subgenre.")
}

func (r *Resolver) ByPublisher(ctx context.Context, raw string) ([]model.Book, error) {
	publisher, err := r.publishers.FindByName(ctx, normalize(raw))
	if err != nil {
		return nil, missing(err, notFound(CodePublisherNotFound, "Publisher not found."))
	}

	return r.nonEmpty(ctx, repository.BookFilter{PublisherName: publisher.Name},
		"No books found for that publisher.")
}

// ByLanguage rejects words outside the fixed table without touching storage.
func (r *Resolver) ByLanguage(ctx context.Context, raw string) ([]model.Book, error) {
	word := normalize(raw)
	code, ok := LanguageCode(word)
	if !ok {
		return nil, notFound(CodeLanguageUnknown, "Language not supported.")
	}

	return r.nonEmpty(ctx, repository.BookFilter{Language: code},
		fmt.Sprintf("No books found in %s.", word))
}

// ByFormat rejects words outside the fixed table without touching storage.
func (r *Resolver) ByFormat(ctx context.Context, raw string) ([]model.Book, error) {
	code, ok := FormatCode(raw)
	if !ok {
		return nil, notFound(CodeFormatUnknown, "Format not supported.")
	}

	return r.nonEmpty(ctx, repository.BookFilter{Format: code},
		"No books found in that format.")
}

func (r *Resolver) ByTitle(ctx context.Context, raw string) ([]model.Book, error) {
	return r.nonEmpty(ctx, repository.BookFilter{TitleContains: normalize(raw)},
		"No books found.")
}

func (r *Resolver) ByISBN(ctx context.Context, raw string) (*model.Book, error) {
	book, err := r.books.FindByISBN(ctx, normalize(raw))
	if err != nil {
		return nil, missing(err, notFound(CodeBookNotFound, "Book not found."))
	}
	return book, nil
}

// ByAuthorName matches books whose author's names contain the given
// fragments, ignoring case. Both fragments apply when both are given.
func (r *Resolver) ByAuthorName(ctx context.Context, firstName, lastName string) ([]model.Book, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" && lastName == "" {
		return nil, invalidInput(CodeAuthorRequired,
			"You must provide at least 'first_name' or 'last_name'.")
	}

	return r.nonEmpty(ctx, repository.BookFilter{
		AuthorFirstNameContains: firstName,
		AuthorLastNameContains:  lastName,
	}, "No books found for the given author parameters.")
}

// ByAuthorToken resolves a "First-Last" token to exactly one author and
// returns their books. An author without books yields a KindEmpty error.
func (r *Resolver) ByAuthorToken(ctx context.Context, token string) ([]model.Book, error) {
	first, last, ok := SplitAuthorToken(token)
	if !ok {
		return nil, invalidInput(CodeAuthorToken,
			"Author must be given as 'FirstName-LastName'.")
	}

	author, err := r.authors.FindByName(ctx, first, last)
	if err != nil {
		return nil, missing(err, notFound(CodeAuthorNotFound, "Author not found."))
	}

	books, err := r.books.Find(ctx, repository.BookFilter{AuthorID: &author.ID})
	if err != nil {
		return nil, fmt.Errorf("find books by author: %w", err)
	}
	if len(books) == 0 {
		return nil, empty(CodeAuthorHasNoBooks, "Author exists but has no books.")
	}
	return books, nil
}

func (r *Resolver) nonEmpty(ctx context.Context, f repository.BookFilter, message string) ([]model.Book, error) {
	books, err := r.books.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	if len(books) == 0 {
		return nil, notFound(CodeBooksNotFound, message)
	}
	return books, nil
}

// missing swaps a record-not-found error for the lookup's own error and
// wraps anything else as a storage failure.
func missing(err error, lookupErr *Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return lookupErr
	}
	return fmt.Errorf("lookup: %w", err)
}
