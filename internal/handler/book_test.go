package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/testutil"
	"gorm.io/gorm"
)

type fakeBookRepo struct {
	CreateFn     func(ctx context.Context, b *model.Book) error
	FindByIDFn   func(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindByISBNFn func(ctx context.Context, isbn string) (*model.Book, error)
	FindFn       func(ctx context.Context, f repository.BookFilter) ([]model.Book, error)
	ListFn       func(ctx context.Context) ([]model.Book, error)
	UpdateFn     func(ctx context.Context, b *model.Book) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	if f.FindByISBNFn != nil {
		return f.FindByISBNFn(ctx, isbn)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) Find(ctx context.Context, filter repository.BookFilter) ([]model.Book, error) {
	if f.FindFn != nil {
		return f.FindFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func createBookBody(refs testutil.Refs, title, isbn string) map[string]any {
	return map[string]any{
		"title":            title,
		"synopsis":         "A young mage learns the cost of power.",
		"pages":            183,
		"language":         "ENG",
		"cover":            "covers/earthsea.jpg",
		"isbn":             isbn,
		"format_type":      "PHY",
		"publication_date": "1968-11-01",
		"author_id":        refs.Author.ID,
		"publisher_id":     refs.Publisher.ID,
		"genre_id":         refs.Genre.ID,
		"subgenre_id":      refs.Subgenre.ID,
	}
}

func TestCreateBook_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)

	w := doRequest(t, router, http.MethodPost, "/api/books",
		createBookBody(refs, "A Wizard of Earthsea", "978-0-553-38304-1"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)

	if resp.ID == uuid.Nil {
		t.Errorf("expected non-empty ID")
	}
	if resp.Author.FirstName != "Ursula" || resp.Author.LastName != "Le Guin" {
		t.Errorf("unexpected author %+v", resp.Author)
	}
	if resp.Publisher.Name != "Ace Books" {
		t.Errorf("expected publisher Ace Books, got %q", resp.Publisher.Name)
	}
	if resp.Genre.Name != "Fantasy" || resp.Subgenre.Name != "High Fantasy" {
		t.Errorf("unexpected genre/subgenre %q/%q", resp.Genre.Name, resp.Subgenre.Name)
	}
	if got := resp.PublicationDate.Format("2006-01-02"); got != "1968-11-01" {
		t.Errorf("expected publication_date 1968-11-01, got %s", got)
	}

	var stored model.Book
	if err := db.First(&stored, "id = ?", resp.ID).Error; err != nil {
		t.Fatalf("expected book in db, got error: %v", err)
	}
	if stored.Pages != 183 {
		t.Errorf("expected 183 pages, got %d", stored.Pages)
	}
}

func TestCreateBook_ValidationErrors(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)

	tests := []struct {
		name  string
		mod   func(body map[string]any)
		field string
	}{
		{"too few pages", func(b map[string]any) { b["pages"] = 49 }, "pages"},
		{"unknown language", func(b map[string]any) { b["language"] = "FRA" }, "language"},
		{"unknown format", func(b map[string]any) { b["format_type"] = "AUDIO" }, "format_type"},
		{"malformed isbn", func(b map[string]any) { b["isbn"] = "not-an-isbn" }, "isbn"},
		{"isbn too long", func(b map[string]any) { b["isbn"] = "978-0-553-38304-1-22" }, "isbn"},
		{"missing title", func(b map[string]any) { delete(b, "title") }, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := createBookBody(refs, "Bad Book", "978-0-00")
			tt.mod(body)

			w := doRequest(t, router, http.MethodPost, "/api/books", body)
			resp := expectError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")

			found := false
			for _, fe := range resp.Errors {
				if fe.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field error for %q, got %+v", tt.field, resp.Errors)
			}
		})
	}
}

func TestCreateBook_MissingPublicationDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)

	body := createBookBody(refs, "Undated", "978-0-01")
	delete(body, "publication_date")

	w := doRequest(t, router, http.MethodPost, "/api/books", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateBook_UnknownReference(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)

	body := createBookBody(refs, "Orphan", "978-0-02")
	body["publisher_id"] = uuid.New()

	w := doRequest(t, router, http.MethodPost, "/api/books", body)
	expectError(t, w, http.StatusBadRequest, "REFERENCE_NOT_FOUND")
}

func TestCreateBook_SubgenreFromAnotherGenre(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	scifi := testutil.SeedGenre(t, db, "Science Fiction")

	body := createBookBody(refs, "Misfiled", "978-0-03")
	body["genre_id"] = scifi.ID

	w := doRequest(t, router, http.MethodPost, "/api/books", body)
	expectError(t, w, http.StatusBadRequest, "SUBGENRE_GENRE_MISMATCH")
}

func TestCreateBook_DuplicateISBN(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	testutil.SeedBook(t, db, refs, "First", "978-0-04")

	w := doRequest(t, router, http.MethodPost, "/api/books", createBookBody(refs, "Second", "978-0-04"))
	expectError(t, w, http.StatusConflict, "BOOK_ALREADY_EXISTS")
}

func TestCreateBook_InvalidJSON(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodPost, "/api/books", "not an object")
	expectError(t, w, http.StatusBadRequest, "INVALID_BODY")
}

func TestListBooks_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	testutil.SeedBook(t, db, refs, "One", "978-0-05")
	testutil.SeedBook(t, db, refs, "Two", "978-0-06")

	w := doRequest(t, router, http.MethodGet, "/api/books", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	books := decode[[]BookResponse](t, w)
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].Title != "One" || books[1].Title != "Two" {
		t.Errorf("expected creation order, got %q, %q", books[0].Title, books[1].Title)
	}
}

func TestListBooks_EmptyIsArray(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodGet, "/api/books", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}

func TestListBooks_RepoError(t *testing.T) {
	repo := &fakeBookRepo{
		ListFn: func(ctx context.Context) ([]model.Book, error) {
			return nil, errors.New("db down")
		},
	}
	router := setupTestRouterWithRepos(testRepos{books: repo})

	w := doRequest(t, router, http.MethodGet, "/api/books", nil)
	expectError(t, w, http.StatusInternalServerError, "BOOK_LIST_FAILED")
}

func TestGetBookByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	book := testutil.SeedBook(t, db, refs, "The Lathe of Heaven", "978-0-07")

	w := doRequest(t, router, http.MethodGet, "/api/books/"+book.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decode[BookResponse](t, w); resp.Title != book.Title {
		t.Errorf("expected title %q, got %q", book.Title, resp.Title)
	}

	w = doRequest(t, router, http.MethodGet, "/api/books/"+uuid.NewString(), nil)
	expectError(t, w, http.StatusNotFound, "BOOK_NOT_FOUND")

	w = doRequest(t, router, http.MethodGet, "/api/books/not-a-uuid", nil)
	expectError(t, w, http.StatusBadRequest, "INVALID_BOOK_ID")
}

func TestGetBookByID_RepoError(t *testing.T) {
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Book, error) {
			return nil, errors.New("db down")
		},
	}
	router := setupTestRouterWithRepos(testRepos{books: repo})

	w := doRequest(t, router, http.MethodGet, "/api/books/"+uuid.NewString(), nil)
	expectError(t, w, http.StatusInternalServerError, "BOOK_FETCH_FAILED")
}

func TestUpdateBook_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	book := testutil.SeedBook(t, db, refs, "Old Title", "978-0-08")

	w := doRequest(t, router, http.MethodPatch, "/api/books/"+book.ID.String(), map[string]any{
		"title":            "New Title",
		"format_type":      "EB",
		"publication_date": "1971-03-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)
	if resp.Title != "New Title" {
		t.Errorf("expected updated title, got %q", resp.Title)
	}
	if resp.FormatType != model.FormatEBook {
		t.Errorf("expected format EB, got %q", resp.FormatType)
	}
	if resp.ISBN != book.ISBN {
		t.Errorf("expected untouched isbn %q, got %q", book.ISBN, resp.ISBN)
	}
	if got := resp.PublicationDate.Format("2006-01-02"); got != "1971-03-01" {
		t.Errorf("expected publication_date 1971-03-01, got %s", got)
	}
}

func TestUpdateBook_Errors(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	book := testutil.SeedBook(t, db, refs, "Target", "978-0-09")
	testutil.SeedBook(t, db, refs, "Other", "978-0-10")
	path := "/api/books/" + book.ID.String()

	w := doRequest(t, router, http.MethodPatch, path, map[string]any{})
	expectError(t, w, http.StatusBadRequest, "NO_FIELDS_TO_UPDATE")

	w = doRequest(t, router, http.MethodPatch, path, map[string]any{"isbn": "978-0-10"})
	expectError(t, w, http.StatusConflict, "BOOK_ALREADY_EXISTS")

	w = doRequest(t, router, http.MethodPatch, path, map[string]any{"pages": 10})
	expectError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")

	w = doRequest(t, router, http.MethodPatch, "/api/books/"+uuid.NewString(), map[string]any{"title": "x"})
	expectError(t, w, http.StatusNotFound, "BOOK_NOT_FOUND")
}

func TestDeleteBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	book := testutil.SeedBook(t, db, refs, "Doomed", "978-0-11")

	w := doRequest(t, router, http.MethodDelete, "/api/books/"+book.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodDelete, "/api/books/"+book.ID.String(), nil)
	expectError(t, w, http.StatusNotFound, "BOOK_NOT_FOUND")
}
