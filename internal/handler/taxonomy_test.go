package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/testutil"
)

func TestPublisherCRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodPost, "/api/publishers", CreatePublisherRequest{
		Name:    "Tor",
		Country: "USA",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}
	created := decode[PublisherResponse](t, w)

	w = doRequest(t, router, http.MethodPost, "/api/publishers", CreatePublisherRequest{Name: "Tor"})
	expectError(t, w, http.StatusConflict, "PUBLISHER_ALREADY_EXISTS")

	w = doRequest(t, router, http.MethodPatch, "/api/publishers/"+created.ID.String(),
		map[string]any{"description": "Speculative fiction"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decode[PublisherResponse](t, w); resp.Description != "Speculative fiction" || resp.Name != "Tor" {
		t.Errorf("unexpected publisher after update %+v", resp)
	}

	w = doRequest(t, router, http.MethodGet, "/api/publishers/"+created.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodDelete, "/api/publishers/"+created.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodGet, "/api/publishers/"+created.ID.String(), nil)
	expectError(t, w, http.StatusNotFound, "PUBLISHER_NOT_FOUND")
}

func TestGenreCRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodPost, "/api/genres", GenreRequest{Name: "Fantasy"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}
	genre := decode[GenreResponse](t, w)
	if genre.Subgenres == nil || len(genre.Subgenres) != 0 {
		t.Errorf("expected empty subgenre list, got %v", genre.Subgenres)
	}

	w = doRequest(t, router, http.MethodPost, "/api/genres", GenreRequest{Name: "Fantasy"})
	expectError(t, w, http.StatusConflict, "GENRE_ALREADY_EXISTS")

	w = doRequest(t, router, http.MethodPost, "/api/subgenres", CreateSubgenreRequest{
		Name:    "Urban Fantasy",
		GenreID: genre.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}
	sub := decode[SubgenreResponse](t, w)
	if sub.Genre.ID != genre.ID || sub.Genre.Name != "Fantasy" {
		t.Errorf("expected subgenre under Fantasy, got %+v", sub.Genre)
	}

	w = doRequest(t, router, http.MethodGet, "/api/genres/"+genre.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := decode[GenreResponse](t, w); len(got.Subgenres) != 1 || got.Subgenres[0].Name != "Urban Fantasy" {
		t.Errorf("expected one subgenre, got %+v", got.Subgenres)
	}

	w = doRequest(t, router, http.MethodPatch, "/api/genres/"+genre.ID.String(), GenreRequest{Name: "Fantastic"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := decode[GenreResponse](t, w); got.Name != "Fantastic" {
		t.Errorf("expected renamed genre, got %q", got.Name)
	}
}

func TestCreateSubgenre_UnknownGenre(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodPost, "/api/subgenres", CreateSubgenreRequest{
		Name:    "Nowhere",
		GenreID: uuid.New(),
	})
	expectError(t, w, http.StatusBadRequest, "REFERENCE_NOT_FOUND")
}

func TestUpdateSubgenre_MovesBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	book := testutil.SeedBook(t, db, refs, "Tales from Earthsea", "978-0-13")
	scifi := testutil.SeedGenre(t, db, "Science Fiction")

	w := doRequest(t, router, http.MethodPatch, "/api/subgenres/"+refs.Subgenre.ID.String(),
		map[string]any{"genre_id": scifi.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if sub := decode[SubgenreResponse](t, w); sub.Genre.Name != "Science Fiction" {
		t.Errorf("expected subgenre under Science Fiction, got %q", sub.Genre.Name)
	}

	var stored model.Book
	if err := db.First(&stored, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("expected book in db, got error: %v", err)
	}
	if stored.GenreID != scifi.ID {
		t.Errorf("expected book refiled under %s, got %s", scifi.ID, stored.GenreID)
	}
}

func TestDeleteGenre_CascadesThroughSubgenres(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)
	refs := testutil.SeedRefs(t, db)
	testutil.SeedBook(t, db, refs, "The Other Wind", "978-0-14")

	w := doRequest(t, router, http.MethodDelete, "/api/genres/"+refs.Genre.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodGet, "/api/subgenres/"+refs.Subgenre.ID.String(), nil)
	expectError(t, w, http.StatusNotFound, "SUBGENRE_NOT_FOUND")

	w = doRequest(t, router, http.MethodGet, "/api/books", nil)
	if got := w.Body.String(); got != "[]" {
		t.Errorf("expected no books left, got %s", got)
	}

	w = doRequest(t, router, http.MethodDelete, "/api/genres/"+refs.Genre.ID.String(), nil)
	expectError(t, w, http.StatusNotFound, "GENRE_NOT_FOUND")
}
