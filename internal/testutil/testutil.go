// Package testutil provides an in-memory catalog database and fixtures.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/db"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh, migrated in-memory SQLite database with foreign
// keys enforced.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

// NewUnmigratedDB opens an empty in-memory database; every query against it
// fails, which is handy for exercising 500 paths.
func NewUnmigratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

// Refs bundles the four records every book must reference.
type Refs struct {
	Author    model.Author
	Publisher model.Publisher
	Genre     model.Genre
	Subgenre  model.Subgenre
}

func SeedAuthor(t *testing.T, gdb *gorm.DB, firstName, lastName string) model.Author {
	t.Helper()

	author := model.Author{FirstName: firstName, LastName: lastName, Country: "USA"}
	if err := gdb.Omit("Books").Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %s %s: %v", firstName, lastName, err)
	}
	return author
}

func SeedPublisher(t *testing.T, gdb *gorm.DB, name string) model.Publisher {
	t.Helper()

	publisher := model.Publisher{Name: name, Country: "USA", Description: name + " books"}
	if err := gdb.Omit("Books").Create(&publisher).Error; err != nil {
		t.Fatalf("failed to seed publisher %q: %v", name, err)
	}
	return publisher
}

func SeedGenre(t *testing.T, gdb *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{Name: name}
	if err := gdb.Omit("Subgenres", "Books").Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}
	return genre
}

func SeedSubgenre(t *testing.T, gdb *gorm.DB, genre model.Genre, name string) model.Subgenre {
	t.Helper()

	subgenre := model.Subgenre{Name: name, GenreID: genre.ID}
	if err := gdb.Omit("Genre", "Books").Create(&subgenre).Error; err != nil {
		t.Fatalf("failed to seed subgenre %q: %v", name, err)
	}
	subgenre.Genre = genre
	return subgenre
}

// SeedRefs creates Ursula Le Guin, Ace Books, Fantasy and High Fantasy.
func SeedRefs(t *testing.T, gdb *gorm.DB) Refs {
	t.Helper()

	genre := SeedGenre(t, gdb, "Fantasy")
	return Refs{
		Author:    SeedAuthor(t, gdb, "Ursula", "Le Guin"),
		Publisher: SeedPublisher(t, gdb, "Ace Books"),
		Genre:     genre,
		Subgenre:  SeedSubgenre(t, gdb, genre, "High Fantasy"),
	}
}

// NewBook returns an unsaved valid book referencing refs.
func NewBook(refs Refs, title, isbn string) model.Book {
	return model.Book{
		Title:           title,
		Synopsis:        "A story about " + title,
		Pages:           250,
		Language:        model.LanguageEnglish,
		Cover:           "covers/" + isbn + ".jpg",
		ISBN:            isbn,
		FormatType:      model.FormatPhysical,
		PublicationDate: time.Date(1968, time.November, 1, 0, 0, 0, 0, time.UTC),
		AuthorID:        refs.Author.ID,
		PublisherID:     refs.Publisher.ID,
		GenreID:         refs.Genre.ID,
		SubgenreID:      refs.Subgenre.ID,
	}
}

// SeedBook stores a book built by NewBook after applying mods.
func SeedBook(t *testing.T, gdb *gorm.DB, refs Refs, title, isbn string, mods ...func(*model.Book)) model.Book {
	t.Helper()

	book := NewBook(refs, title, isbn)
	for _, mod := range mods {
		mod(&book)
	}

	if err := gdb.Omit("Author", "Publisher", "Genre", "Subgenre").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return book
}
