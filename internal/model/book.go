package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Language is the stored language code of a book.
type Language string

const (
	LanguageSpanish Language = "SPA"
	LanguageEnglish Language = "ENG"
)

func (l Language) Valid() bool {
	return l == LanguageSpanish || l == LanguageEnglish
}

// Format is the stored format code of a book.
type Format string

const (
	FormatPhysical Format = "PHY"
	FormatEBook    Format = "EB"
)

func (f Format) Valid() bool {
	return f == FormatPhysical || f == FormatEBook
}

const (
	MinPages      = 50
	MaxISBNLength = 17
)

var ErrInvalidBook = errors.New("invalid book")

type Book struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"size:100;not null;index"`
	Synopsis        string    `gorm:"type:text;not null"`
	Pages           int       `gorm:"not null;check:chk_books_pages,pages >= 50"`
	Language        Language  `gorm:"size:10;not null;index"`
	Cover           string    `gorm:"size:255"`
	ISBN            string    `gorm:"column:isbn;size:17;not null;uniqueIndex"`
	FormatType      Format    `gorm:"size:20;not null;index"`
	PublicationDate time.Time `gorm:"type:date;not null"`

	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Author      Author
	PublisherID uuid.UUID `gorm:"type:uuid;not null;index"`
	Publisher   Publisher
	GenreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Genre       Genre
	SubgenreID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Subgenre    Subgenre

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// BeforeSave runs for both inserts and full-row saves. The ISBN is stored
// upper-cased so the unique index also rejects case-only variants.
func (b *Book) BeforeSave(tx *gorm.DB) error {
	b.ISBN = CanonicalISBN(b.ISBN)
	return b.Validate()
}

// CanonicalISBN is the stored form of an ISBN: trimmed, check letter upper-cased.
func CanonicalISBN(isbn string) string {
	return strings.ToUpper(strings.TrimSpace(isbn))
}

// Validate checks the column constraints that do not need the database.
func (b *Book) Validate() error {
	switch {
	case b.Pages < MinPages:
		return fmt.Errorf("%w: pages must be at least %d", ErrInvalidBook, MinPages)
	case !b.Language.Valid():
		return fmt.Errorf("%w: unknown language %q", ErrInvalidBook, b.Language)
	case !b.FormatType.Valid():
		return fmt.Errorf("%w: unknown format %q", ErrInvalidBook, b.FormatType)
	case b.ISBN == "" || len(b.ISBN) > MaxISBNLength:
		return fmt.Errorf("%w: isbn must be 1-%d characters", ErrInvalidBook, MaxISBNLength)
	}
	return nil
}

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&Author{},
		&Publisher{},
		&Genre{},
		&Subgenre{},
		&Book{},
	}
}
