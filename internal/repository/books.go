package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*model.Book, error)
	Find(ctx context.Context, filter BookFilter) ([]model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookFilter narrows a book query. Zero-valued fields do not constrain.
// Name fields match the referenced entity's name exactly, ignoring case;
// the *Contains fields are case-insensitive substring matches.
type BookFilter struct {
	GenreName     string
	SubgenreName  string
	PublisherName string
	Language      model.Language
	Format        model.Format
	TitleContains string

	AuthorID                *uuid.UUID
	AuthorFirstNameContains string
	AuthorLastNameContains  string
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Author").
		Preload("Publisher").
		Preload("Genre").
		Preload("Subgenre")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkSubgenre(tx, book); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(book).Error
	})
	return translateError(err)
}

// checkSubgenre rejects books whose subgenre is filed under another genre.
func checkSubgenre(tx *gorm.DB, book *model.Book) error {
	var sub model.Subgenre
	err := tx.Select("id", "genre_id").First(&sub, "id = ?", book.SubgenreID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: subgenre %s", ErrReferenceNotFound, book.SubgenreID)
	}
	if err != nil {
		return err
	}
	if sub.GenreID != book.GenreID {
		return ErrSubgenreGenreMismatch
	}
	return nil
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := withRelations(r.db.WithContext(ctx)).
		First(&book, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	var book model.Book
	if err := withRelations(r.db.WithContext(ctx)).
		Where("LOWER(isbn) = ?", strings.ToLower(isbn)).
		First(&book).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) Find(ctx context.Context, f BookFilter) ([]model.Book, error) {
	db := r.db.WithContext(ctx)
	q := withRelations(db.Model(&model.Book{}))

	if f.GenreName != "" {
		q = q.Where("genre_id IN (?)", db.Model(&model.Genre{}).
			Select("id").
			Where("LOWER(name) = ?", strings.ToLower(f.GenreName)))
	}
	if f.SubgenreName != "" {
		q = q.Where("subgenre_id IN (?)", db.Model(&model.Subgenre{}).
			Select("id").
			Where("LOWER(name) = ?", strings.ToLower(f.SubgenreName)))
	}
	if f.PublisherName != "" {
		q = q.Where("publisher_id IN (?)", db.Model(&model.Publisher{}).
			Select("id").
			Where("LOWER(name) = ?", strings.ToLower(f.PublisherName)))
	}
	if f.Language != "" {
		q = q.Where("language = ?", f.Language)
	}
	if f.Format != "" {
		q = q.Where("format_type = ?", f.Format)
	}
	if f.TitleContains != "" {
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(f.TitleContains))
	}
	if f.AuthorID != nil {
		q = q.Where("author_id = ?", *f.AuthorID)
	}
	if f.AuthorFirstNameContains != "" || f.AuthorLastNameContains != "" {
		authors := db.Model(&model.Author{}).Select("id")
		if f.AuthorFirstNameContains != "" {
			authors = authors.Where(`LOWER(first_name) LIKE ? ESCAPE '\'`,
				containsPattern(f.AuthorFirstNameContains))
		}
		if f.AuthorLastNameContains != "" {
			authors = authors.Where(`LOWER(last_name) LIKE ? ESCAPE '\'`,
				containsPattern(f.AuthorLastNameContains))
		}
		q = q.Where("author_id IN (?)", authors)
	}

	var books []model.Book
	if err := q.Order("created_at ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) List(ctx context.Context) ([]model.Book, error) {
	return r.Find(ctx, BookFilter{})
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkSubgenre(tx, book); err != nil {
			return err
		}

		result := tx.Model(book).
			Select("*").
			Omit(clause.Associations, "id", "created_at").
			Updates(book)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError(err)
}

func (r *GormBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Book{}, id)
}
