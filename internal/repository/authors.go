package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(ctx context.Context, a *model.Author) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	FindByName(ctx context.Context, firstName, lastName string) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) Create(ctx context.Context, a *model.Author) error {
	return translateError(r.db.WithContext(ctx).Omit("Books").Create(a).Error)
}

func (r *GormAuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).First(&author, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// FindByName matches both names exactly, ignoring case.
func (r *GormAuthorRepository) FindByName(ctx context.Context, firstName, lastName string) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).
		Where("LOWER(first_name) = ? AND LOWER(last_name) = ?",
			strings.ToLower(firstName), strings.ToLower(lastName)).
		First(&author).Error; err != nil {

		return nil, err
	}
	return &author, nil
}

func (r *GormAuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&authors).Error; err != nil {

		return nil, err
	}
	return authors, nil
}

func (r *GormAuthorRepository) Update(ctx context.Context, a *model.Author) error {
	return translateError(r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"first_name": a.FirstName,
			"last_name":  a.LastName,
			"country":    a.Country,
			"biography":  a.Biography,
		}).Error)
}

// Delete removes the author and every book written by them.
func (r *GormAuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&model.Book{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &model.Author{}, id)
	})
}

// deleteByID reports gorm.ErrRecordNotFound when nothing matched.
func deleteByID(tx *gorm.DB, value any, id uuid.UUID) error {
	result := tx.Delete(value, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
