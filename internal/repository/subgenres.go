package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"gorm.io/gorm"
)

type SubgenreRepository interface {
	Create(ctx context.Context, s *model.Subgenre) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subgenre, error)
	FindByName(ctx context.Context, name string) (*model.Subgenre, error)
	List(ctx context.Context) ([]model.Subgenre, error)
	Update(ctx context.Context, s *model.Subgenre) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormSubgenreRepository struct {
	db *gorm.DB
}

func NewSubgenreRepository(db *gorm.DB) *GormSubgenreRepository {
	return &GormSubgenreRepository{db: db}
}

func (r *GormSubgenreRepository) Create(ctx context.Context, s *model.Subgenre) error {
	return translateError(r.db.WithContext(ctx).Omit("Genre", "Books").Create(s).Error)
}

func (r *GormSubgenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subgenre, error) {
	var subgenre model.Subgenre
	if err := r.db.WithContext(ctx).
		Preload("Genre").
		First(&subgenre, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &subgenre, nil
}

func (r *GormSubgenreRepository) FindByName(ctx context.Context, name string) (*model.Subgenre, error) {
	var subgenre model.Subgenre
	if err := r.db.WithContext(ctx).
		Preload("Genre").
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&subgenre).Error; err != nil {

		return nil, err
	}
	return &subgenre, nil
}

func (r *GormSubgenreRepository) List(ctx context.Context) ([]model.Subgenre, error) {
	var subgenres []model.Subgenre
	if err := r.db.WithContext(ctx).
		Preload("Genre").
		Order("name ASC").
		Find(&subgenres).Error; err != nil {

		return nil, err
	}
	return subgenres, nil
}

// Update keeps books under the subgenre filed under its (possibly new) genre.
func (r *GormSubgenreRepository) Update(ctx context.Context, s *model.Subgenre) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Subgenre{}).
			Where("id = ?", s.ID).
			Updates(map[string]any{
				"name":     s.Name,
				"genre_id": s.GenreID,
			}).Error; err != nil {

			return err
		}

		return tx.Session(&gorm.Session{SkipHooks: true}).
			Model(&model.Book{}).
			Where("subgenre_id = ?", s.ID).
			Update("genre_id", s.GenreID).Error
	}))
}

func (r *GormSubgenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subgenre_id = ?", id).Delete(&model.Book{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &model.Subgenre{}, id)
	})
}
