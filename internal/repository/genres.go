package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, g *model.Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	FindByName(ctx context.Context, name string) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
	Update(ctx context.Context, g *model.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormGenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GormGenreRepository {
	return &GormGenreRepository{db: db}
}

func (r *GormGenreRepository) Create(ctx context.Context, g *model.Genre) error {
	return translateError(r.db.WithContext(ctx).Omit("Subgenres", "Books").Create(g).Error)
}

func (r *GormGenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).
		Preload("Subgenres").
		First(&genre, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &genre, nil
}

func (r *GormGenreRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&genre).Error; err != nil {

		return nil, err
	}
	return &genre, nil
}

func (r *GormGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).
		Preload("Subgenres").
		Order("name ASC").
		Find(&genres).Error; err != nil {

		return nil, err
	}
	return genres, nil
}

func (r *GormGenreRepository) Update(ctx context.Context, g *model.Genre) error {
	return translateError(r.db.WithContext(ctx).
		Model(&model.Genre{}).
		Where("id = ?", g.ID).
		Update("name", g.Name).Error)
}

// Delete removes the genre, its subgenres, and every book filed under the
// genre or one of those subgenres.
func (r *GormGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subgenreIDs := tx.Model(&model.Subgenre{}).Select("id").Where("genre_id = ?", id)

		if err := tx.
			Where("genre_id = ? OR subgenre_id IN (?)", id, subgenreIDs).
			Delete(&model.Book{}).Error; err != nil {

			return err
		}
		if err := tx.Where("genre_id = ?", id).Delete(&model.Subgenre{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &model.Genre{}, id)
	})
}
