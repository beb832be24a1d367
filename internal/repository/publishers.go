package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(ctx context.Context, p *model.Publisher) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Publisher, error)
	FindByName(ctx context.Context, name string) (*model.Publisher, error)
	List(ctx context.Context) ([]model.Publisher, error)
	Update(ctx context.Context, p *model.Publisher) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormPublisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) *GormPublisherRepository {
	return &GormPublisherRepository{db: db}
}

func (r *GormPublisherRepository) Create(ctx context.Context, p *model.Publisher) error {
	return translateError(r.db.WithContext(ctx).Omit("Books").Create(p).Error)
}

func (r *GormPublisherRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Publisher, error) {
	var publisher model.Publisher
	if err := r.db.WithContext(ctx).First(&publisher, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (r *GormPublisherRepository) FindByName(ctx context.Context, name string) (*model.Publisher, error) {
	var publisher model.Publisher
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&publisher).Error; err != nil {

		return nil, err
	}
	return &publisher, nil
}

func (r *GormPublisherRepository) List(ctx context.Context) ([]model.Publisher, error) {
	var publishers []model.Publisher
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&publishers).Error; err != nil {
		return nil, err
	}
	return publishers, nil
}

func (r *GormPublisherRepository) Update(ctx context.Context, p *model.Publisher) error {
	return translateError(r.db.WithContext(ctx).
		Model(&model.Publisher{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"country":     p.Country,
			"description": p.Description,
		}).Error)
}

func (r *GormPublisherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publisher_id = ?", id).Delete(&model.Book{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &model.Publisher{}, id)
	})
}
