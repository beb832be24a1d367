package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre owns its subgenres; removing a genre removes them and every book
// filed under either.
type Genre struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"size:100;not null;uniqueIndex"`
	Subgenres []Subgenre `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Books     []Book     `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *Genre) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}

type Subgenre struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;uniqueIndex"`
	GenreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Genre     Genre
	Books     []Book `gorm:"foreignKey:SubgenreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Subgenre) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
