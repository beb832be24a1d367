package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"size:100;not null;index"`
	LastName  string    `gorm:"size:100;not null;index"`
	Country   string    `gorm:"size:100"`
	Biography string    `gorm:"type:text"`
	Books     []Book    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
