package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	BookID     string    `json:"bookId" gorm:"index;size:36;not null"`
	AuthorID   string    `json:"authorId" gorm:"index;size:36;not null"`
	Rating     int       `json:"rating" gorm:"not null"`
	ReviewText string    `json:"reviewText" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *Review) IsAuthoredBy(userID string) bool {
	return userID != "" && r.AuthorID == userID
}

// BookWithReviews is the detail view of a single book.
type BookWithReviews struct {
	Book    *Book     `json:"book"`
	Reviews []*Review `json:"reviews"`
}
