package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Title       string    `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Author      string    `json:"author" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Genres      string    `json:"genres" gorm:"size:512;not null"` // comma-separated tags
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// GenreTags splits Genres into trimmed, non-empty tags. The stored string
// is left untouched.
func (b *Book) GenreTags() []string {
	var tags []string
	for _, part := range strings.Split(b.Genres, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
