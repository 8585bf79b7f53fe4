package repository

import (
	"context"

	"gorm.io/gorm"

	"bookreview/internal/database"
	"bookreview/internal/models"
)

type BookRepository struct {
	db *database.DB
}

func NewBookRepository(db *database.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	book := &models.Book{}
	err := r.db.WithContext(ctx).Where("id = ?", id).First(book).Error
	if err != nil {
		return nil, translate(err)
	}
	return book, nil
}

// Create inserts the book. A taken title yields ErrDuplicate.
func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	return translate(r.db.WithContext(ctx).Create(book).Error)
}

// Update writes the mutable fields of an existing book.
func (r *BookRepository) Update(ctx context.Context, book *models.Book) error {
	res := r.db.WithContext(ctx).Model(book).
		Select("title", "author", "description", "genres", "updated_at").
		Updates(book)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the book together with its reviews.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Book{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *BookRepository) List(ctx context.Context) ([]*models.Book, error) {
	var books []*models.Book
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
