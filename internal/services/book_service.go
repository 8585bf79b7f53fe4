package services

import (
	"context"
	"errors"

	"bookreview/internal/models"
	"bookreview/internal/repository"
)

type BookStore interface {
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Book, error)
}

type BookInput struct {
	Title       string
	Author      string
	Description string
	Genres      string
}

type BookService struct {
	books   BookStore
	reviews ReviewStore
}

func NewBookService(books BookStore, reviews ReviewStore) *BookService {
	return &BookService{
		books:   books,
		reviews: reviews,
	}
}

func (s *BookService) Create(ctx context.Context, in BookInput) (*models.Book, error) {
	book := &models.Book{}
	in.apply(book)

	if err := s.books.Create(ctx, book); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrBookExists
		}
		return nil, Internal(err)
	}
	return book, nil
}

func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	if books == nil {
		books = []*models.Book{}
	}
	return books, nil
}

func (s *BookService) GetByID(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, Internal(err)
	}
	return book, nil
}

// Get returns the book together with its reviews.
func (s *BookService) Get(ctx context.Context, id string) (*models.BookWithReviews, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByBook(ctx, id)
	if err != nil {
		return nil, Internal(err)
	}
	if reviews == nil {
		reviews = []*models.Review{}
	}

	return &models.BookWithReviews{Book: book, Reviews: reviews}, nil
}

// Update overwrites all mutable fields of an existing book.
func (s *BookService) Update(ctx context.Context, id string, in BookInput) (*models.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(book)
	if err := s.books.Update(ctx, book); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrBookExists
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrBookNotFound
		}
		return nil, Internal(err)
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, Internal(err)
	}
	return book, nil
}

// apply stores the fields exactly as submitted.
func (in BookInput) apply(book *models.Book) {
	book.Title = in.Title
	book.Author = in.Author
	book.Description = in.Description
	book.Genres = in.Genres
}
