package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreview/internal/services"
)

type BookHandler struct {
	bookService *services.BookService
}

func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

type bookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Description string `json:"description" binding:"required"`
	Genres      string `json:"genres" binding:"required"`
}

func (r bookRequest) input() services.BookInput {
	return services.BookInput{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		Genres:      r.Genres,
	}
}

func (h *BookHandler) Create(c *gin.Context) {
	var req bookRequest
	if !bind(c, &req) {
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "Book added successfully", book)
}

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "all books", books)
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	book, err := h.bookService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "book found successfully", book)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	var req bookRequest
	if !bind(c, &req) {
		return
	}

	book, err := h.bookService.Update(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "book update successfully", book)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	book, err := h.bookService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "book delete successfully", book)
}
