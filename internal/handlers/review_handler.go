package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreview/internal/middleware"
	"bookreview/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type reviewRequest struct {
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" binding:"required"`
}

func (r reviewRequest) input() services.ReviewInput {
	return services.ReviewInput{Rating: r.Rating, ReviewText: r.ReviewText}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	var req reviewRequest
	if !bind(c, &req) {
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), middleware.GetIdentity(c), bookID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusCreated, "Review created successfully", review)
}

func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, ok := pathID(c, "reviewId")
	if !ok {
		return
	}

	var req reviewRequest
	if !bind(c, &req) {
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), middleware.GetIdentity(c), reviewID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "Review updated successfully", review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := pathID(c, "reviewId")
	if !ok {
		return
	}

	review, err := h.reviewService.Delete(c.Request.Context(), middleware.GetIdentity(c), reviewID)
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "Review deleted successfully", review)
}
