package handlers

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"bookreview/internal/config"
	"bookreview/internal/database"
	"bookreview/internal/middleware"
	"bookreview/internal/repository"
	"bookreview/internal/services"
	"bookreview/internal/validators"
)

type route struct {
	method  string
	path    string
	stages  []gin.HandlerFunc
	handler gin.HandlerFunc
}

// NewRouter wires repositories, services and handlers onto a gin engine.
// Every route carries its own ordered list of gate stages.
func NewRouter(cfg *config.Config, db *database.DB) *gin.Engine {
	validators.Setup()

	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	tokens := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens)
	bookService := services.NewBookService(bookRepo, reviewRepo)
	reviewService := services.NewReviewService(reviewRepo, bookRepo)

	authHandler := NewAuthHandler(authService, cfg.Auth)
	bookHandler := NewBookHandler(bookService)
	reviewHandler := NewReviewHandler(reviewService)

	public := []gin.HandlerFunc{}
	optional := []gin.HandlerFunc{middleware.OptionalAuth(tokens, cfg.Auth.CookieName)}
	authed := []gin.HandlerFunc{middleware.Auth(tokens, cfg.Auth.CookieName)}
	admin := append(append([]gin.HandlerFunc{}, authed...), middleware.RequireAdmin())

	r := gin.New()
	r.Use(gin.CustomRecovery(recovery))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	uploads := r.Group(cfg.Uploads.URLPrefix, uploadHeaders())
	uploads.Static("/", cfg.Uploads.Path)

	routes := []route{
		{http.MethodGet, "/", public, welcome},

		{http.MethodPost, "/api/auth/register", optional, authHandler.Register},
		{http.MethodPost, "/api/auth/login", public, authHandler.Login},
		{http.MethodGet, "/api/auth/me", authed, authHandler.Me},
		{http.MethodPost, "/api/auth/logout", authed, authHandler.Logout},
		{http.MethodPost, "/api/auth/update-role", admin, authHandler.UpdateRole},

		{http.MethodGet, "/api/books", public, bookHandler.List},
		{http.MethodGet, "/api/books/get/:id", public, bookHandler.Get},
		{http.MethodPost, "/api/books/addBook", admin, bookHandler.Create},
		{http.MethodPost, "/api/books/update/:bookId", admin, bookHandler.Update},
		{http.MethodDelete, "/api/books/delete/:bookId", admin, bookHandler.Delete},

		{http.MethodPost, "/api/reviews/addReview/:bookId", authed, reviewHandler.Create},
		{http.MethodPost, "/api/reviews/updateReview/:reviewId", authed, reviewHandler.Update},
		{http.MethodGet, "/api/reviews/getReview/:bookId", authed, reviewHandler.ListByBook},
		{http.MethodDelete, "/api/reviews/deleteReview/:reviewId", authed, reviewHandler.Delete},
	}

	for _, rt := range routes {
		chain := append(append([]gin.HandlerFunc{}, rt.stages...), rt.handler)
		r.Handle(rt.method, rt.path, chain...)
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, services.NotFound("Route not found"))
	})

	return r
}

// uploadHeaders keeps browsers from sniffing or executing uploaded content.
func uploadHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Security-Policy", "default-src 'none'; img-src 'self'; style-src 'unsafe-inline'")
		c.Next()
	}
}

func welcome(c *gin.Context) {
	jsonOK(c, http.StatusOK, "Welcome to Book Review App", nil)
}
