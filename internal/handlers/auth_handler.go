package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreview/internal/config"
	"bookreview/internal/middleware"
	"bookreview/internal/models"
	"bookreview/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         config.AuthConfig
}

func NewAuthHandler(authService *services.AuthService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=6,max=25,bcryptlen"`
	Role     string `json:"role" binding:"omitempty,role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateRoleRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,role"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bind(c, &req) {
		return
	}

	// Only an admin may hand out a role above user.
	role := models.Role(req.Role)
	if role != "" && role != models.RoleUser && !middleware.GetIdentity(c).IsAdmin() {
		respondError(c, services.ErrAdminRequired)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "your account has been created successfully", user.Public())
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, res.Token, int(h.authService.Tokens().TTL().Seconds()))
	jsonOK(c, http.StatusOK, "User logged in successfully", res)
}

// Me reloads the caller from storage so the response reflects the current
// role, not the one in the token.
func (h *AuthHandler) Me(c *gin.Context) {
	who := middleware.GetIdentity(c)
	if who == nil {
		respondError(c, services.ErrInvalidToken)
		return
	}

	user, err := h.authService.GetByID(c.Request.Context(), who.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "User retrieved successfully", user.Public())
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	jsonOK(c, http.StatusOK, "User logged out successfully", nil)
}

func (h *AuthHandler) UpdateRole(c *gin.Context) {
	var req updateRoleRequest
	if !bind(c, &req) {
		return
	}

	if err := h.authService.UpdateRole(c.Request.Context(), req.UserID, models.Role(req.Role)); err != nil {
		respondError(c, err)
		return
	}

	jsonOK(c, http.StatusOK, "role has been updated", nil)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, value, maxAge, "/", "", h.secure(c), true)
}

func (h *AuthHandler) secure(c *gin.Context) bool {
	return h.cfg.CookieSecure || c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}
