package handlers

import (
	"net/http"

	"github.com/pici355/Match-predictory-sub000/internal/middleware"
	"github.com/pici355/Match-predictory-sub000/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100" example:"I Bidoni"`
	PIN      string `json:"pin" binding:"required,len=4" example:"1234"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"I Bidoni"`
	PIN      string `json:"pin" binding:"required" example:"1234"`
}

// Register godoc
// @Summary      Register a new team
// @Description  Create a pool account with team name and 4-digit PIN, then log it in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} models.User
// @Failure      400 {object} ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Register(req.Username, req.PIN)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "errore di sessione"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Login with team name and PIN
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} models.User
// @Failure      401 {object} ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Login(req.Username, req.PIN)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "errore di sessione"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary      Logout the current session
// @Tags         auth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionUserKey)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "errore di sessione"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "disconnesso"})
}

// Me godoc
// @Summary      Current logged-in user
// @Tags         auth
// @Produce      json
// @Success      200 {object} models.User
// @Failure      401 {object} ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.authService.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
