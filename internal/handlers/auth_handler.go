package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apptrackr/backend/internal/auth"
	"github.com/apptrackr/backend/internal/dtos"
	"github.com/apptrackr/backend/internal/middleware"
	"github.com/apptrackr/backend/internal/models"
	"github.com/apptrackr/backend/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
	Auth  *auth.Manager

	// email of the shared read-only demo account, "" when disabled
	DemoEmail string
}

func NewAuthHandler(users *services.UserService, authMgr *auth.Manager, demoEmail string) *AuthHandler {
	return &AuthHandler{Users: users, Auth: authMgr, DemoEmail: demoEmail}
}

func (h *AuthHandler) isDemo(email string) bool {
	return h.DemoEmail != "" && email == h.DemoEmail
}

// issueSession signs a fresh token and sets the auth cookie.
func (h *AuthHandler) issueSession(c *gin.Context, u *models.User) error {
	token, err := h.Auth.CreateToken(u, h.isDemo(u.Email))
	if err != nil {
		return err
	}
	h.Auth.SetCookie(c.Writer, token)
	return nil
}

// Register is POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": bindErrorMessage(err)})
		return
	}

	user, err := h.Users.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.issueSession(c, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": dtos.NewUserResponse(user)})
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "please provide email and password"})
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.issueSession(c, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dtos.NewUserResponse(user)})
}

// Logout is POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Auth.ClearCookie(c.Writer)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{}})
}

// Info is GET /auth/info.
func (h *AuthHandler) Info(c *gin.Context) {
	user, err := h.Users.Get(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dtos.NewUserResponse(user)})
}

// UpdateUser is PATCH /auth/updateUser. The cookie is re-issued because the
// token carries the user's name.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req dtos.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": bindErrorMessage(err)})
		return
	}

	user, err := h.Users.UpdateProfile(middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.issueSession(c, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dtos.NewUserResponse(user)})
}

// UpdatePassword is PATCH /auth/updatePassword.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dtos.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "please provide all values"})
		return
	}

	user, err := h.Users.UpdatePassword(middleware.UserID(c), req.OldPassword, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dtos.NewUserResponse(user)})
}
