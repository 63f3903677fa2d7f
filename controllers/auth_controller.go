package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"getjoy-backend/services"
	"getjoy-backend/utils"
)

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login (POST /api/auth/login)
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := a.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// Signup (POST /api/auth/signup)
func (a *AuthController) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := a.users.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// Logout (POST /api/auth/logout)
func (a *AuthController) Logout(c *gin.Context) {
	a.users.Logout()
	utils.JSONSuccess(c, http.StatusOK, nil)
}

// Me (GET /api/auth/me) returns the session user or 401.
func (a *AuthController) Me(c *gin.Context) {
	user := a.users.CurrentUser()
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
