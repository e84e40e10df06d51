package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	Issuer     string
	TokenTTL   time.Duration
	BcryptCost int
	Log        zerolog.Logger
}

func NewAuthHandler(db *gorm.DB, jwtSecret, issuer string, ttlHours, bcryptCost int, log zerolog.Logger) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		Issuer:     issuer,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
		Log:        log,
	}
}

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func publicUser(u *models.User) gin.H {
	return gin.H{
		"username": u.Username,
		"role":     u.Role,
	}
}

// Register creates an account, hashes the password and issues a token.
// Usernames are case-normalized, so duplicates differing only in case
// conflict.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Username, password, and role are required.")
		return
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || strings.TrimSpace(req.Password) == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Username, password, and role are required.")
		return
	}
	if err := util.ValidateRole(req.Role); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Role must be admin or employee.")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("LOWER(username) = ?", req.Username).
		Count(&count).Error; err != nil {
		h.Log.Error().Err(err).Msg("register: user lookup failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error during registration.")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, util.CodeConflict, "User already exists.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		h.Log.Error().Err(err).Msg("register: hash password failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error during registration.")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		h.Log.Error().Err(err).Msg("register: create user failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error during registration.")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.Username, user.Role, h.TokenTTL)
	if err != nil {
		h.Log.Error().Err(err).Msg("register: issue token failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error during registration.")
		return
	}

	recordAction(h.DB, fmt.Sprintf("Registered new %s account", user.Role), user.Username)

	util.JSON(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    publicUser(&user),
	})
}

// Login checks credentials and issues a token. An unknown username is 404
// and a wrong password 401, matching the dashboard's login flow.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Username and password are required.")
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	var user models.User
	if err := h.DB.Where("LOWER(username) = LOWER(?)", req.Username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "User not found.")
		} else {
			h.Log.Error().Err(err).Msg("login: user lookup failed")
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error during login.")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Invalid credentials.")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.Username, user.Role, h.TokenTTL)
	if err != nil {
		h.Log.Error().Err(err).Msg("login: issue token failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error during login.")
		return
	}

	util.JSON(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    publicUser(&user),
	})
}
