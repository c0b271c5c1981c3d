package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow-backend/internal/auth"
	"fleetflow-backend/internal/model"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if !model.ValidRole(model.Role(req.Role)) {
		fail(c, http.StatusBadRequest, "unknown role "+req.Role)
		return
	}

	if _, err := h.store.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		h.recorder.Record(c.Request.Context(), model.AuditEventRegistration, model.AuditFailure,
			nil, c.ClientIP(), c.Request.UserAgent())
		fail(c, http.StatusBadRequest, "email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         model.Role(req.Role),
	}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		fail(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	h.recorder.Record(c.Request.Context(), model.AuditEventRegistration, model.AuditSuccess,
		&user.ID, c.ClientIP(), c.Request.UserAgent())

	h.issueToken(c, http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		var targetID *int64
		if user != nil {
			targetID = &user.ID
		}
		h.recorder.Record(c.Request.Context(), model.AuditEventLogin, model.AuditFailure,
			targetID, c.ClientIP(), c.Request.UserAgent())
		fail(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	h.recorder.Record(c.Request.Context(), model.AuditEventLogin, model.AuditSuccess,
		&user.ID, c.ClientIP(), c.Request.UserAgent())

	h.issueToken(c, http.StatusOK, user)
}

func (h *Handler) issueToken(c *gin.Context, status int, user *model.User) {
	token, expiresAt, err := auth.GenerateToken(h.jwtSecret, h.jwtIssuer, user, time.Duration(h.tokenTTL)*time.Minute)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	ok(c, status, tokenResponse{Token: token, ExpiresAt: expiresAt, User: user})
}
