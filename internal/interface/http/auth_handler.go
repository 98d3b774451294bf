package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mywallet-api/config"
	"github.com/oksasatya/mywallet-api/internal/application"
	"github.com/oksasatya/mywallet-api/internal/domain/entity"
	"github.com/oksasatya/mywallet-api/pkg/helpers"
	"github.com/oksasatya/mywallet-api/pkg/mailer"
	"github.com/oksasatya/mywallet-api/pkg/response"
	"github.com/oksasatya/mywallet-api/pkg/validation"
)

// AuthHandler serves registration, login, logout and the profile page.
type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cfg: cfg, Pub: pub}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusConflict, "email already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	h.enqueueWelcomeEmail(c, u)

	response.Success[any](c, http.StatusCreated, gin.H{"id": u.ID}, "registered")
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success[any](c, http.StatusOK, gin.H{"token": token}, "login successful")
}

// Logout DELETE /logout
// Requires only a well-formed bearer token; deleting an already-deleted
// session still answers 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("sessionToken")
	if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
		h.Logger.WithError(err).Error("logout failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

// Home GET /home
// The auth middleware has already resolved the session; render the user
// without the password hash.
func (h *AuthHandler) Home(c *gin.Context) {
	v, ok := c.Get("authUser")
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "invalid session", nil)
		return
	}
	u := v.(*entity.User)
	response.Success[any](c, http.StatusOK, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}, "profile")
}

func (h *AuthHandler) enqueueWelcomeEmail(c *gin.Context, u *entity.User) {
	if h.Pub == nil || h.Cfg == nil || !h.Cfg.MailSendEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]string{"name": u.Name},
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
		// registration must not fail because the broker is down
		h.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}
