package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mywallet-api/internal/application"
	"github.com/oksasatya/mywallet-api/pkg/response"
	"github.com/oksasatya/mywallet-api/pkg/validation"
)

// MovementHandler serves ledger entry creation and listing.
type MovementHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewMovementHandler(svc *application.Service, logger *logrus.Logger) *MovementHandler {
	return &MovementHandler{Svc: svc, Logger: logger}
}

// Value is a pointer so an explicit 0 passes the presence check while a
// missing field still fails it.
type movementRequest struct {
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Value       *float64 `json:"value" binding:"required"`
	Type        string   `json:"type" binding:"required"`
}

// Create POST /newmovement
// Check order is observable to clients and deliberate: header presence
// (middleware), then payload schema, then token resolution.
func (h *MovementHandler) Create(c *gin.Context) {
	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token := c.GetString("sessionToken")
	u, err := h.Svc.ResolveToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, application.ErrUnauthenticated) {
			response.Error[any](c, http.StatusUnauthorized, "invalid session", nil)
			return
		}
		h.Logger.WithError(err).Error("resolve token failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	m, err := h.Svc.CreateMovement(c.Request.Context(), u.ID, application.MovementInput{
		Date:        req.Date,
		Description: req.Description,
		Value:       *req.Value,
		Type:        req.Type,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create movement failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success[any](c, http.StatusCreated, m, "movement recorded")
}

// List GET /movements
func (h *MovementHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	ms, err := h.Svc.ListMovements(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list movements failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success[any](c, http.StatusOK, ms, "movements")
}
