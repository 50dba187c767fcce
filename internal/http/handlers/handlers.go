package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/endpoint/summary-panel/internal/db"
	"github.com/endpoint/summary-panel/internal/feedback"
	"github.com/endpoint/summary-panel/internal/host"
	"github.com/endpoint/summary-panel/internal/models"
	"github.com/endpoint/summary-panel/internal/service"
	"github.com/endpoint/summary-panel/internal/view"
)

type Handler struct {
	Panels    *service.PanelService
	Sessions  *service.Registry
	Hosts     host.Factory
	Store     *db.Store
	Validator *validator.Validate
	Logger    zerolog.Logger
	Timeout   time.Duration
}

type CreatePanelRequest struct {
	TicketID string `json:"ticket_id" validate:"required,max=64"`
}

type FeedbackRequest struct {
	Value string `json:"value" validate:"required,oneof=positive negative"`
}

type DevSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,dive,keys,required,endkeys,numeric"`
}

type DevTicketRequest struct {
	CreatedAt time.Time         `json:"created_at" validate:"required"`
	Fields    map[string]string `json:"fields" validate:"dive,keys,numeric,endkeys,max=65536"`
}

// @Summary Health check
// @Description Reports liveness; pings the development host database when configured
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Initialize a panel
// @Description Reads settings and ticket fields from the host and renders the summary panel
// @Tags panels
// @Accept json
// @Produce json
// @Param body body CreatePanelRequest true "ticket"
// @Success 201 {object} service.Session
// @Failure 400 {object} map[string]any
// @Router /api/panels [post]
func (h *Handler) CreatePanel(c *gin.Context) {
	var req CreatePanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	sess := h.Panels.Init(ctx, h.Hosts(req.TicketID), req.TicketID)
	h.Sessions.Add(sess)
	c.JSON(http.StatusCreated, sess)
}

// @Summary Panel display
// @Tags panels
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} service.Session
// @Failure 404 {object} map[string]any
// @Router /api/panels/{id} [get]
func (h *Handler) GetPanel(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess)
}

// @Summary Panel page
// @Description HTML rendering of the panel display
// @Tags panels
// @Produce html
// @Param id path string true "Session ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} map[string]any
// @Router /panels/{id} [get]
func (h *Handler) PanelPage(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, view.PanelTemplate, view.Page{
		Locale:      sess.Locale,
		Display:     sess.Display,
		Resize:      sess.Resize,
		FeedbackURL: "/api/panels/" + sess.ID + "/feedback",
	})
}

// @Summary Record reviewer feedback
// @Description Issues a write of the feedback value unless it matches the ticket's value at load time
// @Tags panels
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body FeedbackRequest true "feedback"
// @Success 202 {object} map[string]any
// @Router /api/panels/{id}/feedback [post]
func (h *Handler) SetFeedback(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	if err := sess.SetFeedback(models.FeedbackValue(req.Value)); err != nil {
		if errors.Is(err, feedback.ErrInvalidFeedback) {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "FEEDBACK_ERROR", "Failed to record feedback", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// @Summary Tear down a panel
// @Description Forgets the session; writes already issued are still delivered
// @Tags panels
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]any
// @Router /api/panels/{id} [delete]
func (h *Handler) DeletePanel(c *gin.Context) {
	if err := h.Sessions.Remove(c.Param("id")); err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Panel not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Replace development host settings
// @Tags dev
// @Accept json
// @Param body body DevSettingsRequest true "settings"
// @Success 204
// @Router /api/dev/settings [put]
func (h *Handler) PutDevSettings(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}
	var req DevSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	if err := h.Store.ReplaceSettings(c.Request.Context(), req.Settings); err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to save settings", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Seed a development host ticket
// @Tags dev
// @Accept json
// @Param id path string true "Ticket ID"
// @Param body body DevTicketRequest true "ticket"
// @Success 204
// @Router /api/dev/tickets/{id} [put]
func (h *Handler) PutDevTicket(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}
	var req DevTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	if err := h.Store.UpsertTicket(c.Request.Context(), c.Param("id"), req.CreatedAt, req.Fields); err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to save ticket", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) session(c *gin.Context) (*service.Session, bool) {
	sess, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Panel not found", nil)
		return nil, false
	}
	return sess, true
}

func (h *Handler) requireStore(c *gin.Context) bool {
	if h.Store == nil {
		writeError(c, http.StatusNotFound, "DEV_HOST_DISABLED", "Development host is not configured", nil)
		return false
	}
	return true
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
