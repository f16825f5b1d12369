// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
	"github.com/J-Hunxho/LowkeyLuxuryMain/services/booking"
	"github.com/J-Hunxho/LowkeyLuxuryMain/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP. Routes run behind
// OptionalAuthMiddleware: individual transitions decide whether a signed-in
// user is required.
type BookingHandler struct {
	Svc    booking.WizardService
	logger *zap.Logger
}

func NewBookingHandler(svc booking.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, logger: logger}
}

// contextUserID returns the userID set by the auth middleware, or "".
func contextUserID(c *gin.Context) string {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// respondWizardError maps wizard errors onto HTTP statuses. The auth-required
// signal carries a machine-readable marker for the front-end's auth prompt.
func (h *BookingHandler) respondWizardError(c *gin.Context, err error) {
	var declined booking.PaymentDeclinedError
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found or expired", "")
	case errors.Is(err, booking.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":  "Authentication required",
			"signal": "auth_required",
		})
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Action not valid for current booking step", "")
	case errors.Is(err, booking.ErrScheduleIncomplete):
		utils.JSONError(c, http.StatusBadRequest, "Both date and time are required", "")
	case errors.As(err, &declined):
		utils.JSONError(c, http.StatusPaymentRequired, "Payment declined", declined.Reason)
	default:
		h.logger.Error("booking wizard error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", "")
	}
}

// InitiateSession starts a new wizard run at the catalog step.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.Svc.InitiateSession(c.Request.Context(), contextUserID(c))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectService picks a catalog entry.
func (h *BookingHandler) SelectService(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Svc.SelectService(c.Request.Context(), c.Param("sessionID"), req.ServiceID, contextUserID(c))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectTier picks a tier within the selected package.
func (h *BookingHandler) SelectTier(c *gin.Context) {
	var req struct {
		TierID string `json:"tierId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Svc.SelectTier(c.Request.Context(), c.Param("sessionID"), req.TierID, contextUserID(c))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetSchedule records date and time and advances to payment.
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Svc.SetSchedule(c.Request.Context(), c.Param("sessionID"), req.Date, req.Time)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back walks one wizard step backwards.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmPayment charges the card and finalizes the booking.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var req struct {
		Card models.CardDetails `json:"card" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Svc.ConfirmPayment(c.Request.Context(), c.Param("sessionID"), req.Card)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ResetSession returns a confirmed wizard to the catalog step.
func (h *BookingHandler) ResetSession(c *gin.Context) {
	session, err := h.Svc.ResetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
