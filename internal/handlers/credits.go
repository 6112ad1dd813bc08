package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roomlift-backend/internal/credits"
	"roomlift-backend/internal/models"
)

type CreditsHandler struct {
	ledger *credits.Ledger
}

func NewCreditsHandler(ledger *credits.Ledger) *CreditsHandler {
	return &CreditsHandler{ledger: ledger}
}

func (h *CreditsHandler) GetCredits(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	plan, used, err := h.ledger.CurrentPlan(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read credits",
			Message: err.Error(),
		})
		return
	}

	remaining, err := h.ledger.Remaining(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read credits",
			Message: err.Error(),
		})
		return
	}

	resp := models.CreditsResponse{
		Plan: string(plan),
		Used: used,
	}
	if remaining == credits.Unlimited {
		resp.Unlimited = true
	} else {
		resp.Remaining = remaining
	}
	c.JSON(http.StatusOK, resp)
}

// SetPlan is the upgrade path: it changes the tier without resetting the used
// count.
func (h *CreditsHandler) SetPlan(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.SetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	plan, err := credits.ParsePlan(req.Plan)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.ledger.SetPlan(uid, plan); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to set plan",
			Message: err.Error(),
		})
		return
	}

	h.GetCredits(c)
}
