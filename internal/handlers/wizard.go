package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"roomlift-backend/internal/generation"
	"roomlift-backend/internal/models"
	"roomlift-backend/internal/wizard"
)

type WizardHandler struct {
	manager   *wizard.Manager
	ledger    wizard.CreditLedger
	generator wizard.Generator
	uploadDir string
}

func NewWizardHandler(manager *wizard.Manager, ledger wizard.CreditLedger, generator wizard.Generator, uploadDir string) *WizardHandler {
	return &WizardHandler{
		manager:   manager,
		ledger:    ledger,
		generator: generator,
		uploadDir: uploadDir,
	}
}

func (h *WizardHandler) CreateSession(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	session := h.manager.Create(uid)
	c.JSON(http.StatusOK, sessionResponse(session.Snapshot()))
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session.Snapshot()))
}

// Upload receives the room photo for step 1 and advances the wizard. The image
// stays local; it is never sent to the generation service.
func (h *WizardHandler) Upload(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no image provided",
			Message: err.Error(),
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "unsupported file type",
		})
		return
	}

	state := session.Snapshot()
	dir := filepath.Join(h.uploadDir, state.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store image",
			Message: err.Error(),
		})
		return
	}

	dst := filepath.Join(dir, "room"+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store image",
			Message: err.Error(),
		})
		return
	}

	if err := session.Advance(wizard.StepInput{RoomImageRef: dst}); err != nil {
		h.respondAdvanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session.Snapshot()))
}

func (h *WizardHandler) Advance(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	err := session.Advance(wizard.StepInput{
		Style:    req.Style,
		RoomType: req.RoomType,
		Budget:   req.Budget,
		WidthM:   req.WidthM,
		LengthM:  req.LengthM,
	})
	if err != nil {
		h.respondAdvanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session.Snapshot()))
}

func (h *WizardHandler) Back(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.BackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	session.GoBack(req.TargetStep)
	c.JSON(http.StatusOK, sessionResponse(session.Snapshot()))
}

func (h *WizardHandler) Restart(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Restart()
	c.JSON(http.StatusOK, sessionResponse(session.Snapshot()))
}

func (h *WizardHandler) Generate(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	design, err := session.RequestGeneration(c.Request.Context(), h.ledger, h.generator)
	if err != nil {
		var vErr *wizard.ValidationError
		switch {
		case errors.Is(err, wizard.ErrUpgradeRequired):
			c.JSON(http.StatusPaymentRequired, models.UpgradeRequiredResponse{
				UpgradeRequired: true,
				Message:         "You have used all your design credits. Upgrade your plan to keep generating.",
			})
		case errors.Is(err, wizard.ErrGenerationInFlight):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "generation already in progress"})
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, models.ValidationResponse{
				Valid:   false,
				Step:    vErr.Step,
				Message: vErr.Message,
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "generation failed",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, designResponse(design))
}

func (h *WizardHandler) session(c *gin.Context) (*wizard.Session, bool) {
	uid, ok := userID(c)
	if !ok {
		return nil, false
	}

	session, err := h.manager.Get(c.Param("session_id"), uid)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "session not found",
			Message: fmt.Sprintf("no wizard session %q", c.Param("session_id")),
		})
		return nil, false
	}
	return session, true
}

func (h *WizardHandler) respondAdvanceError(c *gin.Context, err error) {
	var vErr *wizard.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, models.ValidationResponse{
			Valid:   false,
			Step:    vErr.Step,
			Message: vErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "failed to advance wizard",
		Message: err.Error(),
	})
}

func sessionResponse(state wizard.State) models.SessionResponse {
	resp := models.SessionResponse{
		SessionID:    state.ID,
		Step:         state.Step,
		RoomImageRef: state.RoomImageRef,
		Style:        string(state.Style),
		RoomType:     string(state.RoomType),
		Budget:       string(state.Budget),
		WidthM:       state.WidthM,
		LengthM:      state.LengthM,
		CreatedAt:    state.CreatedAt,
		UpdatedAt:    state.UpdatedAt,
	}
	if state.Result != nil {
		r := designResponse(state.Result)
		resp.Result = &r
	}
	return resp
}

func designResponse(d *generation.Design) models.DesignResponse {
	return models.DesignResponse{
		ImageURL:       d.ImageURL,
		IsFallback:     d.IsFallback,
		FallbackReason: d.FallbackReason,
		Suggestions:    d.Suggestions,
	}
}
