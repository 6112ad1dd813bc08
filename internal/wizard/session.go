// Package wizard drives the five-step design flow: photo upload, style choice,
// room-type choice, budget choice, then review and generation.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"roomlift-backend/internal/generation"
	"roomlift-backend/internal/options"
)

const (
	StepPhoto    = 1
	StepStyle    = 2
	StepRoomType = 3
	StepBudget   = 4
	StepReview   = 5
)

// ErrUpgradeRequired is the quota-denial outcome: no credit was consumed and
// the caller should present an upgrade prompt, not an error banner.
var ErrUpgradeRequired = errors.New("wizard: generation quota exhausted, upgrade required")

// ErrGenerationInFlight rejects a second generation while one is outstanding.
var ErrGenerationInFlight = errors.New("wizard: a generation request is already in flight")

// ValidationError is a local, recoverable input problem surfaced as an inline
// message. It never aborts the wizard.
type ValidationError struct {
	Step    int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}

// StepInput carries the input for the current step of an Advance call. Only
// the field matching the step is consulted.
type StepInput struct {
	RoomImageRef string
	Style        string
	RoomType     string
	Budget       string

	// Optional dimensions collected alongside the room type.
	WidthM  float64
	LengthM float64
}

// Session is one wizard run. It lives in memory only; nothing here is
// persisted until the user saves the result as a favorite.
type Session struct {
	mu sync.Mutex

	ID     string
	UserID string

	Step         int
	RoomImageRef string
	Style        options.Style
	RoomType     options.RoomType
	Budget       options.Budget
	WidthM       float64
	LengthM      float64

	Result     *generation.Design
	generating bool
	// epoch counts restarts so an in-flight generation from before a restart
	// can be told apart from the current run.
	epoch uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Advance validates input against the current step and moves forward by one.
// On validation failure the session is left unchanged.
func (s *Session) Advance(input StepInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Step >= StepReview {
		return &ValidationError{Step: s.Step, Message: "already at the final step"}
	}

	// Empty input over a value entered before a GoBack re-advances with the
	// preserved value, so "next" needs no resubmission.
	switch s.Step {
	case StepPhoto:
		if input.RoomImageRef == "" && s.RoomImageRef == "" {
			return &ValidationError{Step: s.Step, Message: "please upload a photo of your room"}
		}
		if input.RoomImageRef != "" {
			s.RoomImageRef = input.RoomImageRef
		}
	case StepStyle:
		if input.Style != "" || s.Style == "" {
			style, err := options.ParseStyle(input.Style)
			if err != nil {
				return &ValidationError{Step: s.Step, Message: "please choose a design style"}
			}
			s.Style = style
		}
	case StepRoomType:
		if input.RoomType != "" || s.RoomType == "" {
			roomType, err := options.ParseRoomType(input.RoomType)
			if err != nil {
				return &ValidationError{Step: s.Step, Message: "please choose a room type"}
			}
			if (input.WidthM < 0) || (input.LengthM < 0) {
				return &ValidationError{Step: s.Step, Message: "room dimensions must be positive"}
			}
			s.RoomType = roomType
			s.WidthM = input.WidthM
			s.LengthM = input.LengthM
		}
	case StepBudget:
		if input.Budget != "" || s.Budget == "" {
			budget, err := options.ParseBudget(input.Budget)
			if err != nil {
				return &ValidationError{Step: s.Step, Message: "please choose a budget"}
			}
			s.Budget = budget
		}
	}

	s.Step++
	s.UpdatedAt = time.Now()
	return nil
}

// GoBack rewinds to any completed step. Targets above the current step are a
// no-op guard; entered values are preserved either way.
func (s *Session) GoBack(target int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if target < StepPhoto || target > s.Step {
		return
	}
	s.Step = target
	s.UpdatedAt = time.Now()
}

// Restart discards the whole session state. It deliberately leaves the credit
// ledger untouched.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Step = StepPhoto
	s.RoomImageRef = ""
	s.Style = ""
	s.RoomType = ""
	s.Budget = ""
	s.WidthM = 0
	s.LengthM = 0
	s.Result = nil
	s.generating = false
	s.epoch++
	s.UpdatedAt = time.Now()
}

// CreditLedger is the quota gate requestGeneration consults.
type CreditLedger interface {
	TryReserve(userID string) (bool, error)
	Commit(userID string) error
}

// Generator produces one design per call and never fails to produce one.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) *generation.Design
}

// RequestGeneration is only valid at the review step. It checks the ledger
// first (denial costs nothing), then generates and commits exactly one credit
// whether the outcome was a success or a fallback.
func (s *Session) RequestGeneration(ctx context.Context, ledger CreditLedger, gen Generator) (*generation.Design, error) {
	s.mu.Lock()
	if s.Step != StepReview {
		s.mu.Unlock()
		return nil, &ValidationError{Step: s.Step, Message: "complete all steps before generating"}
	}
	if s.generating {
		s.mu.Unlock()
		return nil, ErrGenerationInFlight
	}

	allowed, err := ledger.TryReserve(s.UserID)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to check credits: %w", err)
	}
	if !allowed {
		s.mu.Unlock()
		return nil, ErrUpgradeRequired
	}

	s.generating = true
	epoch := s.epoch
	req := generation.Request{
		Style:    s.Style,
		RoomType: s.RoomType,
		Budget:   s.Budget,
		WidthM:   s.WidthM,
		LengthM:  s.LengthM,
	}
	s.mu.Unlock()

	design := gen.Generate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		// A restart already cleared the flag, and possibly for a newer run.
		s.generating = false
	}

	// One credit per completed attempt, fallback included.
	if err := ledger.Commit(s.UserID); err != nil {
		return nil, fmt.Errorf("failed to commit credit: %w", err)
	}

	// A restart while the request was outstanding discards the result, even
	// when the new run is back at the review step; the attempt still cost its
	// credit.
	if s.Step == StepReview && s.epoch == epoch {
		s.Result = design
	}
	s.UpdatedAt = time.Now()
	return design, nil
}

// State is a read-only copy of the session for rendering.
type State struct {
	ID           string
	UserID       string
	Step         int
	RoomImageRef string
	Style        options.Style
	RoomType     options.RoomType
	Budget       options.Budget
	WidthM       float64
	LengthM      float64
	Result       *generation.Design
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:           s.ID,
		UserID:       s.UserID,
		Step:         s.Step,
		RoomImageRef: s.RoomImageRef,
		Style:        s.Style,
		RoomType:     s.RoomType,
		Budget:       s.Budget,
		WidthM:       s.WidthM,
		LengthM:      s.LengthM,
		Result:       s.Result,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
