// Package credits tracks generation quota per user. The ledger is a gate, not
// a lock: TryReserve is a pure read, and the reserve/commit pair is only
// atomic within this process.
package credits

import (
	"fmt"

	"roomlift-backend/internal/kvstore"
)

type Plan string

const (
	PlanFree      Plan = "free"
	PlanBasic     Plan = "basic"
	PlanPro       Plan = "pro"
	PlanUnlimited Plan = "unlimited"
)

// Unlimited is the sentinel Remaining returns for the unbounded tier.
const Unlimited = -1

// planLimits maps each tier to its maximum credits. Configuration, not
// runtime state.
var planLimits = map[Plan]int{
	PlanFree:      2,
	PlanBasic:     15,
	PlanPro:       50,
	PlanUnlimited: Unlimited,
}

func ParsePlan(key string) (Plan, error) {
	p := Plan(key)
	if _, ok := planLimits[p]; !ok {
		return "", fmt.Errorf("unknown plan: %q", key)
	}
	return p, nil
}

func planLimit(p Plan) int {
	limit, ok := planLimits[p]
	if !ok {
		return planLimits[PlanFree]
	}
	return limit
}

type state struct {
	Plan Plan `json:"plan"`
	Used int  `json:"used"`
}

type Ledger struct {
	store *kvstore.Store
}

func NewLedger(store *kvstore.Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) key(userID string) string {
	return "credits:" + userID
}

func (l *Ledger) read(userID string) (state, error) {
	st := state{Plan: PlanFree}
	if _, err := l.store.Get(l.key(userID), &st); err != nil {
		return st, fmt.Errorf("failed to read credit state: %w", err)
	}
	if _, ok := planLimits[st.Plan]; !ok {
		st.Plan = PlanFree
	}
	return st, nil
}

// TryReserve reports whether the user may start a generation. No side effect;
// the reservation is logical and a later Commit does the actual charge.
func (l *Ledger) TryReserve(userID string) (bool, error) {
	st, err := l.read(userID)
	if err != nil {
		return false, err
	}
	limit := planLimit(st.Plan)
	if limit == Unlimited {
		return true, nil
	}
	return st.Used < limit, nil
}

// Commit charges exactly one credit. Callers are responsible for invoking it
// once per generation attempt; committing twice double-charges.
func (l *Ledger) Commit(userID string) error {
	var st state
	return l.store.Update(l.key(userID), &st, func(found bool) (interface{}, error) {
		if !found {
			st = state{Plan: PlanFree}
		}
		if _, ok := planLimits[st.Plan]; !ok {
			st.Plan = PlanFree
		}
		st.Used++
		return st, nil
	})
}

// Remaining returns the credits left, or Unlimited for the unbounded tier.
func (l *Ledger) Remaining(userID string) (int, error) {
	st, err := l.read(userID)
	if err != nil {
		return 0, err
	}
	limit := planLimit(st.Plan)
	if limit == Unlimited {
		return Unlimited, nil
	}
	remaining := limit - st.Used
	if remaining < 0 {
		// Racing tabs can overshoot the limit; never report negative.
		remaining = 0
	}
	return remaining, nil
}

func (l *Ledger) CurrentPlan(userID string) (Plan, int, error) {
	st, err := l.read(userID)
	if err != nil {
		return "", 0, err
	}
	return st.Plan, st.Used, nil
}

// SetPlan switches the user's tier. The used count is deliberately preserved:
// an upgrade extends the ceiling, it does not refund consumed credits.
func (l *Ledger) SetPlan(userID string, plan Plan) error {
	if _, ok := planLimits[plan]; !ok {
		return fmt.Errorf("unknown plan: %q", plan)
	}
	var st state
	return l.store.Update(l.key(userID), &st, func(found bool) (interface{}, error) {
		if !found {
			st = state{}
		}
		st.Plan = plan
		return st, nil
	})
}
