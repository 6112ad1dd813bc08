package credits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roomlift-backend/internal/credits"
	"roomlift-backend/internal/kvstore"
)

func newLedger(t *testing.T) *credits.Ledger {
	t.Helper()
	store, err := kvstore.NewStore(t.TempDir())
	require.NoError(t, err)
	return credits.NewLedger(store)
}

func TestFreePlanGate(t *testing.T) {
	ledger := newLedger(t)

	// New users default to the free plan (limit 2).
	allowed, err := ledger.TryReserve("user-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, ledger.Commit("user-1"))
	allowed, err = ledger.TryReserve("user-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, ledger.Commit("user-1"))
	allowed, err = ledger.TryReserve("user-1")
	require.NoError(t, err)
	assert.False(t, allowed, "free plan denies after 2 commits")

	remaining, err := ledger.Remaining("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestTryReserveIsPureRead(t *testing.T) {
	ledger := newLedger(t)

	for i := 0; i < 5; i++ {
		allowed, err := ledger.TryReserve("user-1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	_, used, err := ledger.CurrentPlan("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, used, "reserve must not consume credits")
}

func TestCommitIncrementsByOne(t *testing.T) {
	ledger := newLedger(t)

	require.NoError(t, ledger.Commit("user-1"))
	_, used, err := ledger.CurrentPlan("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, used)

	// Idempotency is the caller's responsibility: a second commit charges
	// again.
	require.NoError(t, ledger.Commit("user-1"))
	_, used, err = ledger.CurrentPlan("user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, used)
}

func TestUnlimitedPlanNeverDenies(t *testing.T) {
	ledger := newLedger(t)
	require.NoError(t, ledger.SetPlan("user-1", credits.PlanUnlimited))

	for i := 0; i < 100; i++ {
		allowed, err := ledger.TryReserve("user-1")
		require.NoError(t, err)
		assert.True(t, allowed)
		require.NoError(t, ledger.Commit("user-1"))
	}

	remaining, err := ledger.Remaining("user-1")
	require.NoError(t, err)
	assert.Equal(t, credits.Unlimited, remaining)
}

func TestSetPlanPreservesUsed(t *testing.T) {
	ledger := newLedger(t)

	require.NoError(t, ledger.Commit("user-1"))
	require.NoError(t, ledger.Commit("user-1"))

	require.NoError(t, ledger.SetPlan("user-1", credits.PlanBasic))

	plan, used, err := ledger.CurrentPlan("user-1")
	require.NoError(t, err)
	assert.Equal(t, credits.PlanBasic, plan)
	assert.Equal(t, 2, used, "upgrading must not refund consumed credits")

	remaining, err := ledger.Remaining("user-1")
	require.NoError(t, err)
	assert.Equal(t, 13, remaining)
}

func TestUsersAreIndependent(t *testing.T) {
	ledger := newLedger(t)

	require.NoError(t, ledger.Commit("user-1"))
	require.NoError(t, ledger.Commit("user-1"))

	allowed, err := ledger.TryReserve("user-2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestParsePlan(t *testing.T) {
	plan, err := credits.ParsePlan("pro")
	assert.NoError(t, err)
	assert.Equal(t, credits.PlanPro, plan)

	_, err = credits.ParsePlan("platinum")
	assert.Error(t, err)
}
