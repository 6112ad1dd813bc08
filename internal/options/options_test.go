package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"roomlift-backend/internal/options"
)

func TestParseStyle(t *testing.T) {
	style, err := options.ParseStyle("scandinavian")
	assert.NoError(t, err)
	assert.Equal(t, options.StyleScandinavian, style)
	assert.Equal(t, "Scandinavian", style.Label())

	_, err = options.ParseStyle("brutalist")
	assert.Error(t, err)

	_, err = options.ParseStyle("")
	assert.Error(t, err)
}

func TestParseRoomType(t *testing.T) {
	room, err := options.ParseRoomType("living-room")
	assert.NoError(t, err)
	assert.Equal(t, "Living Room", room.Label())
	assert.Equal(t, "living room", room.Prompt())

	_, err = options.ParseRoomType("garage")
	assert.Error(t, err)
}

func TestParseBudget(t *testing.T) {
	budget, err := options.ParseBudget("mid-range")
	assert.NoError(t, err)
	assert.Equal(t, options.BudgetMidRange, budget)

	_, err = options.ParseBudget("free")
	assert.Error(t, err)
}

func TestCatalogsMatchParsers(t *testing.T) {
	for _, entry := range options.Styles() {
		_, err := options.ParseStyle(entry.Key)
		assert.NoError(t, err, "style catalog key %q must parse", entry.Key)
		assert.NotEmpty(t, entry.Label)
	}
	for _, entry := range options.RoomTypes() {
		_, err := options.ParseRoomType(entry.Key)
		assert.NoError(t, err, "room catalog key %q must parse", entry.Key)
		assert.NotEmpty(t, entry.Label)
	}
	for _, entry := range options.Budgets() {
		_, err := options.ParseBudget(entry.Key)
		assert.NoError(t, err, "budget catalog key %q must parse", entry.Key)
		assert.NotEmpty(t, entry.Label)
	}
}
