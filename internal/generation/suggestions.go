package generation

import (
	"fmt"

	"roomlift-backend/internal/options"
)

// budgetTips keys the cost-dependent advice; the remaining tips are style
// parameterized templates. Deterministic for a given style/budget pair.
var budgetTips = map[options.Budget]string{
	options.BudgetEconomy:  "Refresh what you own first: paint, hardware swaps, and rearranging furniture deliver the biggest change per dollar.",
	options.BudgetMidRange: "Split your spend: invest in one or two anchor pieces and save on accessories and textiles.",
	options.BudgetPremium:  "Commission key pieces in natural materials like solid wood and stone; they age better than veneers.",
}

// Suggestions returns the five design tips shown alongside every result. They
// are computed locally and do not depend on the generation outcome.
func Suggestions(style options.Style, budget options.Budget) []string {
	return []string{
		fmt.Sprintf("Ground the room with a %s color palette and repeat it in at least three places.", style.Prompt()),
		fmt.Sprintf("Pick one statement piece in the %s style and keep the surrounding decor quiet.", style.Prompt()),
		budgetTips[budget],
		"Layer your lighting: combine ambient, task, and accent sources instead of one ceiling fixture.",
		fmt.Sprintf("Add texture with textiles and plants so the %s look feels lived-in rather than staged.", style.Prompt()),
	}
}
