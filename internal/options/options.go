// Package options holds the closed catalogs of wizard choices. Validation,
// prompt construction, and display labels all read from the same tables so a
// selected key can never lack a matching label.
package options

import "fmt"

type Style string

const (
	StyleModern       Style = "modern"
	StyleMinimalist   Style = "minimalist"
	StyleIndustrial   Style = "industrial"
	StyleScandinavian Style = "scandinavian"
	StyleBohemian     Style = "bohemian"
	StyleTraditional  Style = "traditional"
)

type RoomType string

const (
	RoomLivingRoom RoomType = "living-room"
	RoomBedroom    RoomType = "bedroom"
	RoomKitchen    RoomType = "kitchen"
	RoomBathroom   RoomType = "bathroom"
	RoomDiningRoom RoomType = "dining-room"
	RoomHomeOffice RoomType = "home-office"
)

type Budget string

const (
	BudgetEconomy  Budget = "economy"
	BudgetMidRange Budget = "mid-range"
	BudgetPremium  Budget = "premium"
)

type entry struct {
	Label  string
	Prompt string
}

var styles = map[Style]entry{
	StyleModern:       {Label: "Modern", Prompt: "modern"},
	StyleMinimalist:   {Label: "Minimalist", Prompt: "minimalist"},
	StyleIndustrial:   {Label: "Industrial", Prompt: "industrial"},
	StyleScandinavian: {Label: "Scandinavian", Prompt: "scandinavian"},
	StyleBohemian:     {Label: "Bohemian", Prompt: "bohemian"},
	StyleTraditional:  {Label: "Traditional", Prompt: "traditional"},
}

var roomTypes = map[RoomType]entry{
	RoomLivingRoom: {Label: "Living Room", Prompt: "living room"},
	RoomBedroom:    {Label: "Bedroom", Prompt: "bedroom"},
	RoomKitchen:    {Label: "Kitchen", Prompt: "kitchen"},
	RoomBathroom:   {Label: "Bathroom", Prompt: "bathroom"},
	RoomDiningRoom: {Label: "Dining Room", Prompt: "dining room"},
	RoomHomeOffice: {Label: "Home Office", Prompt: "home office"},
}

var budgets = map[Budget]entry{
	BudgetEconomy:  {Label: "Economy", Prompt: "a tight budget with affordable materials"},
	BudgetMidRange: {Label: "Mid-Range", Prompt: "a mid-range budget balancing cost and quality"},
	BudgetPremium:  {Label: "Premium", Prompt: "a premium budget with high-end materials"},
}

func ParseStyle(key string) (Style, error) {
	s := Style(key)
	if _, ok := styles[s]; !ok {
		return "", fmt.Errorf("unknown style: %q", key)
	}
	return s, nil
}

func ParseRoomType(key string) (RoomType, error) {
	r := RoomType(key)
	if _, ok := roomTypes[r]; !ok {
		return "", fmt.Errorf("unknown room type: %q", key)
	}
	return r, nil
}

func ParseBudget(key string) (Budget, error) {
	b := Budget(key)
	if _, ok := budgets[b]; !ok {
		return "", fmt.Errorf("unknown budget: %q", key)
	}
	return b, nil
}

func (s Style) Label() string { return styles[s].Label }

func (s Style) Prompt() string { return styles[s].Prompt }

func (r RoomType) Label() string { return roomTypes[r].Label }

func (r RoomType) Prompt() string { return roomTypes[r].Prompt }

func (b Budget) Label() string { return budgets[b].Label }

func (b Budget) Prompt() string { return budgets[b].Prompt }

// Catalog is one selectable option as exposed to clients.
type Catalog struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func Styles() []Catalog {
	return []Catalog{
		{Key: string(StyleModern), Label: StyleModern.Label()},
		{Key: string(StyleMinimalist), Label: StyleMinimalist.Label()},
		{Key: string(StyleIndustrial), Label: StyleIndustrial.Label()},
		{Key: string(StyleScandinavian), Label: StyleScandinavian.Label()},
		{Key: string(StyleBohemian), Label: StyleBohemian.Label()},
		{Key: string(StyleTraditional), Label: StyleTraditional.Label()},
	}
}

func RoomTypes() []Catalog {
	return []Catalog{
		{Key: string(RoomLivingRoom), Label: RoomLivingRoom.Label()},
		{Key: string(RoomBedroom), Label: RoomBedroom.Label()},
		{Key: string(RoomKitchen), Label: RoomKitchen.Label()},
		{Key: string(RoomBathroom), Label: RoomBathroom.Label()},
		{Key: string(RoomDiningRoom), Label: RoomDiningRoom.Label()},
		{Key: string(RoomHomeOffice), Label: RoomHomeOffice.Label()},
	}
}

func Budgets() []Catalog {
	return []Catalog{
		{Key: string(BudgetEconomy), Label: BudgetEconomy.Label()},
		{Key: string(BudgetMidRange), Label: BudgetMidRange.Label()},
		{Key: string(BudgetPremium), Label: BudgetPremium.Label()},
	}
}
