package monies

import "strings"

// Bill is a declared monthly fixed cost. It has no date and no per-instance
// payment record; it recurs every calendar month implicitly and its "paid"
// status is inferred from matching transactions.
type Bill struct {
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
}

// billKeywords maps a category to the substrings that classify a bill name
// into it. Matching is done in the order of billCategoryOrder, so "Netflix"
// lands in utilities via "net" before entertainment gets a chance; unmatched
// names fall back to utilities.
var billKeywords = map[string][]string{
	CategoryRent:          {"rent", "house"},
	CategoryFood:          {"food", "eat", "dinner"},
	CategoryUtilities:     {"wifi", "net", "data", "airtime", "token", "power", "water"},
	CategoryEntertainment: {"showmax", "netflix", "fun"},
}

var billCategoryOrder = []string{CategoryRent, CategoryFood, CategoryUtilities, CategoryEntertainment}

// Category classifies the bill name into one of the spend categories.
func (b Bill) Category() string {
	lower := strings.ToLower(b.Name)
	for _, category := range billCategoryOrder {
		for _, kw := range billKeywords[category] {
			if strings.Contains(lower, kw) {
				return category
			}
		}
	}
	return CategoryUtilities
}
