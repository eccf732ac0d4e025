package parser

import "strings"

// categoryRule maps article-name keywords to a category label.
type categoryRule struct {
	keywords []string
	label    string
}

// categoryRules is evaluated in order, first match wins. Order is load
// bearing: "kurta suit" must hit the kurta/suit rule, and "t-shirt" must be
// tested before the bare "shirt" rule catches it.
var categoryRules = []categoryRule{
	{[]string{"saree", "sari"}, "Saree"},
	{[]string{"t-shirt", "tshirt"}, "T-Shirt"},
	{[]string{"shirt"}, "Shirt"},
	{[]string{"co-ord", "coord", "2-piece"}, "Co-Ord Set"},
	{[]string{"gown", "dress"}, "Dress & Gown"},
	{[]string{"kurta", "suit"}, "Kurta Suit-Set"},
	{[]string{"tunic", "top"}, "Tunic"},
}

// CategoryOther is the fall-through label for unrecognized article names.
const CategoryOther = "Other"

// Classify maps a free-text article name to its category label.
// Total function; empty or unknown names land in Other.
func Classify(articleName string) string {
	name := strings.ToLower(articleName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.label
			}
		}
	}
	return CategoryOther
}

// Categories returns every label Classify can produce, in rule order, with
// Other last. Used by the category report to emit stable rows.
func Categories() []string {
	out := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		out = append(out, rule.label)
	}
	return append(out, CategoryOther)
}
