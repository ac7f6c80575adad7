package search

import "strings"

// --------------------------------------------------
// Query expansion table
// --------------------------------------------------

// expansionEntry maps one food category to the terms treated as
// equivalent when matching vendor and menu item names.
type expansionEntry struct {
	key     string
	related []string
}

// expansionTable is read-only reference data, declared as an ordered
// slice (not a map) so expansion output order is stable across runs.
var expansionTable = []expansionEntry{
	{"taco", []string{"tacos", "burrito", "quesadilla", "torta", "mexican"}},
	{"mexican", []string{"taco", "burrito", "quesadilla", "elote", "churro"}},
	{"burrito", []string{"burritos", "taco", "bowl", "mexican"}},
	{"pizza", []string{"pizzas", "slice", "calzone", "italian"}},
	{"italian", []string{"pizza", "pasta", "panini"}},
	{"ramen", []string{"noodles", "japanese", "soup"}},
	{"noodle", []string{"noodles", "ramen", "pho", "chow mein"}},
	{"pho", []string{"noodles", "vietnamese", "banh mi"}},
	{"sushi", []string{"japanese", "roll", "nigiri"}},
	{"burger", []string{"burgers", "cheeseburger", "fries", "sandwich"}},
	{"sandwich", []string{"sandwiches", "sub", "panini", "wrap"}},
	{"coffee", []string{"espresso", "latte", "cappuccino", "cold brew"}},
	{"breakfast", []string{"eggs", "pancake", "waffle", "bagel", "burrito"}},
	{"dessert", []string{"ice cream", "churro", "cake", "pastry"}},
	{"churro", []string{"churros", "dessert", "mexican"}},
	{"falafel", []string{"shawarma", "hummus", "mediterranean"}},
	{"kebab", []string{"shawarma", "gyro", "wrap"}},
	{"bbq", []string{"barbecue", "brisket", "ribs", "pulled pork"}},
	{"hot dog", []string{"hotdog", "sausage", "frank"}},
	{"empanada", []string{"empanadas", "latin", "pastry"}},
	{"arepa", []string{"arepas", "venezuelan", "latin"}},
	{"dumpling", []string{"dumplings", "bao", "potsticker", "gyoza"}},
	{"curry", []string{"indian", "masala", "naan"}},
	{"indian", []string{"curry", "naan", "samosa", "dosa"}},
	{"halal", []string{"shawarma", "gyro", "rice plate"}},
	{"vegan", []string{"vegetarian", "plant based", "salad"}},
	{"salad", []string{"salads", "bowl", "vegetarian"}},
	{"juice", []string{"smoothie", "lemonade", "fresh fruit"}},
	{"seafood", []string{"fish", "shrimp", "ceviche", "fish taco"}},
	{"ceviche", []string{"seafood", "fish", "latin"}},
}

// Expand returns the search terms treated as equivalent to term.
// The normalized original term is always first. A category contributes
// its related terms when it contains the term or the term contains it,
// so "tacos" picks up the "taco" category. Duplicates are dropped
// keeping first occurrence. A blank term expands to [""] only, which
// makes downstream containment checks match everything.
func Expand(term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))

	expanded := []string{term}
	if term == "" {
		return expanded
	}

	seen := map[string]bool{term: true}
	for _, entry := range expansionTable {
		if !strings.Contains(term, entry.key) && !strings.Contains(entry.key, term) {
			continue
		}
		for _, rel := range entry.related {
			if !seen[rel] {
				expanded = append(expanded, rel)
				seen[rel] = true
			}
		}
	}

	return expanded
}
