package calculator

import (
	"golang.org/x/text/cases"
)

type IngredientAmount struct {
	Name   string
	Amount float64
}

// IngredientTotals accumulates amounts per ingredient name, matching names without regard
// to case. Matching uses full Unicode case folding, so "Straße" and "STRASSE" are one
// ingredient. The spelling seen first is kept. Not safe for concurrent use.
type IngredientTotals struct {
	fold    cases.Caser
	index   map[string]int
	entries []IngredientAmount
}

func NewIngredientTotals() *IngredientTotals {
	return &IngredientTotals{
		fold:  cases.Fold(),
		index: make(map[string]int),
	}
}

func (t *IngredientTotals) Add(name string, amount float64) {
	key := t.fold.String(name)
	if i, ok := t.index[key]; ok {
		t.entries[i].Amount += amount
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, IngredientAmount{Name: name, Amount: amount})
}

// Get looks an ingredient up by any spelling of its name.
func (t *IngredientTotals) Get(name string) (float64, bool) {
	i, ok := t.index[t.fold.String(name)]
	if !ok {
		return 0, false
	}
	return t.entries[i].Amount, true
}

func (t *IngredientTotals) Len() int {
	return len(t.entries)
}

// Entries returns the totals in first-insertion order.
func (t *IngredientTotals) Entries() []IngredientAmount {
	out := make([]IngredientAmount, len(t.entries))
	copy(out, t.entries)
	return out
}

// Map returns the totals keyed by the retained spelling of each name.
func (t *IngredientTotals) Map() map[string]float64 {
	out := make(map[string]float64, len(t.entries))
	for _, e := range t.entries {
		out[e.Name] = e.Amount
	}
	return out
}
