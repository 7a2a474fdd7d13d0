// internal/recommend/scoring_test.go
package recommend

import (
	"testing"

	"hooshungry/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// ==========================
// Weight Clamping
// ==========================

func TestResolve_ClampsWeightsIndependently(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{"negative clamps to zero", -3.5, 0},
		{"zero stays zero", 0, 0},
		{"in range unchanged", 0.7, 0.7},
		{"one stays one", 1, 1},
		{"above one clamps to one", 42, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := models.Preferences{
				PopularityWeight: floatPtr(tt.raw),
				DietaryWeight:    floatPtr(tt.raw),
				CalorieWeight:    floatPtr(tt.raw),
			}
			resolved := prefs.Resolve()

			assert.Equal(t, tt.expected, resolved.PopularityWeight)
			assert.Equal(t, tt.expected, resolved.DietaryWeight)
			assert.Equal(t, tt.expected, resolved.CalorieWeight)
		})
	}
}

func TestResolve_WeightsNotRenormalized(t *testing.T) {
	prefs := models.Preferences{
		PopularityWeight: floatPtr(1),
		DietaryWeight:    floatPtr(1),
		CalorieWeight:    floatPtr(1),
	}
	resolved := prefs.Resolve()

	// Sum is 3, and that is what scoring uses.
	assert.Equal(t, 1.0, resolved.PopularityWeight)
	assert.Equal(t, 1.0, resolved.DietaryWeight)
	assert.Equal(t, 1.0, resolved.CalorieWeight)
}

// ==========================
// Dietary Match
// ==========================

func TestDietaryMatch(t *testing.T) {
	tests := []struct {
		name     string
		prefs    models.ResolvedPreferences
		item     models.MenuItem
		expected float64
	}{
		{
			name:     "vegan requested and item vegan",
			prefs:    models.ResolvedPreferences{VeganOnly: true},
			item:     models.MenuItem{Vegan: boolPtr(true)},
			expected: 1,
		},
		{
			name:     "vegan requested and item not vegan",
			prefs:    models.ResolvedPreferences{VeganOnly: true},
			item:     models.MenuItem{Vegan: boolPtr(false)},
			expected: 0,
		},
		{
			name:     "vegan requested and flag unknown counts as false",
			prefs:    models.ResolvedPreferences{VeganOnly: true},
			item:     models.MenuItem{},
			expected: 0,
		},
		{
			name:     "vegetarian requested and item vegetarian",
			prefs:    models.ResolvedPreferences{VegetarianOnly: true},
			item:     models.MenuItem{Vegetarian: boolPtr(true)},
			expected: 1,
		},
		{
			name:     "vegetarian requested and flag unknown",
			prefs:    models.ResolvedPreferences{VegetarianOnly: true},
			item:     models.MenuItem{},
			expected: 0,
		},
		{
			name:     "no diet requested is neutral",
			prefs:    models.ResolvedPreferences{},
			item:     models.MenuItem{Vegan: boolPtr(true)},
			expected: 0.5,
		},
		{
			name:     "vegan takes precedence over vegetarian",
			prefs:    models.ResolvedPreferences{VeganOnly: true, VegetarianOnly: true},
			item:     models.MenuItem{Vegan: boolPtr(false), Vegetarian: boolPtr(true)},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DietaryMatch(tt.prefs, tt.item))
		})
	}
}

// ==========================
// Calorie Score
// ==========================

func TestCalorieScore(t *testing.T) {
	tests := []struct {
		name        string
		maxCalories *int
		calories    *int
		expected    float64
	}{
		{"no cap is neutral even when calories known", nil, intPtr(100), 0.5},
		{"no cap and no calories is neutral", nil, nil, 0.5},
		{"cap set but calories unknown is optimistic", intPtr(500), nil, 0.6},
		{"cap zero avoids division, optimistic branch", intPtr(0), intPtr(100), 0.6},
		{"negative cap avoids division, optimistic branch", intPtr(-10), intPtr(100), 0.6},
		{"well under cap scores high", intPtr(1000), intPtr(100), 0.9},
		{"at cap scores zero", intPtr(500), intPtr(500), 0},
		{"over cap clamps to zero", intPtr(500), intPtr(900), 0},
		{"zero calories scores one", intPtr(500), intPtr(0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalorieScore(tt.maxCalories, tt.calories)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

// ==========================
// Weighted Sum
// ==========================

func TestScoreItem_ClosedForm(t *testing.T) {
	prefs := models.ResolvedPreferences{
		VeganOnly:        true,
		PopularityWeight: 0.45,
		DietaryWeight:    0.35,
		CalorieWeight:    0.20,
	}

	tests := []struct {
		name     string
		item     models.MenuItem
		expected float64
	}{
		{
			name:     "vegan popular item",
			item:     models.MenuItem{ID: 1, Vegan: boolPtr(true), PopularityScore: 0.9},
			expected: 0.45*0.9 + 0.35*1 + 0.20*0.5, // 0.855
		},
		{
			name:     "non-vegan very popular item",
			item:     models.MenuItem{ID: 2, Vegan: boolPtr(false), PopularityScore: 0.99},
			expected: 0.45*0.99 + 0 + 0.20*0.5, // 0.5455
		},
		{
			name:     "vegan middling item",
			item:     models.MenuItem{ID: 3, Vegan: boolPtr(true), PopularityScore: 0.5},
			expected: 0.45*0.5 + 0.35*1 + 0.20*0.5, // 0.675
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := ScoreItem(prefs, tt.item)
			assert.InDelta(t, tt.expected, scored.Score, 1e-9)
		})
	}
}

func TestScoreItem_Deterministic(t *testing.T) {
	prefs := models.Preferences{
		VegetarianOnly: boolPtr(true),
		MaxCalories:    intPtr(800),
	}.Resolve()
	item := models.MenuItem{ID: 7, Vegetarian: boolPtr(true), Calories: intPtr(200), PopularityScore: 0.4}

	first := ScoreItem(prefs, item)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ScoreItem(prefs, item))
	}

	// Recompute by hand from the components.
	expected := prefs.PopularityWeight*0.4 + prefs.DietaryWeight*first.DietaryMatch + prefs.CalorieWeight*first.CalorieScore
	assert.InDelta(t, expected, first.Score, 1e-9)
}
