// internal/recommend/predicate_test.go
package recommend

import (
	"testing"

	"hooshungry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposePredicate_HallOnly(t *testing.T) {
	pred := ComposePredicate(42, models.ResolvedPreferences{})
	where, args := pred.Where()

	assert.Equal(t, "hall_id = $1", where)
	assert.Equal(t, []interface{}{int64(42)}, args)
	assert.Equal(t, []string{"hall"}, pred.Names())
}

func TestComposePredicate_AllClauses(t *testing.T) {
	prefs := models.ResolvedPreferences{
		VeganOnly:      true,
		VegetarianOnly: true,
		MaxCalories:    intPtr(600),
		Query:          "soup",
	}

	pred := ComposePredicate(7, prefs)
	where, args := pred.Where()

	assert.Equal(t,
		"hall_id = $1 AND vegan = TRUE AND vegetarian = TRUE AND (calories IS NULL OR calories <= $2) AND name ILIKE $3",
		where)
	assert.Equal(t, []interface{}{int64(7), 600, "%soup%"}, args)
	assert.Equal(t, []string{"hall", "vegan", "vegetarian", "calories", "name"}, pred.Names())
}

// Removing a clause must not renumber the placeholders of clauses before
// it, and clauses after it must renumber consistently with their args.
func TestComposePredicate_SubsetsKeepPlaceholdersAligned(t *testing.T) {
	tests := []struct {
		name     string
		prefs    models.ResolvedPreferences
		where    string
		args     []interface{}
	}{
		{
			name:  "vegan and query, no calorie cap",
			prefs: models.ResolvedPreferences{VeganOnly: true, Query: "rice"},
			where: "hall_id = $1 AND vegan = TRUE AND name ILIKE $2",
			args:  []interface{}{int64(3), "%rice%"},
		},
		{
			name:  "calorie cap only",
			prefs: models.ResolvedPreferences{MaxCalories: intPtr(450)},
			where: "hall_id = $1 AND (calories IS NULL OR calories <= $2)",
			args:  []interface{}{int64(3), 450},
		},
		{
			name:  "query only",
			prefs: models.ResolvedPreferences{Query: "tofu"},
			where: "hall_id = $1 AND name ILIKE $2",
			args:  []interface{}{int64(3), "%tofu%"},
		},
		{
			name:  "calorie cap and query",
			prefs: models.ResolvedPreferences{MaxCalories: intPtr(450), Query: "tofu"},
			where: "hall_id = $1 AND (calories IS NULL OR calories <= $2) AND name ILIKE $3",
			args:  []interface{}{int64(3), 450, "%tofu%"},
		},
		{
			name:  "vegetarian only flag",
			prefs: models.ResolvedPreferences{VegetarianOnly: true},
			where: "hall_id = $1 AND vegetarian = TRUE",
			args:  []interface{}{int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := ComposePredicate(3, tt.prefs).Where()
			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestPredicate_ArgCountMatchesPlaceholders(t *testing.T) {
	prefs := models.ResolvedPreferences{
		VeganOnly:   true,
		MaxCalories: intPtr(500),
		Query:       "curry",
	}

	where, args := ComposePredicate(1, prefs).Where()

	// $1, $2, $3 present, $4 absent.
	assert.Contains(t, where, "$1")
	assert.Contains(t, where, "$2")
	assert.Contains(t, where, "$3")
	assert.NotContains(t, where, "$4")
	require.Len(t, args, 3)
}

func TestPredicate_AddMultiArgClause(t *testing.T) {
	p := &Predicate{}
	p.Add("hall", "hall_id = $%d", int64(1))
	p.Add("range", "calories BETWEEN $%d AND $%d", 100, 500)

	where, args := p.Where()

	assert.Equal(t, "hall_id = $1 AND calories BETWEEN $2 AND $3", where)
	assert.Equal(t, []interface{}{int64(1), 100, 500}, args)
}
