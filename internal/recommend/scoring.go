// internal/recommend/scoring.go
package recommend

import "hooshungry/internal/models"

const (
	// neutralComponent is used when a preference places no constraint on
	// the component.
	neutralComponent = 0.5

	// unknownCalorieScore is the mildly optimistic default for items whose
	// calorie count is unknown while a calorie cap was requested.
	unknownCalorieScore = 0.6
)

// Clamp01 bounds x into [0,1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// DietaryMatch returns 1 when the item meets the requested diet, 0 when it
// does not or the flag is unknown, and 0.5 when no diet was requested.
func DietaryMatch(prefs models.ResolvedPreferences, item models.MenuItem) float64 {
	switch {
	case prefs.VeganOnly:
		if item.Vegan != nil && *item.Vegan {
			return 1
		}
		return 0
	case prefs.VegetarianOnly:
		if item.Vegetarian != nil && *item.Vegetarian {
			return 1
		}
		return 0
	default:
		return neutralComponent
	}
}

// CalorieScore prefers items further under the requested cap. A cap of
// zero or less takes the unknown-calories branch rather than dividing by
// zero; no cap at all is neutral regardless of known calories.
func CalorieScore(maxCalories *int, calories *int) float64 {
	if maxCalories == nil {
		return neutralComponent
	}
	if calories == nil || *maxCalories <= 0 {
		return unknownCalorieScore
	}
	ratio := float64(*maxCalories-*calories) / float64(*maxCalories)
	return Clamp01(ratio)
}

// ScoreItem computes the deterministic weighted score for one candidate:
// score = w_pop*popularity + w_diet*dietary_match + w_cal*calorie_score.
// Weights are applied exactly as clamped; no normalization.
func ScoreItem(prefs models.ResolvedPreferences, item models.MenuItem) models.ScoredMenuItem {
	dietary := DietaryMatch(prefs, item)
	calorie := CalorieScore(prefs.MaxCalories, item.Calories)

	score := prefs.PopularityWeight*item.PopularityScore +
		prefs.DietaryWeight*dietary +
		prefs.CalorieWeight*calorie

	return models.ScoredMenuItem{
		MenuItem:     item,
		DietaryMatch: dietary,
		CalorieScore: calorie,
		Score:        score,
	}
}
