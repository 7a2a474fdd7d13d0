// internal/recommend/ranking.go
package recommend

import (
	"sort"

	"hooshungry/internal/models"
)

// Rank sorts scored candidates by score descending and truncates to limit.
// Ties break by candidate id ascending so output is reproducible
// independent of store iteration order.
func Rank(items []models.ScoredMenuItem, limit int) []models.ScoredMenuItem {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].ID < items[j].ID
	})

	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
