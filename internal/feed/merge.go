package feed

import (
	"sort"

	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

// Merge combines per-category result lists into one ordered feed. Duplicate
// IDs across lists keep the copy encountered last in merge order, and the
// merged list is sorted by timestamp descending. Pure function, no network.
func Merge(results [][]models.NewsItem) []models.NewsItem {
	byID := make(map[string]int)
	merged := make([]models.NewsItem, 0)

	for _, items := range results {
		for _, item := range items {
			if idx, ok := byID[item.ID]; ok {
				merged[idx] = item
				continue
			}
			byID[item.ID] = len(merged)
			merged = append(merged, item)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp > merged[j].Timestamp
	})
	return merged
}
