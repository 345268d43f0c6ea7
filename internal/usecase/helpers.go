package usecase

import (
	"maps"
	"slices"
)

func sortedKeys(m map[string]interface{}) []string {
	return slices.Sorted(maps.Keys(m))
}
