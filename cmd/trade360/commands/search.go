package commands

import (
	"strings"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/sahilm/fuzzy"
)

type nameSource[T any] struct {
	items []T
	name  func(T) string
}

func (s nameSource[T]) String(i int) string { return strings.ToLower(s.name(s.items[i])) }
func (s nameSource[T]) Len() int            { return len(s.items) }

// searchByName filters items by name. Exact case-insensitive matches come
// first, followed by fuzzy matches in score order. An empty query returns
// items unchanged.
func searchByName[T any](query string, items []T, name func(T) string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	matched := make(map[int]bool)
	results := make([]T, 0)

	for i, item := range items {
		if strings.EqualFold(name(item), query) {
			matched[i] = true
			results = append(results, item)
		}
	}

	for _, match := range fuzzy.FindFrom(strings.ToLower(query), nameSource[T]{items: items, name: name}) {
		if len(results) >= constants.FuzzyResultLimit {
			break
		}

		if matched[match.Index] {
			continue
		}

		matched[match.Index] = true
		results = append(results, items[match.Index])
	}

	return results
}
