package monitors

import (
	"sort"
	"strings"

	"waterdeck/internal/domain"
)

// DefaultLimit matches the page size the dashboard API used when none was given
const DefaultLimit = 10

// Query selects one page of monitors
type Query struct {
	Search string
	Page   int // 1-based
	Limit  int
	Sort   Sort // zero value means DefaultSort
}

// normalize fills in defaults for zero or out-of-range fields
func (q Query) normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if !q.Sort.Field.Valid() {
		q.Sort = DefaultSort()
	}
	return q
}

// Matches reports whether a monitor matches the search term.
// The term is compared case-insensitively against name, model, type and severity;
// an empty term matches everything.
func Matches(m *domain.Monitor, search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	return strings.Contains(strings.ToLower(m.Name), term) ||
		strings.Contains(strings.ToLower(m.ModelName), term) ||
		strings.Contains(strings.ToLower(string(m.Type)), term) ||
		strings.Contains(strings.ToLower(m.Type.Label()), term) ||
		strings.Contains(string(m.Severity), term)
}

// List returns the requested page of matching monitors in the query's order,
// newest first unless the query says otherwise.
// A page past the end is clamped to the last page.
func List(store Store, q Query) ([]*domain.Monitor, domain.ListMeta) {
	q = q.normalize()
	all := store.All()

	matched := make([]*domain.Monitor, 0, len(all))
	for _, m := range all {
		if Matches(m, q.Search) {
			matched = append(matched, m)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return q.Sort.less(matched[i], matched[j])
	})

	meta := domain.ListMeta{
		Page:    q.Page,
		Limit:   q.Limit,
		Total:   len(all),
		Matched: len(matched),
	}
	if meta.Page > meta.Pages() {
		meta.Page = meta.Pages()
	}

	start := (meta.Page - 1) * meta.Limit
	end := start + meta.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], meta
}
