package monitors

import (
	"cmp"
	"strings"

	"github.com/cockroachdb/errors"

	"waterdeck/internal/domain"
)

// ErrUnknownSort is returned by ParseSort for a field that cannot be sorted on
var ErrUnknownSort = errors.New("unknown sort")

// SortField is the column a listing is ordered by
type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortName      SortField = "name"
	SortSeverity  SortField = "severity"
	SortAlerts    SortField = "alerts"
)

// SortFields returns the sortable fields in the order the dashboard offers them
func SortFields() []SortField {
	return []SortField{SortCreatedAt, SortName, SortSeverity, SortAlerts}
}

// Valid reports whether f is one of the sortable fields
func (f SortField) Valid() bool {
	switch f {
	case SortCreatedAt, SortName, SortSeverity, SortAlerts:
		return true
	}
	return false
}

// Label is the short name shown in the dashboard
func (f SortField) Label() string {
	switch f {
	case SortCreatedAt:
		return "created"
	case SortName:
		return "name"
	case SortSeverity:
		return "severity"
	case SortAlerts:
		return "alerts"
	default:
		return string(f)
	}
}

// DefaultDesc reports the direction a field is first sorted in:
// newest, most severe and most alerting first, names A to Z.
func (f SortField) DefaultDesc() bool {
	return f != SortName
}

// Sort orders a listing by one field
type Sort struct {
	Field SortField
	Desc  bool
}

// DefaultSort lists the newest monitors first
func DefaultSort() Sort {
	return Sort{Field: SortCreatedAt, Desc: true}
}

// ByField sorts on f in its natural direction
func ByField(f SortField) Sort {
	return Sort{Field: f, Desc: f.DefaultDesc()}
}

// Reversed returns the same field in the other direction
func (s Sort) Reversed() Sort {
	s.Desc = !s.Desc
	return s
}

// String renders the sort as ParseSort accepts it, e.g. "alerts_desc"
func (s Sort) String() string {
	if s.Desc {
		return string(s.Field) + "_desc"
	}
	return string(s.Field) + "_asc"
}

// Label is the field label with a direction arrow
func (s Sort) Label() string {
	if s.Desc {
		return s.Field.Label() + " ↓"
	}
	return s.Field.Label() + " ↑"
}

// ParseSort reads "field", "field_asc" or "field_desc".
// A bare field uses its natural direction.
func ParseSort(text string) (Sort, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if f := SortField(text); f.Valid() {
		return ByField(f), nil
	}
	if field, ok := strings.CutSuffix(text, "_desc"); ok && SortField(field).Valid() {
		return Sort{Field: SortField(field), Desc: true}, nil
	}
	if field, ok := strings.CutSuffix(text, "_asc"); ok && SortField(field).Valid() {
		return Sort{Field: SortField(field)}, nil
	}
	return Sort{}, errors.Wrapf(ErrUnknownSort, "%q (want created_at, name, severity or alerts, optionally with _asc or _desc)", text)
}

// less orders a before b. Ties fall back to newest first, then name, then ID,
// so every sort is total and pages never overlap.
func (s Sort) less(a, b *domain.Monitor) bool {
	var c int
	switch s.Field {
	case SortName:
		c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortSeverity:
		c = cmp.Compare(severityRank(a.Severity), severityRank(b.Severity))
	case SortAlerts:
		c = cmp.Compare(a.AlertCount, b.AlertCount)
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if c != 0 {
		if s.Desc {
			return c > 0
		}
		return c < 0
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if na != nb {
		return na < nb
	}
	return a.ID.String() < b.ID.String()
}

func severityRank(s domain.Severity) int {
	switch s {
	case domain.SeverityLow:
		return 1
	case domain.SeverityMedium:
		return 2
	case domain.SeverityHigh:
		return 3
	default:
		return 0
	}
}
