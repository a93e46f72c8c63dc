package schema

import (
	"sort"

	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// topValueCount is how many most-frequent values are reported for string
// fields.
const topValueCount = 3

// ValueCount pairs a distinct string value with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FieldStats aggregates one field's values across all objects in an array.
// Numeric aggregates are present only when every non-null value is numeric;
// string aggregates only when every non-null value is a string.
type FieldStats struct {
	Count     int      `json:"count"`
	NullCount int      `json:"null_count"`
	NullRate  float64  `json:"null_rate"`
	Types     []string `json:"types,omitempty"` // observed non-null kinds, sorted

	Numeric bool    `json:"-"`
	Min     float64 `json:"min,omitempty"`
	Max     float64 `json:"max,omitempty"`
	Avg     float64 `json:"avg,omitempty"`

	Strings        bool         `json:"-"`
	MinLen         int          `json:"min_length,omitempty"`
	MaxLen         int          `json:"max_length,omitempty"`
	AvgLen         float64      `json:"avg_length,omitempty"`
	UniqueCount    int          `json:"unique_count,omitempty"`
	UniquenessRate float64      `json:"uniqueness_rate,omitempty"`
	TopValues      []ValueCount `json:"top_values,omitempty"`
}

// AnalyzeField computes statistics over the ordered values collected for one
// field name, where a missing field on some object contributes a null.
func AnalyzeField(values []jsonvalue.Value) FieldStats {
	stats := FieldStats{Count: len(values)}

	nonNull := make([]jsonvalue.Value, 0, len(values))
	for _, v := range values {
		if v.IsNull() {
			stats.NullCount++
			continue
		}
		nonNull = append(nonNull, v)
	}
	if stats.Count > 0 {
		stats.NullRate = float64(stats.NullCount) / float64(stats.Count)
	}
	if len(nonNull) == 0 {
		return stats
	}

	typeSet := make(map[string]bool)
	for _, v := range nonNull {
		typeSet[v.Kind().String()] = true
	}
	for name := range typeSet {
		stats.Types = append(stats.Types, name)
	}
	sort.Strings(stats.Types)

	if allNumeric(nonNull) {
		analyzeNumeric(&stats, nonNull)
	}
	if allStrings(nonNull) {
		analyzeStrings(&stats, nonNull)
	}
	return stats
}

func allNumeric(values []jsonvalue.Value) bool {
	for _, v := range values {
		if v.Kind() != jsonvalue.Int && v.Kind() != jsonvalue.Float {
			return false
		}
	}
	return true
}

func allStrings(values []jsonvalue.Value) bool {
	for _, v := range values {
		if v.Kind() != jsonvalue.String {
			return false
		}
	}
	return true
}

func analyzeNumeric(stats *FieldStats, values []jsonvalue.Value) {
	stats.Numeric = true
	min := values[0].Float64()
	max := min
	sum := 0.0
	for _, v := range values {
		f := v.Float64()
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
		sum += f
	}
	stats.Min = min
	stats.Max = max
	stats.Avg = sum / float64(len(values))
}

func analyzeStrings(stats *FieldStats, values []jsonvalue.Value) {
	stats.Strings = true

	first := len([]rune(values[0].Str()))
	minLen := first
	maxLen := first
	sumLen := 0

	// Occurrence counts with first-seen positions, so top-value ties break
	// toward the earlier value.
	counts := make(map[string]int)
	var order []string

	for _, v := range values {
		s := v.Str()
		n := len([]rune(s))
		if n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
		sumLen += n

		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}

	stats.MinLen = minLen
	stats.MaxLen = maxLen
	stats.AvgLen = float64(sumLen) / float64(len(values))
	stats.UniqueCount = len(counts)
	stats.UniquenessRate = float64(len(counts)) / float64(len(values))

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	limit := topValueCount
	if len(order) < limit {
		limit = len(order)
	}
	top := make([]ValueCount, 0, limit)
	for _, s := range order[:limit] {
		top = append(top, ValueCount{Value: s, Count: counts[s]})
	}
	stats.TopValues = top
}
