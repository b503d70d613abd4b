package types

import (
	"math"
	"sort"
	"strconv"

	"github.com/barkimedes/go-deepcopy"
	"github.com/maruel/natural"
)

// SeriesList is the ordered series collection owned by a chart pane.
// Order is semantically meaningful: it is the rendering precedence and
// the stack accumulation order.
type SeriesList []*Series

// Add appends a series and returns its index.
func (l *SeriesList) Add(s *Series) int {
	*l = append(*l, s)
	return len(*l) - 1
}

// InsertAt inserts a series at index i, clamping i into [0, len].
func (l *SeriesList) InsertAt(i int, s *Series) {
	if i < 0 {
		i = 0
	}
	if i > len(*l) {
		i = len(*l)
	}
	*l = append(*l, nil)
	copy((*l)[i+1:], (*l)[i:])
	(*l)[i] = s
}

// RemoveAt removes the series at index i. Out-of-range indices are a
// no-op.
func (l *SeriesList) RemoveAt(i int) {
	if i < 0 || i >= len(*l) {
		return
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
}

// Remove removes the first series with the given label and reports
// whether anything was removed.
func (l *SeriesList) Remove(label string) bool {
	i := l.IndexOf(label)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// IndexOf returns the index of the first series with the given label,
// or -1.
func (l SeriesList) IndexOf(label string) int {
	for i, s := range l {
		if s.Label == label {
			return i
		}
	}
	return -1
}

// Get returns the first series with the given label, or nil.
func (l SeriesList) Get(label string) *Series {
	if i := l.IndexOf(label); i >= 0 {
		return l[i]
	}
	return nil
}

// MaxPointCount returns the largest point count across the collection,
// zero for an empty collection.
func (l SeriesList) MaxPointCount() int {
	max := 0
	for _, s := range l {
		if n := s.PointCount(); n > max {
			max = n
		}
	}
	return max
}

// NumBars counts the bar-kind series in the collection.
func (l SeriesList) NumBars() int {
	n := 0
	for _, s := range l {
		if s.IsBar() {
			n++
		}
	}
	return n
}

// Copy returns a deep copy of the collection: the copy owns fresh
// series and fresh point slices, so mutating either side never leaks
// into the other.
func (l SeriesList) Copy() SeriesList {
	if l == nil {
		return nil
	}
	return deepcopy.MustAnything(l).(SeriesList)
}

type byLabelNatural SeriesList

func (b byLabelNatural) Len() int           { return len(b) }
func (b byLabelNatural) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b byLabelNatural) Less(i, j int) bool { return natural.Less(b[i].Label, b[j].Label) }

// SortByLabel sorts the collection by label using natural ordering, so
// "series2" sorts before "series10". The sort is stable.
func (l SeriesList) SortByLabel() {
	sort.Stable(byLabelNatural(l))
}

// MarshalJSON marshals the collection to JSON.
func MarshalJSON(list SeriesList) []byte {
	var b []byte
	b = append(b, '[')

	var topComma bool
	for _, s := range list {
		if s == nil {
			continue
		}
		if topComma {
			b = append(b, ',')
		}
		topComma = true

		b = append(b, `{"label":`...)
		b = strconv.AppendQuoteToASCII(b, s.Label)
		b = append(b, `,"kind":`...)
		b = strconv.AppendQuoteToASCII(b, s.Kind.String())
		b = append(b, `,"y2":`...)
		b = strconv.AppendBool(b, s.YAxis2)
		b = append(b, `,"points":[`...)

		var innerComma bool
		for _, p := range s.Points {
			if innerComma {
				b = append(b, ',')
			}
			innerComma = true

			b = append(b, '[')
			b = appendValue(b, p.X)
			b = append(b, ',')
			b = appendValue(b, p.Y)
			b = append(b, ']')
		}
		b = append(b, `]}`...)
	}

	b = append(b, ']')
	return b
}

// MarshalCSV marshals the collection to CSV, one row per point.
func MarshalCSV(list SeriesList) []byte {
	var b []byte
	for _, s := range list {
		for _, p := range s.Points {
			b = append(b, '"')
			b = append(b, s.Label...)
			b = append(b, `",`...)
			b = appendValue(b, p.X)
			b = append(b, ',')
			b = appendValue(b, p.Y)
			b = append(b, '\n')
		}
	}
	return b
}

func appendValue(b []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 1) || math.IsInf(v, -1) {
		return append(b, "null"...)
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}
