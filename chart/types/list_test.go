package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSeries() SeriesList {
	var l SeriesList
	l.Add(MakeSeries("alpha", KindLine, PointsFromY([]float64{1, 2})))
	l.Add(MakeSeries("beta", KindBar, PointsFromY([]float64{3, 4, 5})))
	l.Add(MakeSeries("gamma", KindBar, PointsFromY([]float64{6})))
	return l
}

func TestAddInsertRemove(t *testing.T) {
	l := threeSeries()

	l.InsertAt(1, MakeSeries("inserted", KindLine, nil))
	require.Len(t, l, 4)
	assert.Equal(t, "inserted", l[1].Label)
	assert.Equal(t, "beta", l[2].Label)

	// Clamped insert goes to the end.
	l.InsertAt(99, MakeSeries("tail", KindLine, nil))
	assert.Equal(t, "tail", l[len(l)-1].Label)

	l.RemoveAt(1)
	assert.Equal(t, -1, l.IndexOf("inserted"))

	assert.True(t, l.Remove("tail"))
	assert.False(t, l.Remove("tail"))

	l.RemoveAt(-1)
	l.RemoveAt(99)
	assert.Len(t, l, 3)
}

func TestGetAndIndexOf(t *testing.T) {
	l := threeSeries()

	assert.Equal(t, 1, l.IndexOf("beta"))
	assert.Equal(t, -1, l.IndexOf("delta"))
	require.NotNil(t, l.Get("gamma"))
	assert.Equal(t, "gamma", l.Get("gamma").Label)
	assert.Nil(t, l.Get("delta"))
}

func TestMaxPointCount(t *testing.T) {
	assert.Equal(t, 0, SeriesList{}.MaxPointCount())
	assert.Equal(t, 3, threeSeries().MaxPointCount())
}

func TestNumBars(t *testing.T) {
	assert.Equal(t, 2, threeSeries().NumBars())
}

func TestCopyIsDeep(t *testing.T) {
	l := threeSeries()
	c := l.Copy()

	require.Len(t, c, len(l))
	c[0].Label = "changed"
	c[1].Points[0].Y = 999

	assert.Equal(t, "alpha", l[0].Label)
	assert.Equal(t, 3.0, l[1].Points[0].Y)
}

func TestCopyNil(t *testing.T) {
	var l SeriesList
	assert.Nil(t, l.Copy())
}

func TestSortByLabelNatural(t *testing.T) {
	var l SeriesList
	l.Add(MakeSeries("series10", KindLine, nil))
	l.Add(MakeSeries("series2", KindLine, nil))
	l.Add(MakeSeries("series1", KindLine, nil))

	l.SortByLabel()

	assert.Equal(t, "series1", l[0].Label)
	assert.Equal(t, "series2", l[1].Label)
	assert.Equal(t, "series10", l[2].Label)
}

func TestMarshalJSON(t *testing.T) {
	var l SeriesList
	s := MakeSeries("a", KindLine, []PointPair{{1, 2}, {3, math.NaN()}})
	l.Add(s)

	got := string(MarshalJSON(l))
	assert.Equal(t, `[{"label":"a","kind":"line","y2":false,"points":[[1,2],[3,null]]}]`, got)
}

func TestMarshalCSV(t *testing.T) {
	var l SeriesList
	l.Add(MakeSeries("a", KindLine, []PointPair{{1, 2}}))
	l.Add(MakeSeries("b", KindLine, []PointPair{{3, 4}}))

	got := string(MarshalCSV(l))
	assert.Equal(t, "\"a\",1,2\n\"b\",3,4\n", got)
}
