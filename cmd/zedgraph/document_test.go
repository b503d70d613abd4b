package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChuckFork/ZedGraph/chart/graphics"
	"github.com/ChuckFork/ZedGraph/chart/types"
)

const sampleDoc = `
title: cpu usage
stackMode: stack
clusterScaleWidth: 2
xAxis:
  ordinal: true
yAxis:
  min: 0
series:
  - label: user
    kind: bar
    y: [1, 2, 3]
  - label: system
    kind: bar
    color: red
    y: [2, 2, 2]
  - label: total
    kind: line
    yAxis2: true
    x: [1, 2, 3]
    y: [3, 4, 5]
objects:
  - type: text
    text: peak
    x: 0.5
    y: 0.1
`

func TestParseDocument(t *testing.T) {
	p, err := parseDocument([]byte(sampleDoc), ".")
	require.NoError(t, err)

	assert.Equal(t, "cpu usage", p.Title)
	assert.Equal(t, types.StackModeStacked, p.StackMode)
	assert.Equal(t, 2.0, p.ClusterScaleWidth)
	assert.True(t, p.XAxis.Ordinal)
	assert.Equal(t, 0.0, p.YAxis.Min)
	assert.True(t, math.IsNaN(p.YAxis.Max))

	require.Len(t, p.Curves, 3)
	assert.Equal(t, types.KindBar, p.Curves[0].Kind)
	assert.Equal(t, "red", p.Curves[1].Color)
	assert.True(t, p.Curves[2].YAxis2)
	assert.Equal(t, []types.PointPair{{1, 1}, {2, 2}, {3, 3}}, p.Curves[0].Points)

	require.Len(t, p.Objects, 1)
	txt, ok := p.Objects[0].(*graphics.Text)
	require.True(t, ok)
	assert.Equal(t, "peak", txt.S)

	b := p.RecalcRange()
	assert.Equal(t, 5.0, b.YMax, "stacked bars accumulate")
}

func TestParseDocumentRejectsUnknownField(t *testing.T) {
	_, err := parseDocument([]byte("title: x\nbogus: y\n"), ".")
	assert.True(t, merry.Is(err, ErrBadDocument))
}

func TestParseDocumentLengthMismatch(t *testing.T) {
	doc := `
series:
  - label: bad
    x: [1, 2]
    y: [1]
`
	_, err := parseDocument([]byte(doc), ".")
	assert.True(t, merry.Is(err, ErrBadDocument))
}

func TestParseDocumentUnknownObject(t *testing.T) {
	doc := `
objects:
  - type: circle
`
	_, err := parseDocument([]byte(doc), ".")
	assert.True(t, merry.Is(err, ErrBadDocument))
}

func TestDataFilePairs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[1, 10], [2, null], [3, 30]]`), 0644))

	points, err := loadDataFile(path)
	require.NoError(t, err)

	require.Len(t, points, 3)
	assert.Equal(t, types.PointPair{X: 1, Y: 10}, points[0])
	assert.True(t, math.IsNaN(points[1].Y), "null maps to a gap")
	assert.Equal(t, types.PointPair{X: 3, Y: 30}, points[2])
}

func TestDataFileXYObject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"x": [5, 6], "y": [50, 60]}`), 0644))

	points, err := loadDataFile(path)
	require.NoError(t, err)
	assert.Equal(t, []types.PointPair{{5, 50}, {6, 60}}, points)
}

func TestDataFileYOnlyGetsOrdinalX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"y": [7, 8]}`), 0644))

	points, err := loadDataFile(path)
	require.NoError(t, err)
	assert.Equal(t, []types.PointPair{{1, 7}, {2, 8}}, points)
}

func TestDataFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadDataFile(filepath.Join(dir, "absent.json"))
	assert.True(t, merry.Is(err, ErrBadDataFile))

	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"x": [1]}`), 0644))
	_, err = loadDataFile(path)
	assert.True(t, merry.Is(err, ErrBadDataFile))
}

func TestSeriesFromDataFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(`{"y": [1, 2]}`), 0644))

	doc := `
series:
  - label: fromFile
    dataFile: data.json
`
	p, err := parseDocument([]byte(doc), dir)
	require.NoError(t, err)

	require.Len(t, p.Curves, 1)
	assert.Equal(t, 2, p.Curves[0].PointCount())
}
