package main

import (
	"math"
	"os"
	"path/filepath"

	"github.com/ansel1/merry"
	"github.com/valyala/fastjson"
	yaml "gopkg.in/yaml.v2"

	"github.com/ChuckFork/ZedGraph/chart/graphics"
	"github.com/ChuckFork/ZedGraph/chart/pane"
	"github.com/ChuckFork/ZedGraph/chart/render"
	"github.com/ChuckFork/ZedGraph/chart/types"
)

var (
	ErrBadDocument = merry.New("bad chart document")
	ErrBadDataFile = merry.New("bad data file")
)

// axisDoc configures one axis. Nil Min/Max mean automatic.
type axisDoc struct {
	Ordinal bool     `yaml:"ordinal"`
	Text    bool     `yaml:"text"`
	Min     *float64 `yaml:"min"`
	Max     *float64 `yaml:"max"`
}

type seriesDoc struct {
	Label  string `yaml:"label"`
	Kind   string `yaml:"kind"`
	YAxis2 bool   `yaml:"yAxis2"`

	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`

	// DataFile points at a JSON file holding the points, either
	// {"x": [...], "y": [...]} or [[x, y], ...].
	DataFile string `yaml:"dataFile"`

	Color     string   `yaml:"color"`
	Alpha     *float64 `yaml:"alpha"`
	LineWidth *float64 `yaml:"lineWidth"`
	Dashed    float64  `yaml:"dashed"`
	Invisible bool     `yaml:"invisible"`
}

type objectDoc struct {
	Type string `yaml:"type"`

	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	W  float64 `yaml:"w"`
	H  float64 `yaml:"h"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`

	Text     string  `yaml:"text"`
	Color    string  `yaml:"color"`
	Fill     string  `yaml:"fill"`
	HeadSize float64 `yaml:"headSize"`
	ZOrder   int     `yaml:"zOrder"`
}

// chartDoc is the YAML chart document accepted on the command line and
// over HTTP.
type chartDoc struct {
	Title string `yaml:"title"`

	StackMode          string  `yaml:"stackMode"`
	BarBase            string  `yaml:"barBase"`
	StackedLines       bool    `yaml:"stackedLines"`
	ClusterScaleWidth  float64 `yaml:"clusterScaleWidth"`
	IgnoreInitialZeros bool    `yaml:"ignoreInitialZeros"`

	XAxis  axisDoc `yaml:"xAxis"`
	YAxis  axisDoc `yaml:"yAxis"`
	Y2Axis axisDoc `yaml:"y2Axis"`

	Series  []seriesDoc `yaml:"series"`
	Objects []objectDoc `yaml:"objects"`
}

// parseDocument builds a pane from a YAML chart document. Relative
// dataFile paths resolve against baseDir.
func parseDocument(doc []byte, baseDir string) (*pane.Pane, error) {
	var d chartDoc
	if err := yaml.UnmarshalStrict(doc, &d); err != nil {
		return nil, ErrBadDocument.Here().WithCause(err)
	}

	p := pane.New(d.Title)
	p.StackMode = types.GetStackMode(d.StackMode, types.StackModeNone)
	if d.BarBase == "y" {
		p.BarBase = types.BarBaseY
	}
	p.StackedLines = d.StackedLines
	if d.ClusterScaleWidth > 0 {
		p.ClusterScaleWidth = d.ClusterScaleWidth
	}
	p.IgnoreInitialZeros = d.IgnoreInitialZeros

	p.XAxis = parseAxis(d.XAxis)
	p.YAxis = parseAxis(d.YAxis)
	p.Y2Axis = parseAxis(d.Y2Axis)

	for _, sd := range d.Series {
		s, err := parseSeries(sd, baseDir)
		if err != nil {
			return nil, err
		}
		p.AddSeries(s)
	}

	for _, od := range d.Objects {
		o, err := parseObject(od)
		if err != nil {
			return nil, err
		}
		p.Objects.Add(o)
	}

	return p, nil
}

func parseAxis(d axisDoc) pane.Axis {
	a := pane.Axis{Ordinal: d.Ordinal, Text: d.Text, Min: math.NaN(), Max: math.NaN()}
	if d.Min != nil {
		a.Min = *d.Min
	}
	if d.Max != nil {
		a.Max = *d.Max
	}
	return a
}

func parseSeries(d seriesDoc, baseDir string) (*types.Series, error) {
	var points []types.PointPair
	switch {
	case d.DataFile != "":
		path := d.DataFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		var err error
		points, err = loadDataFile(path)
		if err != nil {
			return nil, err
		}
	case len(d.X) > 0:
		if len(d.X) != len(d.Y) {
			return nil, ErrBadDocument.Here().WithMessagef("series %q: x and y length mismatch", d.Label)
		}
		points = types.PointsFromXY(d.X, d.Y)
	default:
		points = types.PointsFromY(d.Y)
	}

	s := types.MakeSeries(d.Label, types.GetSeriesKind(d.Kind, types.KindLine), points)
	s.YAxis2 = d.YAxis2
	s.Color = d.Color
	if d.Alpha != nil {
		s.Alpha = *d.Alpha
		s.HasAlpha = true
	}
	if d.LineWidth != nil {
		s.LineWidth = *d.LineWidth
		s.HasLineWidth = true
	}
	s.Dashed = d.Dashed
	s.Invisible = d.Invisible
	return s, nil
}

func parseObject(d objectDoc) (graphics.Obj, error) {
	switch d.Type {
	case "box":
		b := &graphics.Box{
			X: d.X, Y: d.Y, W: d.W, H: d.H,
			Border: render.ParseColor(d.Color),
			Z:      d.ZOrder,
		}
		if d.Fill != "" {
			b.Fill = render.ParseColor(d.Fill)
			b.HasFill = true
		}
		return b, nil
	case "arrow":
		return &graphics.Arrow{
			X1: d.X, Y1: d.Y, X2: d.X2, Y2: d.Y2,
			Color:    render.ParseColor(d.Color),
			HeadSize: d.HeadSize,
			Z:        d.ZOrder,
		}, nil
	case "text":
		return &graphics.Text{
			X: d.X, Y: d.Y,
			S:     d.Text,
			Color: render.ParseColor(d.Color),
			Z:     d.ZOrder,
		}, nil
	default:
		return nil, ErrBadDocument.Here().WithMessagef("unknown object type %q", d.Type)
	}
}

// loadDataFile reads series points from a JSON file.
func loadDataFile(path string) ([]types.PointPair, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrBadDataFile.Here().WithCause(err)
	}

	v, err := fastjson.ParseBytes(b)
	if err != nil {
		return nil, ErrBadDataFile.Here().WithCause(err).WithValue("path", path)
	}

	if v.Type() == fastjson.TypeArray && len(v.GetArray()) > 0 && v.GetArray()[0].Type() == fastjson.TypeArray {
		var points []types.PointPair
		for _, pair := range v.GetArray() {
			a := pair.GetArray()
			if len(a) != 2 {
				return nil, ErrBadDataFile.Here().WithMessagef("%s: want [x, y] pairs", path)
			}
			points = append(points, types.PointPair{X: jsonFloat(a[0]), Y: jsonFloat(a[1])})
		}
		return points, nil
	}

	xs := v.GetArray("x")
	ys := v.GetArray("y")
	if len(ys) == 0 {
		return nil, ErrBadDataFile.Here().WithMessagef("%s: no y values", path)
	}
	if len(xs) == 0 {
		vals := make([]float64, len(ys))
		for i, y := range ys {
			vals[i] = jsonFloat(y)
		}
		return types.PointsFromY(vals), nil
	}
	if len(xs) != len(ys) {
		return nil, ErrBadDataFile.Here().WithMessagef("%s: x and y length mismatch", path)
	}

	points := make([]types.PointPair, len(xs))
	for i := range xs {
		points[i] = types.PointPair{X: jsonFloat(xs[i]), Y: jsonFloat(ys[i])}
	}
	return points, nil
}

// jsonFloat reads a number, mapping null to NaN so gaps survive the
// trip through JSON.
func jsonFloat(v *fastjson.Value) float64 {
	if v == nil || v.Type() == fastjson.TypeNull {
		return math.NaN()
	}
	f, err := v.Float64()
	if err != nil {
		return math.NaN()
	}
	return f
}
