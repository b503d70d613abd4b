package render

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// PieMode selects how values of a pie series collapse into one slice.
type PieMode int

const (
	PieModeMaximum PieMode = iota
	PieModeMinimum
	PieModeAverage
)

// LineMode controls how gaps between valid points are rendered.
type LineMode int

const (
	LineModeSlope LineMode = iota
	LineModeConnected
	LineModeStaircase
)

// PictureParams holds every rendering knob the renderer understands.
// Zero-value float fields use NaN to mean "not set".
type PictureParams struct {
	Width  float64
	Height float64
	Margin int

	BgColor  string
	FgColor  string
	FontName string
	FontSize float64

	Title     string
	HideGrid  bool
	HideAxes  bool
	HideTitle bool

	GraphOnly  bool
	HideLegend bool

	LineMode  LineMode
	LineWidth float64
	PieMode   PieMode

	AreaAlpha float64

	ColorList []string

	YMin  float64
	YMax  float64
	Y2Min float64
	Y2Max float64
	XMin  float64
	XMax  float64
}

// DefaultParams are the parameters used when a request names no
// template.
var DefaultParams = PictureParams{
	Width:  800,
	Height: 400,
	Margin: 10,

	BgColor:  "black",
	FgColor:  "white",
	FontName: "Sans",
	FontSize: 10,

	LineMode:  LineModeSlope,
	LineWidth: 1.2,
	PieMode:   PieModeAverage,

	AreaAlpha: math.NaN(),

	ColorList: DefaultColorList,

	YMin:  math.NaN(),
	YMax:  math.NaN(),
	Y2Min: math.NaN(),
	Y2Max: math.NaN(),
	XMin:  math.NaN(),
	XMax:  math.NaN(),
}

var templates = map[string]PictureParams{}

var ErrUnknownTemplate = merry.New("unknown template")

// GetPictureParams returns the parameters for the request, starting
// from the named template (or DefaultParams) and applying per-request
// overrides from the query form.
func GetPictureParams(form url.Values) (PictureParams, error) {
	t := form.Get("template")
	p, ok := templates[t]
	if !ok {
		if t != "" && t != "default" {
			return p, ErrUnknownTemplate.Here().WithValue("template", t)
		}
		p = DefaultParams
	}

	p.Width = getFloat64(form, "width", p.Width)
	p.Height = getFloat64(form, "height", p.Height)
	p.Margin = getInt(form, "margin", p.Margin)

	p.BgColor = getString(form, "bgcolor", p.BgColor)
	p.FgColor = getString(form, "fgcolor", p.FgColor)
	p.FontName = getString(form, "fontName", p.FontName)
	p.FontSize = getFloat64(form, "fontSize", p.FontSize)

	p.Title = getString(form, "title", p.Title)
	p.HideGrid = getBool(form, "hideGrid", p.HideGrid)
	p.HideAxes = getBool(form, "hideAxes", p.HideAxes)
	p.HideTitle = getBool(form, "hideTitle", p.HideTitle)
	p.GraphOnly = getBool(form, "graphOnly", p.GraphOnly)
	p.HideLegend = getBool(form, "hideLegend", p.HideLegend)

	p.LineMode = getLineMode(form, "lineMode", p.LineMode)
	p.LineWidth = getFloat64(form, "lineWidth", p.LineWidth)
	p.PieMode = getPieMode(form, "pieMode", p.PieMode)

	p.AreaAlpha = getFloat64(form, "areaAlpha", p.AreaAlpha)

	if cl := form.Get("colorList"); cl != "" {
		p.ColorList = strings.Split(cl, ",")
	}

	p.YMin = getFloat64(form, "yMin", p.YMin)
	p.YMax = getFloat64(form, "yMax", p.YMax)
	p.Y2Min = getFloat64(form, "yMinRight", p.Y2Min)
	p.Y2Max = getFloat64(form, "yMaxRight", p.Y2Max)
	p.XMin = getFloat64(form, "xMin", p.XMin)
	p.XMax = getFloat64(form, "xMax", p.XMax)

	return p, nil
}

func getBool(form url.Values, name string, def bool) bool {
	if s := form.Get(name); s != "" {
		switch s {
		case "True", "true", "1":
			return true
		case "False", "false", "0":
			return false
		}
	}
	return def
}

func getInt(form url.Values, name string, def int) int {
	if s := form.Get(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

func getFloat64(form url.Values, name string, def float64) float64 {
	if s := form.Get(name); s != "" {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
	}
	return def
}

func getString(form url.Values, name string, def string) string {
	if s := form.Get(name); s != "" {
		return s
	}
	return def
}

func getLineMode(form url.Values, name string, def LineMode) LineMode {
	if s := form.Get(name); s != "" {
		switch s {
		case "slope":
			return LineModeSlope
		case "connected":
			return LineModeConnected
		case "staircase":
			return LineModeStaircase
		}
	}
	return def
}

func getPieMode(form url.Values, name string, def PieMode) PieMode {
	if s := form.Get(name); s != "" {
		switch s {
		case "maximum", "max":
			return PieModeMaximum
		case "minimum", "min":
			return PieModeMinimum
		case "average", "avg":
			return PieModeAverage
		}
	}
	return def
}

// LoadTemplates reads named parameter templates from a toml/yaml file
// understood by viper. Each top-level key becomes a template starting
// from DefaultParams.
func LoadTemplates(logger *zap.Logger, path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return merry.Wrap(err)
	}

	for _, name := range v.AllKeys() {
		name = strings.Split(name, ".")[0]
		if _, ok := templates[name]; ok {
			continue
		}

		sub := v.Sub(name)
		if sub == nil {
			continue
		}
		setDefaults(sub)

		p := DefaultParams
		p.Width = sub.GetFloat64("width")
		p.Height = sub.GetFloat64("height")
		p.Margin = sub.GetInt("margin")
		p.BgColor = sub.GetString("bgcolor")
		p.FgColor = sub.GetString("fgcolor")
		p.FontName = sub.GetString("fontname")
		p.FontSize = sub.GetFloat64("fontsize")
		p.LineWidth = sub.GetFloat64("linewidth")
		if cl := sub.GetStringSlice("colorlist"); len(cl) > 0 {
			p.ColorList = cl
		}

		templates[name] = p
		logger.Debug("loaded graph template", zap.String("name", name))
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", DefaultParams.Width)
	v.SetDefault("height", DefaultParams.Height)
	v.SetDefault("margin", DefaultParams.Margin)
	v.SetDefault("bgcolor", DefaultParams.BgColor)
	v.SetDefault("fgcolor", DefaultParams.FgColor)
	v.SetDefault("fontname", DefaultParams.FontName)
	v.SetDefault("fontsize", DefaultParams.FontSize)
	v.SetDefault("linewidth", DefaultParams.LineWidth)
}
