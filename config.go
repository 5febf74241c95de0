// seehuhn.de/go/genart - generative art demos
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package genart

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/genart/tree"
)

// MaxExtent limits the surface width and height.
const MaxExtent = 1 << 14

// RenderConfig holds the numeric options of one render.
type RenderConfig struct {
	Depth  int     `yaml:"depth"`
	Angle1 float64 `yaml:"angle1"`
	Angle2 float64 `yaml:"angle2"`

	Zoom float64 `yaml:"zoom"`
	Dim  int     `yaml:"dim"`

	LineCount      int `yaml:"lines"`
	RectangleCount int `yaml:"rectangles"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Colored bool        `yaml:"colored"`
	Growth  tree.Growth `yaml:"growth"`

	// LineWidth is the stroke width of tree branches and mosaic lines.
	// With Taper set, it is the width of the trunk.
	LineWidth float64 `yaml:"lineWidth"`
	LineCap   LineCap `yaml:"lineCap"`
	Taper     bool    `yaml:"taper"`

	// Seed fixes the random choices of a mosaic.  Zero means the session
	// generator is used.
	Seed uint64 `yaml:"seed,omitempty"`
}

// DefaultConfig returns the settings the demo page starts with.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		Depth:          8,
		Angle1:         20,
		Angle2:         -20,
		Zoom:           1,
		Dim:            512,
		LineCount:      8,
		RectangleCount: 4,
		Width:          300,
		Height:         300,
		LineWidth:      1,
	}
}

// Validate checks that all values are in range.
func (c RenderConfig) Validate() error {
	switch {
	case c.Depth < 0 || c.Depth > tree.MaxDepth:
		return rangeError(FormDepth, strconv.Itoa(c.Depth))
	case !finite(c.Angle1):
		return rangeError(FormAngle1, formatFloat(c.Angle1))
	case !finite(c.Angle2):
		return rangeError(FormAngle2, formatFloat(c.Angle2))
	case !(c.Zoom >= 1) || math.IsInf(c.Zoom, 0):
		return rangeError(FormZoom, formatFloat(c.Zoom))
	case c.LineCount < 0:
		return rangeError(FormLines, strconv.Itoa(c.LineCount))
	case c.RectangleCount < 0:
		return rangeError(FormRectangles, strconv.Itoa(c.RectangleCount))
	case c.Width <= 0 || c.Width > MaxExtent:
		return rangeError(FormWidth, strconv.Itoa(c.Width))
	case c.Height <= 0 || c.Height > MaxExtent:
		return rangeError(FormHeight, strconv.Itoa(c.Height))
	case !(c.LineWidth > 0) || math.IsInf(c.LineWidth, 0):
		return rangeError(FormLineWidth, formatFloat(c.LineWidth))
	case c.LineCap > LineCap(graphics.LineCapSquare):
		return rangeError(FormLineCap, strconv.Itoa(int(c.LineCap)))
	}
	return nil
}

// Form field ids, as used by the input elements of the demo page.
const (
	FormDepth      = "treeDepth"
	FormAngle1     = "treeAngle1"
	FormAngle2     = "treeAngle2"
	FormZoom       = "zoomFactor"
	FormDim        = "fieldDim"
	FormLines      = "lineCount"
	FormRectangles = "rectangleCount"
	FormWidth      = "width"
	FormHeight     = "height"
	FormColored    = "treeColored"
	FormGrowth     = "treeGrowth"
	FormSeed       = "seed"
	FormLineWidth  = "lineWidth"
	FormLineCap    = "lineCap"
	FormTaper      = "treeTaper"
)

// Set parses the text of one form field into c.  Leading and trailing
// white space is ignored.  Values are not range checked; use Validate for
// this.
func (c *RenderConfig) Set(id, value string) error {
	v := strings.TrimSpace(value)
	var err error
	switch id {
	case FormDepth:
		c.Depth, err = parseInt(v)
	case FormAngle1:
		c.Angle1, err = parseFloat(v)
	case FormAngle2:
		c.Angle2, err = parseFloat(v)
	case FormZoom:
		c.Zoom, err = parseFloat(v)
	case FormDim:
		c.Dim, err = parseInt(v)
	case FormLines:
		c.LineCount, err = parseInt(v)
	case FormRectangles:
		c.RectangleCount, err = parseInt(v)
	case FormWidth:
		c.Width, err = parseInt(v)
	case FormHeight:
		c.Height, err = parseInt(v)
	case FormColored:
		c.Colored, err = strconv.ParseBool(v)
		if err != nil {
			err = errUnknownOption
		}
	case FormGrowth:
		err = c.Growth.UnmarshalText([]byte(v))
		if err != nil {
			err = errUnknownOption
		}
	case FormSeed:
		c.Seed, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			err = errNotInteger
		}
	case FormLineWidth:
		c.LineWidth, err = parseFloat(v)
	case FormLineCap:
		err = c.LineCap.UnmarshalText([]byte(v))
		if err != nil {
			err = errUnknownOption
		}
	case FormTaper:
		c.Taper, err = strconv.ParseBool(v)
		if err != nil {
			err = errUnknownOption
		}
	default:
		err = errUnknownField
	}
	if err != nil {
		return &ConfigError{Field: id, Value: value, Err: err}
	}
	return nil
}

// ParseForm applies the given form values to the default configuration and
// validates the result.  Fields are processed in sorted order, so that the
// reported error does not depend on map iteration.
func ParseForm(values map[string]string) (RenderConfig, error) {
	c := DefaultConfig()
	for _, id := range slices.Sorted(maps.Keys(values)) {
		if err := c.Set(id, values[id]); err != nil {
			return RenderConfig{}, err
		}
	}
	if err := c.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return c, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if _, ferr := strconv.ParseFloat(s, 64); ferr == nil {
		return 0, errNotInteger
	}
	return 0, errNotNumber
}

func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(x) {
		return 0, errNotNumber
	}
	return x, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func rangeError(id, value string) error {
	return &ConfigError{Field: id, Value: value, Err: errOutOfRange}
}

// LineCap is the style used at the ends of stroked lines.  In scene files
// and forms it is written as "butt", "round" or "square".
type LineCap graphics.LineCapStyle

func (lc LineCap) String() string {
	return graphics.LineCapStyle(lc).String()
}

// MarshalText implements encoding.TextMarshaler.
func (lc LineCap) MarshalText() ([]byte, error) {
	if lc > LineCap(graphics.LineCapSquare) {
		return nil, fmt.Errorf("invalid line cap %d", int(lc))
	}
	return []byte(lc.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (lc *LineCap) UnmarshalText(text []byte) error {
	switch string(text) {
	case "butt", "":
		*lc = LineCap(graphics.LineCapButt)
	case "round":
		*lc = LineCap(graphics.LineCapRound)
	case "square":
		*lc = LineCap(graphics.LineCapSquare)
	default:
		return fmt.Errorf("invalid line cap %q", text)
	}
	return nil
}
