package sheet

import (
	"fmt"
	"strconv"
	"strings"

	sheets "google.golang.org/api/sheets/v4"
)

// Color is an RGBA colour with unit-interval channels, matching the Sheets
// API colour representation.
type Color struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// NewColor creates an opaque colour from unit-interval channels.
func NewColor(red, green, blue float64) (Color, error) {
	return NewColorAlpha(red, green, blue, 1.0)
}

// NewColorAlpha creates a colour from unit-interval channels.
func NewColorAlpha(red, green, blue, alpha float64) (Color, error) {
	for _, v := range []float64{red, green, blue, alpha} {
		if v < 0 || v > 1 {
			return Color{}, fmt.Errorf("%w: supported range is 0 to 1", ErrInvalidColor)
		}
	}

	return Color{red, green, blue, alpha}, nil
}

// NewColorRGBA creates a colour from 8-bit channels and a unit-interval alpha.
func NewColorRGBA(red, green, blue int, alpha float64) (Color, error) {
	for _, v := range []int{red, green, blue} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: supported range is 0 to 255", ErrInvalidColor)
		}
	}

	return NewColorAlpha(float64(red)/255, float64(green)/255, float64(blue)/255, alpha)
}

// ParseHexColor parses '#RRGGBB' or '#RRGGBBAA' (the '#' is optional).
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: expected '#RRGGBB' or '#RRGGBBAA', got '%s'", ErrInvalidColor, s)
	}

	channels := [4]int{0, 0, 0, 255}
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: expected '#RRGGBB' or '#RRGGBBAA', got '%s'", ErrInvalidColor, s)
		}

		channels[i] = int(v)
	}

	return NewColorRGBA(channels[0], channels[1], channels[2], float64(channels[3])/255)
}

// ColorStyle converts the colour to the Sheets API representation.
func (c Color) ColorStyle() *sheets.ColorStyle {
	return &sheets.ColorStyle{
		RgbColor: &sheets.Color{
			Red:             c.Red,
			Green:           c.Green,
			Blue:            c.Blue,
			Alpha:           c.Alpha,
			ForceSendFields: []string{"Red", "Green", "Blue", "Alpha"},
		},
	}
}

func themeColorStyle(theme ThemeColor) *sheets.ColorStyle {
	return &sheets.ColorStyle{
		ThemeColor: string(theme),
	}
}
