package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColor(t *testing.T) {
	c, err := NewColor(0.25, 0.5, 0.75)

	require.NoError(t, err)
	assert.Equal(t, Color{0.25, 0.5, 0.75, 1.0}, c)
}

func TestNewColorWithInvalidChannel(t *testing.T) {
	for _, channels := range [][3]float64{{-0.1, 0, 0}, {0, 1.1, 0}, {0, 0, 255}} {
		_, err := NewColor(channels[0], channels[1], channels[2])

		assert.ErrorIs(t, err, ErrInvalidColor)
	}
}

func TestNewColorRGBA(t *testing.T) {
	c, err := NewColorRGBA(255, 0, 51, 1.0)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Red, 0.0001)
	assert.InDelta(t, 0.0, c.Green, 0.0001)
	assert.InDelta(t, 0.2, c.Blue, 0.0001)

	if _, err := NewColorRGBA(256, 0, 0, 1.0); err == nil {
		t.Errorf("expected error for out of range channel")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex      string
		expected [4]float64
	}{
		{"#FF0033", [4]float64{1.0, 0.0, 0.2, 1.0}},
		{"FF0033", [4]float64{1.0, 0.0, 0.2, 1.0}},
		{"#00000000", [4]float64{0.0, 0.0, 0.0, 0.0}},
		{"#ffffff", [4]float64{1.0, 1.0, 1.0, 1.0}},
	}

	for _, test := range tests {
		c, err := ParseHexColor(test.hex)

		require.NoError(t, err, "unexpected error parsing '%s'", test.hex)
		assert.InDelta(t, test.expected[0], c.Red, 0.005)
		assert.InDelta(t, test.expected[1], c.Green, 0.005)
		assert.InDelta(t, test.expected[2], c.Blue, 0.005)
		assert.InDelta(t, test.expected[3], c.Alpha, 0.005)
	}
}

func TestParseHexColorWithInvalidInput(t *testing.T) {
	for _, hex := range []string{"", "#FFF", "#GGHHII", "#FF00334455"} {
		_, err := ParseHexColor(hex)

		assert.ErrorIs(t, err, ErrInvalidColor, "expected error parsing '%s'", hex)
	}
}

func TestColorStyle(t *testing.T) {
	style := Black.ColorStyle()

	require.NotNil(t, style.RgbColor)
	assert.Equal(t, 0.0, style.RgbColor.Red)
	assert.Equal(t, 1.0, style.RgbColor.Alpha)
	assert.Contains(t, style.RgbColor.ForceSendFields, "Red", "zero channels must still be serialized")
}
