package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_PlainOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Println("800")
	printer.Printf("%s=%d", "gap", 5)
	printer.Info("reloaded")
	printer.Error("invalid integer \"12a\"")

	assert.Equal(t, []string{
		"800",
		"gap=5",
		"reloaded",
		"error: invalid integer \"12a\"",
	}, buffer.Lines())
}

func TestPrinter_PlainStripsEscapes(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithMode(ModePlain))

	printer.Println("\x1b[31mred\x1b[0m")
	assert.Equal(t, "red\n", buffer.String())
}

func TestPrinter_Attribute(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Attribute("bool", "focus_follows_mouse", "false", true)
	printer.Attribute("uint", "count", "1", false)
	printer.Object("settings")

	assert.Equal(t, []string{
		"bool      w focus_follows_mouse = false",
		"uint      - count = 1",
		"settings.",
	}, buffer.Lines())
}

func TestPrinter_JSON(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithMode(ModeJSON))

	printer.Error("boom")
	printer.Attribute("int", "frame_gap", "5", true)

	lines := buffer.Lines()
	require.Len(t, lines, 2)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &msg))
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "boom", msg["message"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &msg))
	assert.Equal(t, "frame_gap", msg["name"])
	assert.Equal(t, true, msg["writable"])
}

func TestPrinter_Silent(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), Silent())

	printer.Println("hidden")
	assert.Empty(t, buffer.String())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name     string
		expected Mode
		ok       bool
	}{
		{"", ModeAuto, true},
		{"auto", ModeAuto, true},
		{"styled", ModeStyled, true},
		{"plain", ModePlain, true},
		{"json", ModeJSON, true},
		{"fancy", ModeAuto, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, ok := ParseMode(tt.name)
			assert.Equal(t, tt.expected, mode)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
