// Package output renders command results for the user in plain, styled or
// JSON form.
package output

// StyleProvider supplies text styles for semantic output kinds.
type StyleProvider interface {
	// GetStyle returns the style for a semantic type such as "error".
	GetStyle(semantic string) TextStyle
	// IsAvailable reports whether the provider can style text right now.
	IsAvailable() bool
}

// TextStyle renders text. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text ...string) string
}

// Mode selects how the printer renders.
type Mode int

const (
	// ModeAuto styles output when the terminal supports color.
	ModeAuto Mode = iota
	// ModeStyled always styles output.
	ModeStyled
	// ModePlain never styles output.
	ModePlain
	// ModeJSON writes one JSON object per message.
	ModeJSON
)

// ParseMode converts a mode name from configuration.
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "", "auto":
		return ModeAuto, true
	case "styled":
		return ModeStyled, true
	case "plain":
		return ModePlain, true
	case "json":
		return ModeJSON, true
	}
	return ModeAuto, false
}

// SemanticType is the meaning of a piece of output.
type SemanticType string

const (
	// SemanticPlain is a command result with no decoration.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo is informational text.
	SemanticInfo SemanticType = "info"
	// SemanticError is an error report.
	SemanticError SemanticType = "error"
	// SemanticKeyword marks names such as attribute types.
	SemanticKeyword SemanticType = "keyword"
	// SemanticVariable marks attribute or object names.
	SemanticVariable SemanticType = "variable"
)
