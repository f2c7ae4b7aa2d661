package output

import "github.com/charmbracelet/lipgloss"

// ThemeStyleProvider maps semantic types to lipgloss styles.
type ThemeStyleProvider struct {
	styles map[string]lipgloss.Style
}

// NewThemeStyleProvider returns the default color theme.
func NewThemeStyleProvider() *ThemeStyleProvider {
	return &ThemeStyleProvider{
		styles: map[string]lipgloss.Style{
			string(SemanticInfo):     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			string(SemanticError):    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			string(SemanticKeyword):  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			string(SemanticVariable): lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		},
	}
}

// GetStyle implements StyleProvider. Unknown semantics get an empty style.
func (t *ThemeStyleProvider) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsAvailable implements StyleProvider.
func (t *ThemeStyleProvider) IsAvailable() bool {
	return t != nil
}
