package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Printer writes command output. It is safe for concurrent use.
type Printer struct {
	mu            sync.Mutex
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	silent        bool
}

// NewPrinter creates a Printer writing to os.Stdout in ModeAuto with the
// default lipgloss theme.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer:        os.Stdout,
		mode:          ModeAuto,
		styleProvider: NewThemeStyleProvider(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Println writes a plain result line.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text)
}

// Printf writes a formatted plain result line.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...))
}

// Info writes an informational line.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text)
}

// Error writes an error line.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text)
}

// Attribute writes one attribute listing line: "type name = value".
func (p *Printer) Attribute(typeName, name, value string, writable bool) {
	if p.currentMode() == ModeJSON {
		p.writeJSON(map[string]interface{}{
			"type":      "attribute",
			"attr_type": typeName,
			"name":      name,
			"value":     value,
			"writable":  writable,
		})
		return
	}
	flag := "w"
	if !writable {
		flag = "-"
	}
	line := fmt.Sprintf("%s %s %s = %s",
		p.style(SemanticKeyword, fmt.Sprintf("%-9s", typeName)), flag,
		p.style(SemanticVariable, name), value)
	p.write(line)
}

// Object writes one child-object listing line.
func (p *Printer) Object(name string) {
	p.output(SemanticVariable, name+".")
}

// SetWriter changes the destination.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// SetMode changes the rendering mode.
func (p *Printer) SetMode(mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

func (p *Printer) currentMode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func (p *Printer) output(semantic SemanticType, text string) {
	if p.currentMode() == ModeJSON {
		p.writeJSON(map[string]interface{}{
			"type":    semantic,
			"message": text,
		})
		return
	}
	if semantic == SemanticError {
		text = "error: " + text
	}
	p.write(p.style(semantic, text))
}

// style applies the semantic style when the mode allows it. Plain output has
// escape sequences stripped so token values never leak terminal control codes.
func (p *Printer) style(semantic SemanticType, text string) string {
	if !p.stylable() {
		return ansi.Strip(text)
	}
	return p.styleProvider.GetStyle(string(semantic)).Render(text)
}

func (p *Printer) stylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.styleProvider == nil || !p.styleProvider.IsAvailable() {
		return false
	}
	switch p.mode {
	case ModeStyled:
		return true
	case ModeAuto:
		return lipgloss.ColorProfile() != termenv.Ascii
	default:
		return false
	}
}

func (p *Printer) writeJSON(v map[string]interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		p.write(fmt.Sprint(v["message"]))
		return
	}
	p.write(string(data))
}

func (p *Printer) write(line string) {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	_, _ = fmt.Fprint(p.writer, line)
}
