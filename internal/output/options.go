package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithWriter sets the destination. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode sets the rendering mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// TestMode forces deterministic plain output.
func TestMode() Option {
	return func(p *Printer) {
		p.mode = ModePlain
	}
}

// Silent suppresses all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}
