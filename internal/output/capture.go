package output

import (
	"bytes"
	"strings"
	"sync"
)

// CaptureBuffer is a thread-safe writer that records output for tests.
type CaptureBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCaptureBuffer creates an empty capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer.
func (c *CaptureBuffer) Write(p []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns everything written so far.
func (c *CaptureBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the output split into lines, without the final newline.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// Reset clears the buffer.
func (c *CaptureBuffer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}
