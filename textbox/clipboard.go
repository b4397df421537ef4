package textbox

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

var (
	// ErrClipboard wraps every failure reported by a Clipboard.
	ErrClipboard = errors.New("textbox: clipboard")
	// ErrClipboardEmpty is returned by MemoryClipboard when nothing was written.
	ErrClipboardEmpty = errors.New("clipboard empty")
)

// Clipboard is the fallible get/set text capability used by Copy, Cut and
// Paste. Failures are reported to the caller and never abort the session.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("system clipboard unsupported")
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return errors.New("system clipboard unsupported")
	}
	return clipboard.WriteAll(s)
}

// MemoryClipboard keeps text in process. The zero value is empty and ready
// to use. ReadErr and WriteErr, when set, are returned instead of touching
// the stored text.
type MemoryClipboard struct {
	mu       sync.Mutex
	text     string
	set      bool
	ReadErr  error
	WriteErr error
}

func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ReadErr != nil {
		return "", c.ReadErr
	}
	if !c.set {
		return "", ErrClipboardEmpty
	}
	return c.text, nil
}

func (c *MemoryClipboard) WriteText(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.WriteErr != nil {
		return c.WriteErr
	}
	c.text, c.set = s, true
	return nil
}

// Contents returns the stored text and whether anything was written.
func (c *MemoryClipboard) Contents() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.set
}

func clipboardErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrClipboard, op, err)
}
