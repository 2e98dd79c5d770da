// Package notify delivers short, transient user-facing messages.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier surfaces messages to the user. Delivery is fire-and-forget.
type Notifier interface {
	NotifyError(message string)
	NotifySuccess(message string)
}

// Console prints notifications as single lines to w.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

var _ Notifier = (*Console)(nil)

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) NotifyError(message string) {
	c.print("error: " + message)
}

func (c *Console) NotifySuccess(message string) {
	c.print(message)
}

func (c *Console) print(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, line)
}
