package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mgutz/ansi"

	"firestige.xyz/encounter/internal/core"
)

// ConsoleOptions configures the console sink.
type ConsoleOptions struct {
	Title   string `mapstructure:"title"`
	Content string `mapstructure:"content"`
	Color   bool   `mapstructure:"color"`
}

// Console writes notifications to a terminal. Only one notification is visible at a time;
// showing a new one replaces the previous.
type Console struct {
	out  io.Writer
	opts ConsoleOptions

	mu      sync.Mutex
	visible uuid.UUID
}

// NewConsole creates a console sink writing to out.
func NewConsole(out io.Writer, opts ConsoleOptions) *Console {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Content == "" {
		opts.Content = DefaultContent
	}
	return &Console{out: out, opts: opts}
}

func (c *Console) Show(n core.Notification) {
	symbols := Symbols(n)
	title := c.render(c.opts.Title, symbols, "+b")
	content := c.render(c.opts.Content, symbols, "")

	c.mu.Lock()
	defer c.mu.Unlock()

	c.visible = uuid.New()
	fmt.Fprintf(c.out, "+ %s [%s]\n  %s\n", title, c.visible, content)
}

func (c *Console) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.visible == uuid.Nil {
		return
	}
	fmt.Fprintf(c.out, "- dismissed [%s]\n", c.visible)
	c.visible = uuid.Nil
}

// Visible returns the id of the shown notification, or uuid.Nil.
func (c *Console) Visible() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// render formats template and, when colors are on, highlights each span and applies base
// to the remaining text.
func (c *Console) render(template string, symbols map[string]Symbol, base string) string {
	text, spans := Format(template, symbols)
	if !c.opts.Color {
		return text
	}

	var b strings.Builder
	plain := ansi.ColorFunc(base)
	pos := 0
	for _, s := range spans {
		b.WriteString(plain(text[pos:s.Start]))
		if s.Color == colorNone {
			b.WriteString(plain(text[s.Start:s.End]))
		} else {
			b.WriteString(ansi.Color(text[s.Start:s.End], s.Color))
		}
		pos = s.End
	}
	b.WriteString(plain(text[pos:]))
	return b.String()
}
