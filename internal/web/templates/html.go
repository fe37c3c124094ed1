// Package templates renders the dashboard's HTML as templ components.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error so component
// bodies can stay linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped text.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes name="escaped value" with a leading space.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *htmlWriter) int(n int) {
	h.raw(itoa(n))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// component renders c into the same writer.
func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}
