package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ErrorAlert is the fragment swapped in when an HTMX request fails.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newWriter(w)
		h.raw(`<div class="alert alert-error" role="alert"><strong>`)
		h.text(message)
		h.raw(`</strong>`)
		if action != "" {
			h.raw(` <span>`)
			h.text(action)
			h.raw(`</span>`)
		}
		if code != "" {
			h.raw(` <code>`)
			h.text(code)
			h.raw(`</code>`)
		}
		h.raw(`</div>`)
		return h.err
	})
}
