package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NavItem is one sidebar link to a list view.
type NavItem struct {
	Key   string
	Label string
}

// SidebarParams controls sidebar highlighting.
type SidebarParams struct {
	ActivePage string // "dashboard" or a view key
	Views      []NavItem
}

// Layout wraps body in the page shell with the sidebar.
func Layout(title string, sidebar SidebarParams, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` · Admin</title>`)
		h.raw(`<link rel="stylesheet" href="/static/app.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		h.raw(`</head><body><div class="shell">`)

		h.raw(`<nav class="sidebar"><h1>Admin</h1><ul>`)
		navLink(h, "/", "Dashboard", sidebar.ActivePage == "dashboard")
		for _, v := range sidebar.Views {
			navLink(h, "/views/"+v.Key, v.Label, sidebar.ActivePage == v.Key)
		}
		h.raw(`</ul></nav>`)

		h.raw(`<main class="content"><header class="page-header"><h2>`)
		h.text(title)
		h.raw(`</h2></header>`)
		h.component(ctx, body)
		h.raw(`</main></div></body></html>`)
		return h.err
	})
}

func navLink(h *htmlWriter, href, label string, active bool) {
	h.raw(`<li><a`)
	h.attr("href", href)
	if active {
		h.raw(` class="active" aria-current="page"`)
	}
	h.raw(`>`)
	h.text(label)
	h.raw(`</a></li>`)
}
