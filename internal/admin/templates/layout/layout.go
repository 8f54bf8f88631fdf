package layout

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
	"github.com/hexfield/catalog-admin/internal/admin/templates/helpers"
	"github.com/hexfield/catalog-admin/internal/admin/templates/partials"
)

// Page wraps content in the full admin document: head, topbar, sidebar.
// The CSRF token rides on the body tag so every htmx post inherits it.
func Page(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base := helpers.BasePath(ctx)
		csrf := middleware.CSRFTokenFromContext(ctx)

		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>%s</title><link rel="stylesheet" href="/static/admin.css"/><script src="https://unpkg.com/htmx.org@1.9.12" defer></script><script src="/static/admin.js" defer></script></head><body class="min-h-screen bg-slate-50" hx-headers='{"X-CSRF-Token":"%s"}'>`,
			html.EscapeString(title), html.EscapeString(csrf)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div class="flex min-h-screen"><aside class="w-56 border-r border-slate-200 bg-white">`); err != nil {
			return err
		}
		if err := partials.Sidebar(partials.DefaultNav(base)).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</aside><div class="flex flex-1 flex-col"><header class="flex items-center justify-between border-b border-slate-200 bg-white px-6 py-3">`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h1 class="text-lg font-semibold text-slate-900">%s</h1>`, html.EscapeString(title)); err != nil {
			return err
		}
		if err := partials.TopbarActions().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</header><main class="flex-1 p-6">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></div></div></body></html>`)
		return err
	})
}

// Bare wraps content in the document shell without the admin chrome. Used by
// the login screen.
func Bare(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>%s</title><link rel="stylesheet" href="/static/admin.css"/></head><body class="min-h-screen bg-slate-50">`,
			html.EscapeString(title)); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
