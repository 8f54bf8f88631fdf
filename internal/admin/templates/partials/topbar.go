package partials

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
	"github.com/hexfield/catalog-admin/internal/admin/templates/helpers"
)

// TopbarActions renders the environment badge, the signed-in account summary
// and the logout form for the admin chrome.
func TopbarActions() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base := helpers.BasePath(ctx)
		env := middleware.EnvironmentFromContext(ctx)
		csrf := middleware.CSRFTokenFromContext(ctx)

		account := ""
		if identity, ok := middleware.IdentityFromContext(ctx); ok {
			account = identity.Account
		}

		var b strings.Builder
		b.WriteString(`<div class="flex items-center gap-4">`)

		fmt.Fprintf(&b,
			`<div data-environment-badge class="%s"><span aria-hidden="true">%s</span><span class="sr-only">%s</span></div>`,
			environmentBadgeClass(env), environmentAbbrev(env), html.EscapeString(env))

		if account != "" {
			fmt.Fprintf(&b,
				`<div data-user-menu class="flex items-center gap-3"><span class="truncate text-sm text-slate-700">%s</span>`,
				html.EscapeString(account))
			fmt.Fprintf(&b,
				`<form data-user-menu-logout method="post" action="%s">`,
				html.EscapeString(helpers.JoinBase(base, "/logout")))
			fmt.Fprintf(&b,
				`<input type="hidden" name="csrf_token" value="%s"/>`,
				html.EscapeString(csrf))
			b.WriteString(`<button type="submit" class="text-sm text-slate-500 hover:text-slate-900">Sign out</button></form></div>`)
		}

		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func environmentAbbrev(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production":
		return "PRD"
	case "staging":
		return "STG"
	default:
		return "DEV"
	}
}

func environmentBadgeClass(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production":
		return helpers.BadgeClass("danger")
	case "staging":
		return helpers.BadgeClass("warning")
	default:
		return helpers.BadgeClass("")
	}
}
