package auth

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/hexfield/catalog-admin/internal/admin/templates/layout"
)

// LoginPage renders the full sign-in document.
func LoginPage(data LoginPageData) templ.Component {
	return layout.Bare("Sign in", LoginForm(data))
}

// LoginForm renders the credential form alone, so failed submissions can be
// re-rendered as a fragment.
func LoginForm(data LoginPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div class="mx-auto mt-24 w-full max-w-sm rounded-lg border border-slate-200 bg-white p-6 shadow-sm" data-login-card>`)
		b.WriteString(`<h1 class="mb-4 text-lg font-semibold text-slate-900">Catalog admin</h1>`)

		if data.Error != "" {
			fmt.Fprintf(&b, `<p data-login-error class="mb-3 rounded-md bg-rose-50 px-3 py-2 text-sm text-rose-700">%s</p>`,
				html.EscapeString(data.Error))
		}
		if data.Message != "" {
			fmt.Fprintf(&b, `<p data-login-message class="mb-3 rounded-md bg-slate-100 px-3 py-2 text-sm text-slate-700">%s</p>`,
				html.EscapeString(data.Message))
		}

		fmt.Fprintf(&b, `<form method="post" action="%s" data-login-form>`, html.EscapeString(data.LoginPath))
		fmt.Fprintf(&b, `<input type="hidden" name="csrf_token" value="%s"/>`, html.EscapeString(data.CSRFToken))
		if data.Next != "" {
			fmt.Fprintf(&b, `<input type="hidden" name="next" value="%s"/>`, html.EscapeString(data.Next))
		}
		fmt.Fprintf(&b,
			`<label class="mb-1 block text-sm font-medium text-slate-700" for="username">Email</label><input id="username" name="username" type="email" autocomplete="username" required class="mb-3 w-full rounded-md border border-slate-300 px-3 py-2 text-sm" value="%s"/>`,
			html.EscapeString(data.Username))
		b.WriteString(`<label class="mb-1 block text-sm font-medium text-slate-700" for="password">Password</label><input id="password" name="password" type="password" autocomplete="current-password" required class="mb-4 w-full rounded-md border border-slate-300 px-3 py-2 text-sm"/>`)
		b.WriteString(`<button type="submit" class="w-full rounded-md bg-slate-900 px-3 py-2 text-sm font-medium text-white hover:bg-slate-700">Sign in</button>`)
		b.WriteString(`</form></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
