package partials

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/hexfield/catalog-admin/internal/admin/templates/helpers"
)

// NavItem is a single sidebar entry.
type NavItem struct {
	Key         string
	Label       string
	Href        string
	Pattern     string
	MatchPrefix bool
}

// DefaultNav returns the sidebar entries for the catalog admin.
func DefaultNav(base string) []NavItem {
	return []NavItem{
		{
			Key:         "products",
			Label:       "Products",
			Href:        helpers.JoinBase(base, "/products"),
			Pattern:     helpers.JoinBase(base, "/products"),
			MatchPrefix: true,
		},
	}
}

// Sidebar renders the navigation column, highlighting the active route.
func Sidebar(items []NavItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<nav class="flex flex-col gap-1 p-3" aria-label="Main">`)
		for _, item := range items {
			active := helpers.NavActive(ctx, item.Pattern, item.MatchPrefix)
			current := ""
			if active {
				current = ` aria-current="page"`
			}
			fmt.Fprintf(&b, `<a href="%s" class="%s"%s>%s</a>`,
				html.EscapeString(item.Href), helpers.NavClass(active), current, html.EscapeString(item.Label))
		}
		b.WriteString(`</nav>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
