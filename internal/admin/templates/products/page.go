package products

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/hexfield/catalog-admin/internal/admin/templates/helpers"
	"github.com/hexfield/catalog-admin/internal/admin/templates/layout"
)

// Index renders the full product administration page.
func Index(data PageData) templ.Component {
	return layout.Page(data.Title, pageBody(data))
}

func pageBody(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div class="mb-4 flex items-center justify-between">`)
		fmt.Fprintf(&b,
			`<button data-product-new class="rounded-md bg-slate-900 px-3 py-2 text-sm font-medium text-white hover:bg-slate-700" hx-post="%s" hx-vals='{"mode":"create"}' hx-target="#modal-root" hx-swap="innerHTML">New product</button>`,
			html.EscapeString(data.Endpoints.ModalOpen))
		b.WriteString(`</div>`)

		fmt.Fprintf(&b, `<div id="product-table" hx-get="%s" hx-trigger="catalog-changed from:body" hx-swap="innerHTML">`,
			html.EscapeString(data.Endpoints.Table))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := Table(data.Table).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div><div id="modal-root">`); err != nil {
			return err
		}
		if data.Modal != nil {
			if err := Modal(*data.Modal).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Table renders the product rows fragment.
func Table(data TableData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		if data.Error != "" {
			fmt.Fprintf(&b, `<p data-table-error class="rounded-md bg-rose-50 px-3 py-2 text-sm text-rose-700">%s</p>`,
				html.EscapeString(data.Error))
			_, err := io.WriteString(w, b.String())
			return err
		}

		b.WriteString(`<table class="w-full border-collapse text-sm" data-product-table><thead><tr class="border-b border-slate-200 text-left text-slate-500">`)
		b.WriteString(`<th class="px-3 py-2">Category</th><th class="px-3 py-2">Name</th><th class="px-3 py-2">Origin price</th><th class="px-3 py-2">Price</th><th class="px-3 py-2">Enabled</th><th class="px-3 py-2"></th>`)
		b.WriteString(`</tr></thead><tbody>`)

		for _, row := range data.Rows {
			fmt.Fprintf(&b, `<tr data-product-row data-product-id="%s" class="border-b border-slate-100">`, html.EscapeString(row.ID))
			fmt.Fprintf(&b, `<td class="px-3 py-2">%s</td>`, html.EscapeString(row.Category))
			fmt.Fprintf(&b, `<td class="px-3 py-2">%s</td>`, html.EscapeString(row.Title))
			fmt.Fprintf(&b, `<td class="px-3 py-2">%s</td>`, html.EscapeString(row.OriginPrice))
			fmt.Fprintf(&b, `<td class="px-3 py-2">%s</td>`, html.EscapeString(row.Price))
			if row.Enabled {
				b.WriteString(`<td class="px-3 py-2"><span data-enabled class="text-emerald-600">Enabled</span></td>`)
			} else {
				b.WriteString(`<td class="px-3 py-2"><span data-disabled class="text-slate-400">Disabled</span></td>`)
			}
			b.WriteString(`<td class="px-3 py-2 text-right">`)
			fmt.Fprintf(&b,
				`<button data-product-edit class="mr-2 text-slate-600 hover:text-slate-900" hx-post="%s" hx-vals='{"mode":"edit","id":"%s"}' hx-target="#modal-root" hx-swap="innerHTML">Edit</button>`,
				html.EscapeString(data.Endpoints.ModalOpen), html.EscapeString(row.ID))
			fmt.Fprintf(&b,
				`<button data-product-delete class="text-rose-600 hover:text-rose-800" hx-post="%s" hx-vals='{"mode":"delete","id":"%s"}' hx-target="#modal-root" hx-swap="innerHTML">Delete</button>`,
				html.EscapeString(data.Endpoints.ModalOpen), html.EscapeString(row.ID))
			b.WriteString(`</td></tr>`)
		}

		b.WriteString(`</tbody></table>`)
		fmt.Fprintf(&b, `<p data-product-count class="mt-3 text-sm text-slate-500">%s</p>`,
			html.EscapeString(helpers.Plural(len(data.Rows), "product", "products")))
		_, err := io.WriteString(w, b.String())
		return err
	})
}
