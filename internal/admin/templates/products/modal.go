package products

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/hexfield/catalog-admin/internal/admin/editor"
)

// Modal renders the product editor dialog. A closed modal renders nothing, so
// swapping the fragment into the modal root removes the dialog from the page.
func Modal(data ModalData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !data.Open {
			return nil
		}

		var b strings.Builder

		// Keyboard dismissal stays off so half-edited working copies are
		// only discarded through the explicit close control.
		fmt.Fprintf(&b,
			`<div id="product-modal" data-modal data-bs-keyboard="false" role="dialog" aria-modal="true" data-mode="%s" class="fixed inset-0 z-40 flex items-center justify-center bg-slate-900/50" hx-headers='{"X-CSRF-Token":"%s"}'>`,
			html.EscapeString(string(data.Mode)), html.EscapeString(data.CSRFToken))
		b.WriteString(`<div class="max-h-[90vh] w-full max-w-2xl overflow-y-auto rounded-lg bg-white p-6 shadow-xl">`)

		fmt.Fprintf(&b, `<div class="mb-4 flex items-center justify-between"><h2 class="text-lg font-semibold text-slate-900">%s</h2>`,
			html.EscapeString(modalTitle(data.Mode)))
		fmt.Fprintf(&b,
			`<button data-modal-close aria-label="Close" class="text-slate-400 hover:text-slate-700" hx-post="%s" hx-target="#modal-root" hx-swap="innerHTML">&times;</button></div>`,
			html.EscapeString(data.Endpoints.ModalClose))

		if data.Error != "" {
			fmt.Fprintf(&b, `<p data-modal-error class="mb-3 rounded-md bg-rose-50 px-3 py-2 text-sm text-rose-700">%s</p>`,
				html.EscapeString(data.Error))
		}

		if data.Mode == editor.ModeDelete {
			writeDeleteBody(&b, data)
		} else {
			writeEditBody(&b, data)
		}

		b.WriteString(`</div></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func modalTitle(mode editor.Mode) string {
	switch mode {
	case editor.ModeCreate:
		return "New product"
	case editor.ModeEdit:
		return "Edit product"
	case editor.ModeDelete:
		return "Delete product"
	default:
		return "Product"
	}
}

func writeDeleteBody(b *strings.Builder, data ModalData) {
	fmt.Fprintf(b, `<p class="mb-4 text-sm text-slate-700">Delete <strong data-delete-title>%s</strong>? This cannot be undone.</p>`,
		html.EscapeString(data.Template.Title))
	b.WriteString(`<div class="flex justify-end gap-2">`)
	fmt.Fprintf(b,
		`<button data-modal-cancel class="rounded-md border border-slate-300 px-3 py-2 text-sm" hx-post="%s" hx-target="#modal-root" hx-swap="innerHTML">Cancel</button>`,
		html.EscapeString(data.Endpoints.ModalClose))
	fmt.Fprintf(b,
		`<button data-modal-confirm class="rounded-md bg-rose-600 px-3 py-2 text-sm font-medium text-white hover:bg-rose-700" hx-post="%s" hx-target="#modal-root" hx-swap="innerHTML">Delete</button>`,
		html.EscapeString(data.Endpoints.ModalConfirm))
	b.WriteString(`</div>`)
}

func writeEditBody(b *strings.Builder, data ModalData) {
	tmpl := data.Template

	b.WriteString(`<div class="grid grid-cols-2 gap-4">`)
	writeTextField(b, data, editor.FieldTitle, "Name", tmpl.Title)
	writeTextField(b, data, editor.FieldCategory, "Category", tmpl.Category)
	writeTextField(b, data, editor.FieldOriginPrice, "Origin price", tmpl.OriginPrice)
	writeTextField(b, data, editor.FieldPrice, "Price", tmpl.Price)
	writeTextField(b, data, editor.FieldUnit, "Unit", tmpl.Unit)
	writeTextField(b, data, editor.FieldImageURL, "Main image URL", tmpl.ImageURL)
	b.WriteString(`</div>`)

	writeTextArea(b, data, editor.FieldDescription, "Description", tmpl.Description)
	writeTextArea(b, data, editor.FieldContent, "Content", tmpl.Content)

	checked := ""
	if tmpl.Enabled {
		checked = " checked"
	}
	fmt.Fprintf(b,
		`<label class="mt-3 flex items-center gap-2 text-sm text-slate-700"><input type="checkbox" name="%s" value="1"%s hx-post="%s" hx-vals='{"name":"%s"}' hx-trigger="change" hx-swap="none"/>Enabled</label>`,
		editor.FieldEnabled, checked, html.EscapeString(data.Endpoints.ModalField), editor.FieldEnabled)

	writeImagesEditor(b, data)

	b.WriteString(`<div class="mt-6 flex justify-end gap-2">`)
	fmt.Fprintf(b,
		`<button data-modal-cancel class="rounded-md border border-slate-300 px-3 py-2 text-sm" hx-post="%s" hx-target="#modal-root" hx-swap="innerHTML">Cancel</button>`,
		html.EscapeString(data.Endpoints.ModalClose))
	fmt.Fprintf(b,
		`<button data-modal-confirm class="rounded-md bg-slate-900 px-3 py-2 text-sm font-medium text-white hover:bg-slate-700" hx-post="%s" hx-target="#modal-root" hx-swap="innerHTML">Save</button>`,
		html.EscapeString(data.Endpoints.ModalConfirm))
	b.WriteString(`</div>`)
}

func writeTextField(b *strings.Builder, data ModalData, name, label, value string) {
	fmt.Fprintf(b, `<label class="block text-sm"><span class="mb-1 block font-medium text-slate-700">%s</span>`, html.EscapeString(label))
	fmt.Fprintf(b,
		`<input type="text" name="value" data-field="%s" value="%s" class="w-full rounded-md border border-slate-300 px-3 py-2 text-sm" hx-post="%s" hx-vals='{"name":"%s"}' hx-trigger="change" hx-swap="none"/></label>`,
		name, html.EscapeString(value), html.EscapeString(data.Endpoints.ModalField), name)
}

func writeTextArea(b *strings.Builder, data ModalData, name, label, value string) {
	fmt.Fprintf(b, `<label class="mt-3 block text-sm"><span class="mb-1 block font-medium text-slate-700">%s</span>`, html.EscapeString(label))
	fmt.Fprintf(b,
		`<textarea name="value" data-field="%s" rows="3" class="w-full rounded-md border border-slate-300 px-3 py-2 text-sm" hx-post="%s" hx-vals='{"name":"%s"}' hx-trigger="change" hx-swap="none">%s</textarea></label>`,
		name, html.EscapeString(data.Endpoints.ModalField), name, html.EscapeString(value))
}

func writeImagesEditor(b *strings.Builder, data ModalData) {
	_ = ImagesEditor(data).Render(context.Background(), b)
}

// ImagesEditor renders the gallery slot list as its own fragment so slot
// updates can swap just this subtree.
func ImagesEditor(data ModalData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		list := data.Template.ImagesURL

		var b strings.Builder
		b.WriteString(`<div id="modal-images" data-images-editor class="mt-4">`)
		b.WriteString(`<span class="mb-1 block text-sm font-medium text-slate-700">Gallery images</span>`)

		for i, value := range list {
			fmt.Fprintf(&b,
				`<input type="url" name="value" data-image-slot="%d" value="%s" placeholder="Image URL" class="mb-2 w-full rounded-md border border-slate-300 px-3 py-2 text-sm" hx-post="%s/%d" hx-trigger="change" hx-target="#modal-images" hx-swap="outerHTML"/>`,
				i, html.EscapeString(value), html.EscapeString(data.Endpoints.ModalImages), i)
		}

		b.WriteString(`<div class="flex gap-2">`)
		if list.CanAddSlot() {
			fmt.Fprintf(&b,
				`<button data-images-add class="rounded-md border border-slate-300 px-3 py-1 text-sm" hx-post="%s/add" hx-target="#modal-images" hx-swap="outerHTML">Add image</button>`,
				html.EscapeString(data.Endpoints.ModalImages))
		}
		if list.CanRemoveSlot() {
			fmt.Fprintf(&b,
				`<button data-images-remove class="rounded-md border border-slate-300 px-3 py-1 text-sm text-rose-600" hx-post="%s/remove" hx-target="#modal-images" hx-swap="outerHTML">Remove last</button>`,
				html.EscapeString(data.Endpoints.ModalImages))
		}
		b.WriteString(`</div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
