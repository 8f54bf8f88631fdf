package ui

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	custommw "github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
	productstpl "github.com/hexfield/catalog-admin/internal/admin/templates/products"
)

// ProductsPage renders the product administration page.
func (h *Handlers) ProductsPage(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	token := custommw.TokenFromContext(r.Context())

	ws.Lock()
	defer ws.Unlock()

	list, listErr := h.loadProducts(r, ws, token)

	data := productstpl.BuildPageData(h.basePath, list, listErr)
	if ws.Controller.IsOpen() {
		modal := productstpl.BuildModalData(
			h.basePath,
			true,
			ws.Controller.Mode(),
			*ws.Controller.Template(),
			custommw.CSRFTokenFromContext(r.Context()),
		)
		data.Modal = &modal
	}

	templ.Handler(productstpl.Index(data)).ServeHTTP(w, r)
}

// ProductsTable renders the rows fragment for htmx refreshes.
func (h *Handlers) ProductsTable(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	token := custommw.TokenFromContext(r.Context())

	ws.Lock()
	defer ws.Unlock()

	list, listErr := h.loadProducts(r, ws, token)
	data := productstpl.BuildTableData(h.basePath, list, listErr)
	templ.Handler(productstpl.Table(data)).ServeHTTP(w, r)
}

// loadProducts refreshes the workspace cache. A failed refresh keeps serving
// the stale snapshot when one exists.
func (h *Handlers) loadProducts(r *http.Request, ws *Workspace, token string) ([]catalog.Product, error) {
	err := ws.Cache.Refresh(r.Context(), token)
	list := ws.Cache.Products()
	if err != nil {
		log.Printf("products: refresh failed: %v", err)
		if len(list) > 0 {
			return list, nil
		}
		return nil, err
	}
	return list, nil
}
