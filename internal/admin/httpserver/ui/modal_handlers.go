package ui

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	"github.com/hexfield/catalog-admin/internal/admin/editor"
	custommw "github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
	productstpl "github.com/hexfield/catalog-admin/internal/admin/templates/products"
)

// ModalOpen opens the editor dialog in the requested mode. Create seeds the
// working copy with a full blank patch; edit and delete seed it from the
// cached product record.
func (h *Handlers) ModalOpen(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	mode, err := editor.ParseMode(strings.TrimSpace(r.PostFormValue("mode")))
	if err != nil {
		http.Error(w, "unknown modal mode", http.StatusBadRequest)
		return
	}

	ws.Lock()
	defer ws.Unlock()

	var patch editor.Patch
	switch mode {
	case editor.ModeCreate:
		patch = editor.BlankPatch()
	default:
		id := strings.TrimSpace(r.PostFormValue("id"))
		product, found := ws.Cache.Find(id)
		if !found {
			token := custommw.TokenFromContext(r.Context())
			if err := ws.Cache.Refresh(r.Context(), token); err != nil {
				log.Printf("modal open: refresh failed: %v", err)
			}
			product, found = ws.Cache.Find(id)
		}
		if !found {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		patch = editor.PatchOf(product)
	}

	ws.Controller.Open(mode, patch)

	w.Header().Set("HX-Trigger", "modal-opened")
	h.renderModal(w, r, ws, "")
}

// ModalClose hides the dialog. The working copy survives until the next open.
func (h *Handlers) ModalClose(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	ws.Lock()
	defer ws.Unlock()

	ws.Controller.Close()

	w.Header().Set("HX-Trigger", "modal-closed")
	h.renderModal(w, r, ws, "")
}

// ModalField stores a single edited field on the working copy.
func (h *Handlers) ModalField(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))

	ws.Lock()
	defer ws.Unlock()

	if !ws.Controller.IsOpen() {
		http.Error(w, "modal is not open", http.StatusConflict)
		return
	}

	var err error
	if name == editor.FieldEnabled {
		// Unchecked boxes post no value at all.
		err = ws.Controller.Template().SetCheckbox(name, r.PostFormValue(name) != "")
	} else {
		err = ws.Controller.Template().SetField(name, r.PostFormValue("value"))
	}
	if err != nil {
		http.Error(w, "unknown field", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ModalImageSlot writes one gallery slot, letting the list grow or shrink.
func (h *Handlers) ModalImageSlot(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid slot index", http.StatusBadRequest)
		return
	}

	ws.Lock()
	defer ws.Unlock()

	if !ws.Controller.IsOpen() {
		http.Error(w, "modal is not open", http.StatusConflict)
		return
	}

	// Raw value on purpose: only the literal empty string counts as a
	// cleared slot, so whitespace still fills it.
	if err := ws.Controller.Template().ImagesURL.SetAt(index, r.PostFormValue("value")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.renderImages(w, r, ws)
}

// ModalImagesAdd appends an empty gallery slot.
func (h *Handlers) ModalImagesAdd(w http.ResponseWriter, r *http.Request) {
	h.mutateImages(w, r, func(list *editor.ImageList) error { return list.AddSlot() })
}

// ModalImagesRemove drops the trailing gallery slot.
func (h *Handlers) ModalImagesRemove(w http.ResponseWriter, r *http.Request) {
	h.mutateImages(w, r, func(list *editor.ImageList) error { return list.RemoveSlot() })
}

func (h *Handlers) mutateImages(w http.ResponseWriter, r *http.Request, op func(*editor.ImageList) error) {
	ws, ok := h.workspace(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	ws.Lock()
	defer ws.Unlock()

	if !ws.Controller.IsOpen() {
		http.Error(w, "modal is not open", http.StatusConflict)
		return
	}

	if err := op(&ws.Controller.Template().ImagesURL); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	h.renderImages(w, r, ws)
}

// ModalConfirm commits the working copy: create or update for the edit modes,
// removal for delete mode. Success closes the dialog and announces the
// catalog change; failure keeps it open with the operator's edits intact.
func (h *Handlers) ModalConfirm(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	token := custommw.TokenFromContext(r.Context())

	ws.Lock()
	defer ws.Unlock()

	err := ws.Controller.Confirm(r.Context(), token)
	if err == nil {
		w.Header().Set("HX-Trigger", "catalog-changed, modal-closed")
		h.renderModal(w, r, ws, "")
		return
	}

	log.Printf("modal confirm failed: %v", err)
	switch {
	case errors.Is(err, editor.ErrModalClosed):
		http.Error(w, "modal is not open", http.StatusConflict)
	case errors.Is(err, editor.ErrMutationInFlight):
		h.renderModal(w, r, ws, "A previous save is still running. Try again in a moment.")
	case errors.Is(err, catalog.ErrProductNotFound):
		h.renderModal(w, r, ws, "The product no longer exists. Close the dialog and refresh the list.")
	default:
		h.renderModal(w, r, ws, "Saving failed: "+err.Error())
	}
}

func (h *Handlers) renderModal(w http.ResponseWriter, r *http.Request, ws *Workspace, errMsg string) {
	data := productstpl.BuildModalData(
		h.basePath,
		ws.Controller.IsOpen(),
		ws.Controller.Mode(),
		*ws.Controller.Template(),
		custommw.CSRFTokenFromContext(r.Context()),
	)
	data.Error = errMsg
	templ.Handler(productstpl.Modal(data)).ServeHTTP(w, r)
}

func (h *Handlers) renderImages(w http.ResponseWriter, r *http.Request, ws *Workspace) {
	data := productstpl.BuildModalData(
		h.basePath,
		true,
		ws.Controller.Mode(),
		*ws.Controller.Template(),
		custommw.CSRFTokenFromContext(r.Context()),
	)
	templ.Handler(productstpl.ImagesEditor(data)).ServeHTTP(w, r)
}
