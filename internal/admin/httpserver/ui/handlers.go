package ui

import (
	"net/http"

	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	custommw "github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
)

// Dependencies collects external services required by the UI handlers.
type Dependencies struct {
	CatalogService catalog.Service
	BasePath       string
}

// Handlers exposes HTTP handlers for admin UI pages and fragments.
type Handlers struct {
	registry *Registry
	basePath string
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	service := deps.CatalogService
	if service == nil {
		service = catalog.NewStaticService()
	}
	basePath := deps.BasePath
	if basePath == "" {
		basePath = "/admin"
	}
	return &Handlers{
		registry: NewRegistry(service),
		basePath: basePath,
	}
}

// DropWorkspace releases the editing state tied to a session, used at logout.
func (h *Handlers) DropWorkspace(sessionID string) {
	h.registry.Drop(sessionID)
}

// workspace resolves the per-session workspace for this request.
func (h *Handlers) workspace(r *http.Request) (*Workspace, bool) {
	sess, ok := custommw.SessionFromContext(r.Context())
	if !ok {
		return nil, false
	}
	return h.registry.Get(sess.ID()), true
}
