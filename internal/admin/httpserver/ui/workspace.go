package ui

import (
	"sync"

	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	"github.com/hexfield/catalog-admin/internal/admin/editor"
)

// modalSignal is the widget the modal controller drives. It only remembers
// the last transition; the rendered fragment is derived from controller state.
type modalSignal struct {
	mu   sync.Mutex
	last string
}

func (s *modalSignal) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = "show"
}

func (s *modalSignal) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = "hide"
}

// LastEvent returns "show", "hide" or "".
func (s *modalSignal) LastEvent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Workspace is the per-operator editing state: a catalog cache, the modal
// controller and its working copy.
type Workspace struct {
	mu         sync.Mutex
	Cache      *catalog.Cache
	Controller *editor.Controller
	signal     *modalSignal
}

// Lock serialises handler access to the workspace. The modal controller is
// not safe for concurrent use.
func (ws *Workspace) Lock() { ws.mu.Lock() }

// Unlock releases the workspace.
func (ws *Workspace) Unlock() { ws.mu.Unlock() }

// Registry hands out one workspace per session ID.
type Registry struct {
	mu         sync.Mutex
	service    catalog.Service
	workspaces map[string]*Workspace
}

// NewRegistry builds a workspace registry backed by the catalog service.
func NewRegistry(service catalog.Service) *Registry {
	return &Registry{
		service:    service,
		workspaces: make(map[string]*Workspace),
	}
}

// Get returns the workspace for the session, creating it on first use.
func (r *Registry) Get(sessionID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ws, ok := r.workspaces[sessionID]; ok {
		return ws
	}

	cache := catalog.NewCache(r.service)
	signal := &modalSignal{}
	dispatcher := editor.NewMutationDispatcher(r.service, cache)
	ws := &Workspace{
		Cache:      cache,
		Controller: editor.NewController(signal, dispatcher),
		signal:     signal,
	}
	r.workspaces[sessionID] = ws
	return ws
}

// Drop removes the workspace for a session, releasing its working copy.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workspaces, sessionID)
}
