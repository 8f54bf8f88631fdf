package editor

import (
	"context"
	"errors"
	"fmt"
)

// Mode selects which mutation path and modal variant is active.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeDelete Mode = "delete"
)

// ParseMode validates a raw mode string.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeCreate, ModeEdit, ModeDelete:
		return Mode(raw), nil
	default:
		return "", fmt.Errorf("editor: unknown modal mode %q", raw)
	}
}

// Widget is the opaque modal capability. The controller depends only on this
// two-method contract, never on how the widget renders.
type Widget interface {
	Show()
	Hide()
}

// Dispatcher routes a confirmed modal action to the backing API.
type Dispatcher interface {
	// Submit issues a create (ModeCreate) or update (ModeEdit) for the
	// working copy and refreshes the catalog on success.
	Submit(ctx context.Context, token string, mode Mode, product TemplateProduct) error

	// Delete removes the product with the given ID and refreshes the
	// catalog on success.
	Delete(ctx context.Context, token, id string) error
}

// ErrModalClosed is returned when Confirm is called with no modal open.
var ErrModalClosed = errors.New("editor: modal is not open")

// Controller owns modal visibility, the active mode, and the working copy.
// States: Closed and Open(mode); re-enterable indefinitely, never nested.
type Controller struct {
	widget     Widget
	dispatcher Dispatcher
	open       bool
	mode       Mode
	template   TemplateProduct
}

// NewController builds a closed controller seeded with the blank template.
func NewController(widget Widget, dispatcher Dispatcher) *Controller {
	c := &Controller{
		widget:     widget,
		dispatcher: dispatcher,
	}
	c.template.Apply(BlankPatch())
	return c
}

// Open sets the mode, merges the supplied fields onto the existing working
// copy, and shows the widget. Fields absent from the patch keep whatever the
// template held from the previous invocation; callers that want a clean slate
// pass a full patch such as BlankPatch.
func (c *Controller) Open(mode Mode, patch Patch) {
	c.mode = mode
	c.open = true
	c.template.Apply(patch)
	c.widget.Show()
}

// Close hides the widget. The working copy is deliberately not reset; the
// next Open reseeds it.
func (c *Controller) Close() {
	c.open = false
	c.widget.Hide()
}

// Confirm routes the current mode to the dispatcher. On success the modal
// closes; on failure it stays open with the operator's edits intact and the
// error is returned for the caller to log or surface.
func (c *Controller) Confirm(ctx context.Context, token string) error {
	if !c.open {
		return ErrModalClosed
	}

	var err error
	switch c.mode {
	case ModeDelete:
		err = c.dispatcher.Delete(ctx, token, c.template.ID)
	default:
		err = c.dispatcher.Submit(ctx, token, c.mode, c.template)
	}
	if err != nil {
		return err
	}

	c.Close()
	return nil
}

// IsOpen reports whether a modal is currently open.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Mode returns the active mode; meaningful only while open.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Template exposes the mutable working copy for field and image edits.
func (c *Controller) Template() *TemplateProduct {
	return &c.template
}
