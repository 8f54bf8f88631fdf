package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/hexfield/catalog-admin/internal/admin/catalog"
)

// ErrMutationInFlight is returned when a mutation is requested while a
// previous one has not finished. One outstanding mutation per working copy.
var ErrMutationInFlight = errors.New("editor: mutation already in flight")

// MutationDispatcher translates a confirmed modal action into a backend call
// and refreshes the catalog cache afterwards. A failed refresh is logged and
// does not fail the mutation; the cache simply stays stale.
type MutationDispatcher struct {
	service  catalog.Service
	cache    *catalog.Cache
	inFlight atomic.Bool
}

// NewMutationDispatcher wires the dispatcher to the backend service and the
// catalog cache it refreshes after each successful mutation.
func NewMutationDispatcher(service catalog.Service, cache *catalog.Cache) *MutationDispatcher {
	return &MutationDispatcher{service: service, cache: cache}
}

// Submit issues the create or update call for the working copy.
func (d *MutationDispatcher) Submit(ctx context.Context, token string, mode Mode, product TemplateProduct) error {
	if !d.inFlight.CompareAndSwap(false, true) {
		return ErrMutationInFlight
	}
	defer d.inFlight.Store(false)

	payload := BuildPayload(product)

	var err error
	switch mode {
	case ModeCreate:
		payload.ID = ""
		err = d.service.Create(ctx, token, payload)
	case ModeEdit:
		err = d.service.Update(ctx, token, payload)
	default:
		return fmt.Errorf("editor: mode %q cannot be submitted", mode)
	}
	if err != nil {
		return err
	}

	d.refresh(ctx, token)
	return nil
}

// Delete removes the product with the given ID.
func (d *MutationDispatcher) Delete(ctx context.Context, token, id string) error {
	if !d.inFlight.CompareAndSwap(false, true) {
		return ErrMutationInFlight
	}
	defer d.inFlight.Store(false)

	if err := d.service.Delete(ctx, token, id); err != nil {
		return err
	}

	d.refresh(ctx, token)
	return nil
}

func (d *MutationDispatcher) refresh(ctx context.Context, token string) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Refresh(ctx, token); err != nil {
		log.Printf("catalog refresh after mutation failed: %v", err)
	}
}

// BuildPayload coerces the working copy into the wire shape: prices become
// numbers (blank or unparsable input counts as zero), the enabled flag
// becomes 0/1, and empty gallery entries are dropped. The main image URL is
// sent verbatim.
func BuildPayload(t TemplateProduct) catalog.Product {
	enabled := 0
	if t.Enabled {
		enabled = 1
	}
	return catalog.Product{
		ID:          t.ID,
		Title:       t.Title,
		Category:    t.Category,
		OriginPrice: coerceNumber(t.OriginPrice),
		Price:       coerceNumber(t.Price),
		Unit:        t.Unit,
		Description: t.Description,
		Content:     t.Content,
		Enabled:     enabled,
		ImageURL:    t.ImageURL,
		ImagesURL:   t.ImagesURL.Filtered(),
	}
}

func coerceNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
