package editor

import (
	"errors"
	"strconv"

	"github.com/hexfield/catalog-admin/internal/admin/catalog"
)

// Field names accepted by SetField/SetCheckbox. They match both the form
// input names and the backend wire names.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldOriginPrice = "origin_price"
	FieldPrice       = "price"
	FieldUnit        = "unit"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldEnabled     = "is_enabled"
	FieldImageURL    = "imageUrl"
)

// ErrUnknownField is returned for a field name the template does not carry.
var ErrUnknownField = errors.New("editor: unknown field")

// TemplateProduct is the single mutable working copy of the product bound to
// the open modal. Text inputs keep their raw string values; numeric coercion
// happens at submission time.
type TemplateProduct struct {
	ID          string
	Title       string
	Category    string
	OriginPrice string
	Price       string
	Unit        string
	Description string
	Content     string
	Enabled     bool
	ImageURL    string
	ImagesURL   ImageList
}

// SetField stores a raw string value under a text field name.
func (t *TemplateProduct) SetField(name, value string) error {
	switch name {
	case FieldID:
		t.ID = value
	case FieldTitle:
		t.Title = value
	case FieldCategory:
		t.Category = value
	case FieldOriginPrice:
		t.OriginPrice = value
	case FieldPrice:
		t.Price = value
	case FieldUnit:
		t.Unit = value
	case FieldDescription:
		t.Description = value
	case FieldContent:
		t.Content = value
	case FieldImageURL:
		t.ImageURL = value
	default:
		return ErrUnknownField
	}
	return nil
}

// SetCheckbox stores a boolean value under a checkbox field name.
func (t *TemplateProduct) SetCheckbox(name string, checked bool) error {
	if name != FieldEnabled {
		return ErrUnknownField
	}
	t.Enabled = checked
	return nil
}

// Patch is a partial product: nil pointers (and a nil ImagesURL slice) mean
// "field absent". Apply merges only present fields onto the template, so a
// field missing from the patch keeps its previous value. This preserves the
// original client's spread-merge seeding contract.
type Patch struct {
	ID          *string
	Title       *string
	Category    *string
	OriginPrice *string
	Price       *string
	Unit        *string
	Description *string
	Content     *string
	Enabled     *bool
	ImageURL    *string
	ImagesURL   []string
}

// Apply merges the present fields of the patch onto the template.
func (t *TemplateProduct) Apply(p Patch) {
	if p.ID != nil {
		t.ID = *p.ID
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.OriginPrice != nil {
		t.OriginPrice = *p.OriginPrice
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Unit != nil {
		t.Unit = *p.Unit
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Enabled != nil {
		t.Enabled = *p.Enabled
	}
	if p.ImageURL != nil {
		t.ImageURL = *p.ImageURL
	}
	if p.ImagesURL != nil {
		t.ImagesURL = append(ImageList(nil), p.ImagesURL...)
	}
}

// BlankPatch returns the initial template values with every field present,
// so applying it fully resets the working copy.
func BlankPatch() Patch {
	enabled := false
	return Patch{
		ID:          strptr(""),
		Title:       strptr(""),
		Category:    strptr(""),
		OriginPrice: strptr(""),
		Price:       strptr(""),
		Unit:        strptr(""),
		Description: strptr(""),
		Content:     strptr(""),
		Enabled:     &enabled,
		ImageURL:    strptr(""),
		ImagesURL:   []string{},
	}
}

// PatchOf converts a server record into a full patch, formatting numeric
// fields back into the raw strings the form edits.
func PatchOf(p catalog.Product) Patch {
	enabled := p.IsEnabled()
	images := p.ImagesURL
	if images == nil {
		images = []string{}
	}
	return Patch{
		ID:          strptr(p.ID),
		Title:       strptr(p.Title),
		Category:    strptr(p.Category),
		OriginPrice: strptr(formatNumber(p.OriginPrice)),
		Price:       strptr(formatNumber(p.Price)),
		Unit:        strptr(p.Unit),
		Description: strptr(p.Description),
		Content:     strptr(p.Content),
		Enabled:     &enabled,
		ImageURL:    strptr(p.ImageURL),
		ImagesURL:   append([]string(nil), images...),
	}
}

func strptr(v string) *string {
	return &v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
