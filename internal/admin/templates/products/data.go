package products

import (
	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	"github.com/hexfield/catalog-admin/internal/admin/editor"
	"github.com/hexfield/catalog-admin/internal/admin/templates/helpers"
)

// Endpoints collects the routes the product page and its fragments post to.
type Endpoints struct {
	Table        string
	ModalOpen    string
	ModalClose   string
	ModalField   string
	ModalImages  string
	ModalConfirm string
}

// BuildEndpoints resolves the product routes under the admin base path.
func BuildEndpoints(basePath string) Endpoints {
	return Endpoints{
		Table:        helpers.JoinBase(basePath, "/products/table"),
		ModalOpen:    helpers.JoinBase(basePath, "/products/modal/open"),
		ModalClose:   helpers.JoinBase(basePath, "/products/modal/close"),
		ModalField:   helpers.JoinBase(basePath, "/products/modal/field"),
		ModalImages:  helpers.JoinBase(basePath, "/products/modal/images"),
		ModalConfirm: helpers.JoinBase(basePath, "/products/modal/confirm"),
	}
}

// PageData represents the full product page payload.
type PageData struct {
	Title     string
	Table     TableData
	Modal     *ModalData
	Endpoints Endpoints
}

// TableData holds the rows fragment payload.
type TableData struct {
	Rows      []Row
	Error     string
	Endpoints Endpoints
}

// Row is the rendered representation of one catalog entry.
type Row struct {
	ID          string
	Title       string
	Category    string
	OriginPrice string
	Price       string
	Enabled     bool
}

// ModalData holds the modal fragment payload.
type ModalData struct {
	Open      bool
	Mode      editor.Mode
	Template  editor.TemplateProduct
	Error     string
	CSRFToken string
	Endpoints Endpoints
}

// BuildPageData prepares the SSR payload for the product page.
func BuildPageData(basePath string, list []catalog.Product, listErr error) PageData {
	endpoints := BuildEndpoints(basePath)
	return PageData{
		Title:     "Products",
		Table:     BuildTableData(basePath, list, listErr),
		Endpoints: endpoints,
	}
}

// BuildTableData prepares the rows fragment payload.
func BuildTableData(basePath string, list []catalog.Product, listErr error) TableData {
	data := TableData{Endpoints: BuildEndpoints(basePath)}
	if listErr != nil {
		data.Error = "Product list could not be loaded."
		return data
	}
	data.Rows = make([]Row, 0, len(list))
	for _, p := range list {
		data.Rows = append(data.Rows, Row{
			ID:          p.ID,
			Title:       p.Title,
			Category:    p.Category,
			OriginPrice: helpers.Price(p.OriginPrice),
			Price:       helpers.Price(p.Price),
			Enabled:     p.IsEnabled(),
		})
	}
	return data
}

// BuildModalData prepares the modal fragment payload.
func BuildModalData(basePath string, open bool, mode editor.Mode, tmpl editor.TemplateProduct, csrfToken string) ModalData {
	return ModalData{
		Open:      open,
		Mode:      mode,
		Template:  tmpl,
		CSRFToken: csrfToken,
		Endpoints: BuildEndpoints(basePath),
	}
}
