package partials

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
)

func TestSidebarHighlightsActiveRoute(t *testing.T) {
	t.Parallel()

	ctx := requestContext(t, "/admin/products/modal/open", "Development")

	var buf bytes.Buffer
	require.NoError(t, Sidebar(DefaultNav("/admin")).Render(ctx, &buf))

	doc := parseHTML(t, buf.Bytes())

	link := doc.Find(`a[href="/admin/products"]`)
	require.Equal(t, 1, link.Length(), "products link should render")
	require.Equal(t, "page", link.AttrOr("aria-current", ""), "prefix match highlights nested routes")
	require.Contains(t, link.AttrOr("class", ""), "bg-slate-900", "active link should use highlighted class")
}

func TestSidebarInactiveRoute(t *testing.T) {
	t.Parallel()

	ctx := requestContext(t, "/admin/login", "Development")

	var buf bytes.Buffer
	require.NoError(t, Sidebar(DefaultNav("/admin")).Render(ctx, &buf))

	doc := parseHTML(t, buf.Bytes())

	link := doc.Find(`a[href="/admin/products"]`)
	require.Equal(t, 1, link.Length())
	require.Equal(t, "", link.AttrOr("aria-current", ""))
}

func requestContext(t *testing.T, requestPath, environment string) context.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, requestPath, nil)
	rec := httptest.NewRecorder()

	var ctx context.Context
	handler := middleware.RequestInfoMiddleware("/admin")(middleware.Environment(environment)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	})))
	handler.ServeHTTP(rec, req)

	require.NotNil(t, ctx, "middleware stack must provide context")
	return ctx
}

func parseHTML(t *testing.T, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}
