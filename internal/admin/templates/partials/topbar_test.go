package partials

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
)

func TestTopbarRendersForSignedInOperator(t *testing.T) {
	t.Parallel()

	ctx := requestContext(t, "/admin/products", "Staging")
	ctx = contextWithIdentity(ctx, "operator@example.com", "token-1")

	doc := renderTopbar(t, ctx)

	badge := doc.Find("[data-environment-badge] span[aria-hidden='true']")
	require.Equal(t, 1, badge.Length(), "environment badge should render")
	require.Equal(t, "STG", strings.TrimSpace(badge.Text()), "staging environment should render STG badge")

	userMenu := doc.Find("[data-user-menu]")
	require.Equal(t, 1, userMenu.Length(), "user menu should render")
	require.Contains(t, userMenu.Text(), "operator@example.com")
	require.Equal(t, "/admin/logout", doc.Find("[data-user-menu-logout]").AttrOr("action", ""), "logout form should post to logout route")
	require.Equal(t, 1, doc.Find(`[data-user-menu-logout] input[name="csrf_token"]`).Length(), "logout form should include CSRF field")
}

func TestTopbarHidesUserMenuWhenSignedOut(t *testing.T) {
	t.Parallel()

	ctx := requestContext(t, "/admin/login", "Development")

	doc := renderTopbar(t, ctx)

	badge := doc.Find("[data-environment-badge] span[aria-hidden='true']")
	require.Equal(t, "DEV", strings.TrimSpace(badge.Text()))
	require.Equal(t, 0, doc.Find("[data-user-menu]").Length(), "user menu must be hidden without a credential")
}

func contextWithIdentity(ctx context.Context, account, token string) context.Context {
	return middleware.ContextWithIdentity(ctx, &middleware.Identity{Account: account, Token: token})
}

func renderTopbar(t *testing.T, ctx context.Context) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, TopbarActions().Render(ctx, &buf), "topbar must render without error")

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err, "html must parse")
	return doc
}
