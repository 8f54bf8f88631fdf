package auth_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	authtpl "github.com/hexfield/catalog-admin/internal/admin/templates/auth"
	"github.com/hexfield/catalog-admin/internal/admin/testutil"
)

func TestLoginFormRendersFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := authtpl.LoginForm(authtpl.LoginPageData{
		Username:  "operator@example.com",
		Next:      "/admin/products",
		LoginPath: "/admin/login",
		CSRFToken: "tok-123",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc := testutil.ParseHTML(t, buf.Bytes())

	form := doc.Find("[data-login-form]")
	require.Equal(t, "/admin/login", form.AttrOr("action", ""))
	require.Equal(t, "tok-123", form.Find(`input[name="csrf_token"]`).AttrOr("value", ""))
	require.Equal(t, "/admin/products", form.Find(`input[name="next"]`).AttrOr("value", ""))
	require.Equal(t, "operator@example.com", form.Find(`input[name="username"]`).AttrOr("value", ""))
	require.Equal(t, 1, form.Find(`input[type="password"]`).Length())
	require.Equal(t, 0, doc.Find("[data-login-error]").Length())
}

func TestLoginFormShowsErrorAndMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := authtpl.LoginForm(authtpl.LoginPageData{
		Error:     "Invalid email or password.",
		Message:   "You have been signed out.",
		LoginPath: "/admin/login",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc := testutil.ParseHTML(t, buf.Bytes())
	require.Contains(t, doc.Find("[data-login-error]").Text(), "Invalid email or password")
	require.Contains(t, doc.Find("[data-login-message]").Text(), "signed out")
}
