package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	"github.com/hexfield/catalog-admin/internal/admin/testutil"
)

func TestProductsRedirectsWithoutAuth(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(ts.URL + "/admin/products")
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := newClient(t)

	csrf := loginPageCSRF(t, client, ts.URL)

	resp, err := client.PostForm(ts.URL+"/admin/login", url.Values{
		"username":   {testutil.DefaultAccount},
		"password":   {"wrong"},
		"csrf_token": {csrf},
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	doc := parseBody(t, resp.Body)
	require.Contains(t, doc.Find("[data-login-error]").Text(), "Invalid email or password")
}

func TestLoginThenEditProductFlow(t *testing.T) {
	t.Parallel()

	svc := catalog.NewStaticService(catalog.Product{
		Title:       "Drip Coffee",
		Category:    "coffee",
		OriginPrice: 300,
		Price:       249.5,
		Enabled:     1,
	})
	ts := testutil.NewServer(t, testutil.WithCatalogService(svc))
	client := newClient(t)

	signIn(t, client, ts.URL)

	// The landing page lists the seeded product.
	resp, err := client.Get(ts.URL + "/admin/products")
	require.NoError(t, err)
	page := parseBody(t, resp.Body)
	resp.Body.Close()
	require.Equal(t, 1, page.Find("[data-product-row]").Length())

	productID := page.Find("[data-product-row]").AttrOr("data-product-id", "")
	require.NotEmpty(t, productID)
	csrf := pageCSRF(t, page)

	// Open the edit modal; the working copy mirrors the server record.
	modal := postFragment(t, client, ts.URL+"/admin/products/modal/open", csrf, url.Values{
		"mode": {"edit"},
		"id":   {productID},
	})
	require.Equal(t, "edit", modal.Find("#product-modal").AttrOr("data-mode", ""))
	require.Equal(t, "Drip Coffee", modal.Find(`[data-field="title"]`).AttrOr("value", ""))
	require.Equal(t, "false", modal.Find("#product-modal").AttrOr("data-bs-keyboard", ""))

	// Edit two fields, then confirm.
	postNoContent(t, client, ts.URL+"/admin/products/modal/field", csrf, url.Values{
		"name":  {"title"},
		"value": {"Pour Over"},
	})
	postNoContent(t, client, ts.URL+"/admin/products/modal/field", csrf, url.Values{
		"name":  {"price"},
		"value": {"199"},
	})

	resp = postRaw(t, client, ts.URL+"/admin/products/modal/confirm", csrf, nil)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("HX-Trigger"), "catalog-changed")
	require.NotContains(t, string(body), "product-modal", "confirm closes the modal")

	// The backend record carries the coerced values.
	list, err := svc.List(context.Background(), "ignored")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Pour Over", list[0].Title)
	require.Equal(t, float64(199), list[0].Price)
}

func TestImageSlotRoundTrip(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := newClient(t)
	signIn(t, client, ts.URL)

	resp, err := client.Get(ts.URL + "/admin/products")
	require.NoError(t, err)
	page := parseBody(t, resp.Body)
	resp.Body.Close()
	csrf := pageCSRF(t, page)

	modal := postFragment(t, client, ts.URL+"/admin/products/modal/open", csrf, url.Values{
		"mode": {"create"},
	})
	require.Equal(t, 1, modal.Find("[data-images-add]").Length(), "blank working copy offers the add control")

	images := postFragment(t, client, ts.URL+"/admin/products/modal/images/add", csrf, nil)
	require.Equal(t, 1, images.Find("[data-image-slot]").Length())

	// Filling the last slot grows the list.
	images = postFragment(t, client, ts.URL+"/admin/products/modal/images/0", csrf, url.Values{
		"value": {"https://img/1"},
	})
	slots := images.Find("[data-image-slot]")
	require.Equal(t, 2, slots.Length())
	require.Equal(t, "https://img/1", slots.First().AttrOr("value", ""))
	require.Equal(t, "", slots.Last().AttrOr("value", ""))

	// Clearing the slot shrinks it back.
	images = postFragment(t, client, ts.URL+"/admin/products/modal/images/1", csrf, url.Values{
		"value": {""},
	})
	require.Equal(t, 1, images.Find("[data-image-slot]").Length())

	// A whitespace-only value still counts as filled and grows the list.
	images = postFragment(t, client, ts.URL+"/admin/products/modal/images/0", csrf, url.Values{
		"value": {" "},
	})
	slots = images.Find("[data-image-slot]")
	require.Equal(t, 2, slots.Length())
	require.Equal(t, " ", slots.First().AttrOr("value", ""))
}

func TestLogoutClearsAccess(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := newClient(t)
	signIn(t, client, ts.URL)

	resp, err := client.Get(ts.URL + "/admin/products")
	require.NoError(t, err)
	page := parseBody(t, resp.Body)
	resp.Body.Close()
	csrf := pageCSRF(t, page)

	resp = postRaw(t, client, ts.URL+"/admin/logout", csrf, nil)
	resp.Body.Close()

	noRedirect := &http.Client{
		Jar: client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err = noRedirect.Get(ts.URL + "/admin/products")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func loginPageCSRF(t *testing.T, client *http.Client, baseURL string) string {
	t.Helper()

	resp, err := client.Get(baseURL + "/admin/login")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := parseBody(t, resp.Body)
	csrf, ok := doc.Find(`input[name="csrf_token"]`).Attr("value")
	require.True(t, ok, "login form must carry the csrf token")
	return csrf
}

func signIn(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	csrf := loginPageCSRF(t, client, baseURL)
	resp, err := client.PostForm(baseURL+"/admin/login", url.Values{
		"username":   {testutil.DefaultAccount},
		"password":   {testutil.DefaultPassword},
		"csrf_token": {csrf},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login should land on the products page")
}

// pageCSRF reads the token htmx attaches to every request via the body tag.
func pageCSRF(t *testing.T, doc *goquery.Document) string {
	t.Helper()

	raw := doc.Find("body").AttrOr("hx-headers", "")
	require.NotEmpty(t, raw)
	var headers map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &headers))
	require.NotEmpty(t, headers["X-CSRF-Token"])
	return headers["X-CSRF-Token"]
}

func postRaw(t *testing.T, client *http.Client, target, csrf string, form url.Values) *http.Response {
	t.Helper()

	body := ""
	if form != nil {
		body = form.Encode()
	}
	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("X-CSRF-Token", csrf)

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func postFragment(t *testing.T, client *http.Client, target, csrf string, form url.Values) *goquery.Document {
	t.Helper()

	resp := postRaw(t, client, target, csrf, form)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return parseBody(t, resp.Body)
}

func postNoContent(t *testing.T, client *http.Client, target, csrf string, form url.Values) {
	t.Helper()

	resp := postRaw(t, client, target, csrf, form)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func parseBody(t *testing.T, body io.Reader) *goquery.Document {
	t.Helper()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	return testutil.ParseHTML(t, raw)
}
