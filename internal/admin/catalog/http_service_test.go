package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexfield/catalog-admin/internal/admin/catalog"
)

func TestHTTPServiceList(t *testing.T) {
	t.Parallel()

	var receivedAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/hexshop/admin/products", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		receivedAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"products": []catalog.Product{
				{ID: "p-1", Title: "Mountain Tea", Category: "tea", OriginPrice: 120, Price: 100, Unit: "bag", Enabled: 1},
				{ID: "p-2", Title: "Drip Coffee", Category: "coffee", OriginPrice: 300, Price: 250, Unit: "box"},
			},
		})
	}))
	t.Cleanup(ts.Close)

	svc, err := catalog.NewHTTPService(ts.URL, "hexshop", ts.Client())
	require.NoError(t, err)

	products, err := svc.List(context.Background(), "test-token")
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", receivedAuth)
	require.Len(t, products, 2)
	require.Equal(t, "Mountain Tea", products[0].Title)
	require.True(t, products[0].IsEnabled())
	require.False(t, products[1].IsEnabled())
}

func TestHTTPServiceCreateWrapsPayload(t *testing.T) {
	t.Parallel()

	var body struct {
		Data catalog.Product `json:"data"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/hexshop/admin/product", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		defer r.Body.Close()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "created"})
	}))
	t.Cleanup(ts.Close)

	svc, err := catalog.NewHTTPService(ts.URL, "hexshop", ts.Client())
	require.NoError(t, err)

	err = svc.Create(context.Background(), "token", catalog.Product{
		Title:     "Oolong",
		Price:     180,
		Enabled:   1,
		ImagesURL: []string{"https://img.example/1.png"},
	})
	require.NoError(t, err)
	require.Equal(t, "Oolong", body.Data.Title)
	require.Equal(t, float64(180), body.Data.Price)
	require.Equal(t, 1, body.Data.Enabled)
}

func TestHTTPServiceUpdateKeyedByID(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/hexshop/admin/product/p-9", r.URL.Path)
		require.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	svc, err := catalog.NewHTTPService(ts.URL, "hexshop", ts.Client())
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), "token", catalog.Product{ID: "p-9", Title: "Renamed"}))
	require.Error(t, svc.Update(context.Background(), "token", catalog.Product{Title: "missing id"}))
}

func TestHTTPServiceDelete(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/hexshop/admin/product/p-5", r.URL.Path)
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	svc, err := catalog.NewHTTPService(ts.URL, "hexshop", ts.Client())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "token", "p-5"))
}

func TestHTTPServiceSurfacesBackendMessage(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "title is required"})
	}))
	t.Cleanup(ts.Close)

	svc, err := catalog.NewHTTPService(ts.URL, "hexshop", ts.Client())
	require.NoError(t, err)

	err = svc.Create(context.Background(), "token", catalog.Product{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "title is required")
}

func TestHTTPServiceNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(ts.Close)

	svc, err := catalog.NewHTTPService(ts.URL, "hexshop", ts.Client())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "token", "ghost")
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}
