package drive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Get(t *testing.T) {
	t.Run("resolves_file", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/internal/files/file-1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"file-1","ownerId":"user-1","url":"https://cdn.example/file-1.png"}`))
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		f, err := c.Get(context.Background(), "file-1")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", f.OwnerID)
		assert.Equal(t, "https://cdn.example/file-1.png", f.URL)
	})

	t.Run("missing_file_is_nil_nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		f, err := c.Get(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, f)
	})
}
