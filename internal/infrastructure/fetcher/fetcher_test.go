package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulttube/pkg/errors"
)

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.jpg":
			w.Write([]byte("image-bytes"))
		case "/gone.jpg":
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	f := New(srv.Client())

	body, err := f.FetchURL(context.Background(), srv.URL+"/ok.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), body)

	_, err = f.FetchURL(context.Background(), srv.URL+"/gone.jpg")
	require.Error(t, err)
	var pe *errors.PipelineError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "fetch_error", pe.Code)
	assert.Contains(t, pe.Message, "404")
}

func TestFetchURLCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(srv.Client())
	_, err := f.FetchURL(ctx, srv.URL+"/slow.jpg")
	require.Error(t, err)
	var pe *errors.PipelineError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "fetch_error", pe.Code)
}

func TestFetchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thumb.png")
	require.NoError(t, os.WriteFile(path, []byte("local-bytes"), 0o644))

	f := New(nil)

	body, err := f.FetchFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("local-bytes"), body)

	// Source must survive the read untouched
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, again)

	_, err = f.FetchFile(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	var pe *errors.PipelineError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "fetch_error", pe.Code)
}
