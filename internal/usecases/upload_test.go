package usecases

import (
	"bytes"
	"context"
	"image/color"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulttube/pkg/errors"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("thumbnail", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["thumbnail"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(64, 36, color.NRGBA{A: 255}), imaging.PNG))
	return buf.Bytes()
}

func TestProcessThumbnail(t *testing.T) {
	tempDir := t.TempDir()
	deriver := &stubDeriver{}
	svc := NewUploadService(tempDir, 5*1024*1024, deriver)

	resp, err := svc.ProcessThumbnail(context.Background(), makeFileHeader(t, "cover.png", pngBytes(t)))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "/uploads/thumbnail-1-2-medium.webp", resp.URL)
	assert.Equal(t, "thumbnail-1-2-medium.webp", resp.Filename)
	require.Len(t, deriver.calls, 1)

	// The staged original is removed once derivation succeeds
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessThumbnailRejectsOversizedFile(t *testing.T) {
	deriver := &stubDeriver{}
	svc := NewUploadService(t.TempDir(), 16, deriver)

	_, err := svc.ProcessThumbnail(context.Background(), makeFileHeader(t, "cover.png", pngBytes(t)))
	require.Error(t, err)

	var pe *errors.PipelineError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "validation_error", pe.Code)
	assert.Empty(t, deriver.calls, "rejected upload must never reach derivation")
}

func TestProcessThumbnailRejectsBadExtension(t *testing.T) {
	deriver := &stubDeriver{}
	svc := NewUploadService(t.TempDir(), 5*1024*1024, deriver)

	_, err := svc.ProcessThumbnail(context.Background(), makeFileHeader(t, "cover.svg", pngBytes(t)))
	require.Error(t, err)

	var pe *errors.PipelineError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "validation_error", pe.Code)
	assert.Empty(t, deriver.calls)
}

func TestProcessThumbnailRejectsSpoofedContent(t *testing.T) {
	deriver := &stubDeriver{}
	svc := NewUploadService(t.TempDir(), 5*1024*1024, deriver)

	// Right extension, wrong bytes: the sniff must catch it
	_, err := svc.ProcessThumbnail(context.Background(), makeFileHeader(t, "cover.png", []byte("<html>nope</html>")))
	require.Error(t, err)

	var pe *errors.PipelineError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "validation_error", pe.Code)
	assert.Empty(t, deriver.calls)
}
