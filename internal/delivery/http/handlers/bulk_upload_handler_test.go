package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulttube/internal/domain/dto"
)

type stubIngest struct {
	entries []dto.VideoEntry
	userID  string
	result  *dto.IngestionResult
}

func (s *stubIngest) Ingest(_ context.Context, entries []dto.VideoEntry, userID string) *dto.IngestionResult {
	s.entries = entries
	s.userID = userID
	return s.result
}

func newBulkApp(stub *stubIngest) *fiber.App {
	app := fiber.New()
	handler := NewBulkUploadHandler(stub)
	app.Post("/bulk-upload/json", func(c *fiber.Ctx) error {
		c.Locals("userID", "admin-1")
		return c.Next()
	}, handler.BulkUploadJSON)
	return app
}

func TestBulkUploadJSON_MalformedBody(t *testing.T) {
	app := newBulkApp(&stubIngest{})

	req := httptest.NewRequest("POST", "/bulk-upload/json", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Expected an array of videos")
}

func TestBulkUploadJSON_EmptyBatch(t *testing.T) {
	stub := &stubIngest{}
	app := newBulkApp(stub)

	req := httptest.NewRequest("POST", "/bulk-upload/json", bytes.NewBufferString(`{"videos":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, stub.entries, "service must not run for an empty batch")
}

func TestBulkUploadJSON_PartialFailure(t *testing.T) {
	stub := &stubIngest{result: &dto.IngestionResult{
		Successful: 1,
		Failed:     1,
		Errors: []dto.EntryError{
			{Index: 1, Title: "Broken", Error: "fetch_error: status 404"},
		},
	}}
	app := newBulkApp(stub)

	payload := `{"videos":[
		{"title":"Good","images":["https://cdn.example.com/a.jpg"],"downloads":[{"name":"720p","link":"https://dl.example.com/a"}]},
		{"title":"Broken","images":["https://cdn.example.com/b.jpg"],"downloads":[{"name":"720p","link":"https://dl.example.com/b"}]}
	]}`
	req := httptest.NewRequest("POST", "/bulk-upload/json", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "per-entry failures still answer 200")

	var out dto.BulkUploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, 1, out.Results.Successful)
	assert.Equal(t, 1, out.Results.Failed)
	require.Len(t, out.Results.Errors, 1)
	assert.Equal(t, 1, out.Results.Errors[0].Index)

	assert.Len(t, stub.entries, 2)
	assert.Equal(t, "admin-1", stub.userID)
}

func TestBulkUploadJSON_AllSucceeded(t *testing.T) {
	stub := &stubIngest{result: &dto.IngestionResult{Successful: 2, Errors: []dto.EntryError{}}}
	app := newBulkApp(stub)

	payload := `{"videos":[
		{"title":"One","images":["https://cdn.example.com/1.jpg"],"downloads":[{"name":"hd","link":"https://dl.example.com/1"}]},
		{"title":"Two","images":["https://cdn.example.com/2.jpg"],"downloads":[{"name":"hd","link":"https://dl.example.com/2"}]}
	]}`
	req := httptest.NewRequest("POST", "/bulk-upload/json", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.BulkUploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Empty(t, out.Results.Errors)
}
