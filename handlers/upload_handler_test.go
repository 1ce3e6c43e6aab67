package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, field, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	dir := t.TempDir()
	app := fiber.New()
	app.Post("/api/upload", NewUploadHandler(dir).UploadImage)

	t.Run("stores the file and returns its public URL", func(t *testing.T) {
		resp, err := app.Test(uploadRequest(t, "image", "lamp.PNG"), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))

		assert.True(t, strings.HasPrefix(body["url"], "/uploads/products/"))
		assert.True(t, strings.HasSuffix(body["url"], ".png"))

		stored, err := os.ReadDir(filepath.Join(dir, "products"))
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("rejects unsupported extensions", func(t *testing.T) {
		resp, err := app.Test(uploadRequest(t, "image", "clip.gif"), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects a missing image field", func(t *testing.T) {
		resp, err := app.Test(uploadRequest(t, "attachment", "lamp.png"), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
