package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"photoshare-backend/internal/services"
	"photoshare-backend/internal/store/memstore"
	"photoshare-backend/internal/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the handlers against an in-memory store and a temporary
// upload directory, mirroring the route setup in app.Run.
func newTestApp(t *testing.T) (*fiber.App, *memstore.Store, *uploads.Store) {
	t.Helper()

	st := memstore.New()
	up, err := uploads.New(t.TempDir())
	require.NoError(t, err)

	userService := services.NewUserService(st)
	photoService := services.NewPhotoService(st)

	app := fiber.New()
	app.Get("/users", ListUsersHandler(userService))
	app.Post("/users", CreateUserHandler(userService))
	app.Get("/photos", ListPhotosHandler(photoService))
	app.Post("/photos", UploadPhotoHandler(photoService, up))
	app.Static("/uploads", up.Dir())

	return app, st, up
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// multipartPart describes one part of a test upload body, in order.
type multipartPart struct {
	field    string
	filename string // empty for a plain text field
	value    string
}

func doMultipart(t *testing.T, app *fiber.App, target string, parts []multipartPart) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		if p.filename == "" {
			require.NoError(t, w.WriteField(p.field, p.value))
			continue
		}
		fw, err := w.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(p.value))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}
