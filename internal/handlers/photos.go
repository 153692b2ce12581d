package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"photoshare-backend/internal/logger"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/uploads"

	"github.com/gofiber/fiber/v2"
)

// ListPhotosHandler returns the photo feed, newest first
func ListPhotosHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		feed, err := photoService.Feed(c.Context())
		if err != nil {
			logger.Log.Errorw("list photos failed", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch photos"})
		}
		return c.JSON(feed)
	}
}

// UploadPhotoHandler stores the file from a multipart body and records the
// photo. The body may carry a "message" text field before or after the file
// part; the first file part wins and any further file parts are ignored.
func UploadPhotoHandler(photoService *services.PhotoService, uploadStore *uploads.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("userId")
		if userID == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "userId required"})
		}

		mr, err := multipartReader(c)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "multipart body required"})
		}

		var message, filename string
		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "malformed multipart body"})
			}

			switch {
			case part.FileName() == "" && part.FormName() == "message":
				value, err := io.ReadAll(part)
				if err != nil {
					_ = part.Close()
					return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "malformed multipart body"})
				}
				message = string(value)
			case part.FileName() != "" && filename == "":
				filename, err = uploadStore.Save(part.FileName(), part)
				if err != nil {
					_ = part.Close()
					logger.Log.Errorw("store upload failed", "error", err)
					return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
				}
			}
			_ = part.Close()
		}

		if filename == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "file missing"})
		}

		result, err := photoService.Add(c.Context(), userID, filename, message)
		if err != nil {
			// Try to cleanup file if the record insert fails
			_ = uploadStore.Remove(filename)
			if errors.Is(err, services.ErrValidation) {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
			logger.Log.Errorw("record photo failed", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(result)
	}
}

// multipartReader builds a streaming part reader over the request body.
// Fiber's parsed-form helpers lose the part order, which matters here.
func multipartReader(c *fiber.Ctx) (*multipart.Reader, error) {
	mediaType, params, err := mime.ParseMediaType(c.Get(fiber.HeaderContentType))
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mediaType, "multipart/") {
		return nil, errors.New("not a multipart request")
	}
	boundary, ok := params["boundary"]
	if !ok {
		return nil, errors.New("missing multipart boundary")
	}
	return multipart.NewReader(bytes.NewReader(c.Body()), boundary), nil
}
