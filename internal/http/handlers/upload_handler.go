package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "emunah/internal/log"
)

// UploadHandler stores product images on disk and hands back the public URL
// they are served under.
type UploadHandler struct {
	Dir string
}

const maxUploadBytes = 5 << 20

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func (h *UploadHandler) Image(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "No image file provided")
	}
	if fh.Size > maxUploadBytes {
		applog.Security(c, "upload.too_large", map[string]any{"size": fh.Size})
		return jsonError(c, fiber.StatusBadRequest, "Image must be 5MB or smaller")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		applog.Security(c, "upload.bad_type", map[string]any{"ext": ext})
		return jsonError(c, fiber.StatusBadRequest, "Only jpeg, jpg, png, gif and webp images are allowed")
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		applog.Error(c, "upload.mkdir.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to store image")
	}
	// Server-minted name: the client filename never touches the filesystem.
	name := uuid.NewString() + ext
	if err := c.SaveFile(fh, filepath.Join(h.Dir, name)); err != nil {
		applog.Error(c, "upload.save.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to store image")
	}

	applog.Audit(c, "upload.image", map[string]any{"file": name, "size": fh.Size})
	return c.JSON(fiber.Map{"url": "/uploads/" + name})
}
