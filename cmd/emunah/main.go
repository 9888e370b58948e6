package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"emunah/internal/config"
	"emunah/internal/http/handlers"
	applog "emunah/internal/log"
	"emunah/internal/store"
)

func openStore(cfg config.Config) (store.Storage, error) {
	switch cfg.DBDriver {
	case "memory":
		return store.NewMemory(), nil
	case "sqlite", "postgres":
		return store.OpenSQL(cfg.DBDriver, cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
}

func main() {
	cfg := config.Load(os.Args[1:])

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := store.Seed(st); err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
		},
	})
	// Image uploads top out at 5 MiB, leave headroom for multipart framing
	app.Server().MaxRequestBodySize = 6 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/uploads/")
		},
	}))

	// ---------- Uploaded images ----------
	uploadDir := cfg.UploadDir
	if !filepath.IsAbs(uploadDir) {
		if abs, err := filepath.Abs(uploadDir); err == nil {
			uploadDir = abs
		}
	}
	log.Printf("[static] /uploads -> %s", uploadDir)

	// Guarded to avoid traversal
	app.Get("/uploads/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		// Block encoded traversal attempts as well as raw .. or null bytes
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "uploads.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "uploads.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		full := filepath.Join(uploadDir, clean)
		return c.SendFile(full, true)
	})

	// ---------- API ----------
	deps := handlers.NewDeps(st, cfg)
	handlers.Register(app, deps)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
