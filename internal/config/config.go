package config

import (
	"log"
	"os"

	flag "github.com/spf13/pflag"
)

type Config struct {
	Port      string
	DBDriver  string // memory | sqlite | postgres
	DBDSN     string
	UploadDir string
	LogFile   string
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment, then lets command-line
// flags override it.
func Load(args []string) Config {
	cfg := Config{
		Port:      envOr("PORT", "8080"),
		DBDriver:  envOr("DB_DRIVER", "sqlite"),
		DBDSN:     envOr("DB_DSN", "emunah.db"),
		UploadDir: envOr("UPLOAD_DIR", "./uploads"),
		LogFile:   envOr("LOG_FILE", "./emunah.log"),
	}

	fs := flag.NewFlagSet("emunah", flag.ExitOnError)
	fs.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "store backend: memory, sqlite or postgres")
	fs.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "database DSN (ignored for the memory backend)")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "directory for uploaded product images")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log sink in addition to stdout; empty disables")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_DSN=%s UPLOAD_DIR=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDriver, cfg.DBDSN, cfg.UploadDir, cfg.LogFile)
	return cfg
}
