package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/attachlab/ecr/internal/api"
	dbstore "github.com/attachlab/ecr/internal/db"
	"github.com/attachlab/ecr/internal/middleware"
	"github.com/attachlab/ecr/internal/utils"
)

func main() {
	addr := utils.SafeEnv("ECR_ADDR", ":8080")
	commit := os.Getenv("ECR_COMMIT")
	buildTime := os.Getenv("ECR_BUILD_TIME")

	store, err := openStore()
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	var adminHash []byte
	if pw := os.Getenv("ECR_ADMIN_PASSWORD"); pw != "" {
		adminHash, err = bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("admin password hash error: %v", err)
		}
	} else {
		log.Printf("ECR_ADMIN_PASSWORD not set; admin surface disabled")
	}

	mux := http.NewServeMux()
	api.NewRouter(store, adminHash).Register(mux)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       utils.T(locale, "service.name"),
			"locale":     locale,
			"msg":        utils.T(locale, "health.ok"),
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	// Serve the mini-program web build when a static dir is configured.
	if staticDir := os.Getenv("ECR_STATIC_DIR"); staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	handler := middleware.SecureHeaders(middleware.CORS(middleware.NoStore(middleware.Locale(middleware.WithAuth(mux)))))

	log.Printf("ECR assessment server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// openStore picks SQLite when ECR_SQLITE_PATH is set, the in-memory store
// otherwise. Both preserve the same session semantics.
func openStore() (api.Store, error) {
	sqlitePath := os.Getenv("ECR_SQLITE_PATH")
	if sqlitePath == "" {
		log.Printf("ECR_SQLITE_PATH not set; using in-memory store")
		return api.NewMemoryStore(), nil
	}
	if err := os.MkdirAll(filepath.Dir(sqlitePath), 0o755); err != nil {
		return nil, err
	}
	busyTimeout := utils.EnvInt("ECR_SQLITE_BUSY_TIMEOUT_MS", 5000)
	dsn := fmt.Sprintf("file:%s?cache=shared&_busy_timeout=%d", filepath.ToSlash(sqlitePath), busyTimeout)
	sqliteDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := dbstore.RunMigrations(sqliteDB, os.Getenv("ECR_MIGRATIONS_DIR")); err != nil {
		return nil, err
	}
	log.Printf("using sqlite store at %s", sqlitePath)
	return dbstore.NewStore(sqliteDB)
}
