package protocal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sopeal/AskYourFeed/configs"
	"github.com/sopeal/AskYourFeed/internal/adapters/input/cli"
	"github.com/sopeal/AskYourFeed/internal/adapters/output/api"
	"github.com/sopeal/AskYourFeed/internal/adapters/output/file"
	"github.com/sopeal/AskYourFeed/internal/adapters/output/memory"
	"github.com/sopeal/AskYourFeed/internal/adapters/output/sqlitecache"
	"github.com/sopeal/AskYourFeed/internal/application"
	"github.com/sopeal/AskYourFeed/internal/ports/output"
	gormdriver "github.com/sopeal/AskYourFeed/pkg/database_driver/gorm"
	"github.com/sopeal/AskYourFeed/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Run func - Composition root: wires the hexagonal layers and executes the
// command tree.
func Run() error {
	configs.InitViper("./configs", os.Getenv("APP_ENV"))
	cfg := configs.GetViper()

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		// Keep adapter chatter away from command output.
		logrus.SetLevel(logrus.WarnLevel)
	}

	// Output adapter (session store)
	var sessions output.SessionStore
	if cfg.Session.InMemory {
		sessions = memory.NewMemorySessionStore()
	} else {
		sessions = file.NewFileSessionStore(resolvePath(cfg.Session.Path, "session.json"))
	}

	// Output adapter (backend API client)
	apiClient, err := api.NewClient(cfg.API, sessions)
	if err != nil {
		return err
	}

	// Output adapter (local QA detail cache); the cache is an optimization,
	// so a broken local database degrades to uncached reads.
	var cache output.DetailCache
	db, err := gormdriver.ConnectToSQLite(resolvePath(cfg.Cache.Path, "cache.db"))
	if err != nil {
		logrus.Warnf("Local cache unavailable, details will not be cached: %v", err)
	} else {
		defer gormdriver.DisconnectSQLite(db.SQLite)
		cache, err = sqlitecache.NewQACache(db.SQLite, time.Duration(cfg.Cache.TTL)*time.Second)
		if err != nil {
			logrus.Warnf("Local cache unavailable, details will not be cached: %v", err)
			cache = nil
		}
	}

	// Application services (use cases)
	validate := validator.New()
	authSrv := application.NewAuthService(apiClient, sessions, validate)
	qaSrv := application.NewQASession(apiClient, validate)
	historySrv := application.NewHistoryPager(apiClient, cache, cfg.History.Limit)
	syncSrv := application.NewSyncStatusService(apiClient, time.Duration(cfg.Sync.Interval)*time.Second)
	defer syncSrv.Stop()

	// Input adapter (CLI)
	rootCmd := cli.New(authSrv, qaSrv, historySrv, syncSrv)
	return rootCmd.Execute()
}

// resolvePath expands an empty configured path to the default location under
// the user's home directory.
func resolvePath(configured, name string) string {
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".askyourfeed", name)
}
