package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/stashq/stashq-go/cache"
	"github.com/stashq/stashq-go/cli"
	"github.com/stashq/stashq-go/collection"
	"github.com/stashq/stashq-go/inifile"
	"github.com/stashq/stashq-go/logging"
	"github.com/stashq/stashq-go/transport"
)

// ConfigFile is the profile the CLI reads service settings from.
const ConfigFile = "stashq.ini"

// Config holds the resolved CLI configuration.
type Config struct {
	URL       string
	Token     string
	Timeout   time.Duration
	CachePath string
	Debug     bool
}

// loadConfig resolves configuration from stashq.ini (working directory
// first, then $HOME/.config/stashq/) with STASHQ_URL / STASHQ_TOKEN
// environment overrides.
func loadConfig() Config {
	cfg := Config{Timeout: 30 * time.Second}

	for _, path := range configPaths() {
		ini, err := inifile.ParseFile(path)
		if err != nil {
			continue
		}
		cfg.URL = ini.Get("service", "url")
		cfg.Token = ini.Get("service", "token")
		cfg.Timeout = time.Duration(ini.GetInt("service", "timeout_seconds", 30)) * time.Second
		cfg.CachePath = ini.Get("cache", "path")
		cfg.Debug = ini.GetBool("service", "debug", false)
		break
	}

	if url := os.Getenv("STASHQ_URL"); url != "" {
		cfg.URL = url
	}
	if token := os.Getenv("STASHQ_TOKEN"); token != "" {
		cfg.Token = token
	}

	if cfg.URL == "" {
		cli.Fatal("no service URL configured: set STASHQ_URL or add [service] url to " + ConfigFile)
	}
	return cfg
}

func configPaths() []string {
	paths := []string{ConfigFile}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "stashq", ConfigFile))
	}
	return paths
}

// newClient builds the client stack from the resolved configuration:
// HTTP transport, optional sqlite response cache, optional debug logging.
func newClient(cfg Config) *collection.Client {
	t, err := transport.New(cfg.URL,
		transport.WithToken(cfg.Token),
		transport.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		cli.FatalErr("configuring transport", err)
	}

	var tr collection.Transport = t
	if cfg.CachePath != "" {
		store, err := cache.Open(cfg.CachePath)
		if err != nil {
			cli.FatalErr("opening cache", err)
		}
		tr = cache.Decorate(store, tr)
	}
	if cfg.Debug {
		tr = logging.Decorate(logging.DevLogger, tr)
	}

	return collection.NewClient(tr)
}
