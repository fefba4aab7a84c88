// Package config loads CLI client configuration from flags and environment.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/MemberTrackr/MT-Backend/internal/client/session"
)

type Config struct {
	// ServerAddr is the base URL of the MemberTrackr API.
	ServerAddr string
	// SessionFile is where the token + user pair is persisted.
	SessionFile string
}

const defaultServerAddr = "http://localhost:5000"

// LoadConfig resolves configuration with flags taking precedence over
// environment variables (MEMBERTRACKR_SERVER, MEMBERTRACKR_SESSION_FILE).
func LoadConfig() *Config {
	cfg := &Config{}

	serverDefault := os.Getenv("MEMBERTRACKR_SERVER")
	if serverDefault == "" {
		serverDefault = defaultServerAddr
	}

	sessionDefault := os.Getenv("MEMBERTRACKR_SESSION_FILE")
	if sessionDefault == "" {
		path, err := session.DefaultPath()
		if err != nil {
			log.Fatalf("cannot resolve session file location: %v", err)
		}
		sessionDefault = path
	}

	flag.StringVar(&cfg.ServerAddr, "a", serverDefault, "server base URL")
	flag.StringVar(&cfg.SessionFile, "s", sessionDefault, "session file path")
	flag.Parse()

	return cfg
}
