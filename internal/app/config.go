package app

import (
	"errors"
	"fmt"
	"net/url"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SeedPaths []string // hcl files or directories with initial cell contents

	// ListenPort serves the grid over Socket.IO when positive.
	ListenPort int
	// Connect is the URL of a grid server to edit remotely. Mutually
	// exclusive with SeedPaths and ListenPort.
	Connect string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	Color           bool
}

// Mode is what the application does once started.
type Mode int

const (
	// ModeLocal runs a terminal against an in-process grid.
	ModeLocal Mode = iota
	// ModeServer serves an in-process grid to remote clients.
	ModeServer
	// ModeRemote runs a terminal against a grid server.
	ModeRemote
)

func (m Mode) String() string {
	switch m {
	case ModeServer:
		return "server"
	case ModeRemote:
		return "remote"
	default:
		return "local"
	}
}

// Mode derives the run mode from the configuration.
func (c *Config) Mode() Mode {
	switch {
	case c.Connect != "":
		return ModeRemote
	case c.ListenPort > 0:
		return ModeServer
	default:
		return ModeLocal
	}
}

func NewConfig(cfg Config) (*Config, error) {
	if err := validatePort("ListenPort", cfg.ListenPort); err != nil {
		return nil, err
	}
	if err := validatePort("HealthcheckPort", cfg.HealthcheckPort); err != nil {
		return nil, err
	}

	if cfg.Connect != "" {
		if len(cfg.SeedPaths) > 0 {
			return nil, errors.New("seed files cannot be loaded into a remote grid")
		}
		if cfg.ListenPort > 0 {
			return nil, errors.New("Connect and ListenPort are mutually exclusive")
		}
		u, err := url.Parse(cfg.Connect)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("Connect must be an absolute URL, got %q", cfg.Connect)
		}
	}

	return &cfg, nil
}

func validatePort(name string, port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("%s must be between 0 and 65535, got %d", name, port)
	}
	return nil
}
