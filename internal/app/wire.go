package app

import (
	"keymint/internal/config"
	"keymint/internal/httpapi"
	"keymint/internal/keygen"
	"keymint/internal/services/material"
	"keymint/internal/store"
)

// Config holds runtime wiring options for building the daemon.
type Config struct {
	ConfigPath string // YAML config file; empty uses defaults
}

// Wire bundles the daemon's dependency graph.
type Wire struct {
	Config    config.Config
	Generator *keygen.Generator
	Hub       *httpapi.Hub
	Materials *material.Service
	Store     *store.FileStore
	Server    *httpapi.Server
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	fileCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	fs, err := store.NewFileStore(fileCfg.DataDir)
	if err != nil {
		return nil, err
	}

	gen := keygen.New()
	hub := httpapi.NewHub(fileCfg.AllowedOrigins)
	materials := material.New(gen, hub)

	return &Wire{
		Config:    fileCfg,
		Generator: gen,
		Hub:       hub,
		Materials: materials,
		Store:     fs,
		Server:    httpapi.New(materials, fs, hub),
	}, nil
}
