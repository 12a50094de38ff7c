package main

import (
	"os"

	"nelo/internal/config"
	"nelo/internal/store"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StoreFactory creates store instances based on environment
type StoreFactory struct {
	env Environment
	cfg *config.Config
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment, cfg *config.Config) *StoreFactory {
	return &StoreFactory{env: env, cfg: cfg}
}

// CreateStore creates a store instance based on the current environment
func (sf *StoreFactory) CreateStore() (store.Store, error) {
	switch sf.env {
	case Development:
		// A local database file in the working directory
		return store.New("nelo.db")
	case Testing:
		// Per-process state only: nothing survives the run
		return store.NewMemory(), nil
	default:
		return store.New(sf.cfg.GetDatabasePath())
	}
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("NELO_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}
