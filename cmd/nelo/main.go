package main

import (
	"fmt"
	"os"

	"nelo/internal/api"
	"nelo/internal/cli"
	"nelo/internal/config"
	"nelo/internal/repository"
	"nelo/internal/session"
)

func main() {
	// Load configuration: defaults, then config file, then environment
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create the backing store for the current environment
	factory := NewStoreFactory(getEnvironment(), cfg)
	backing, err := factory.CreateStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer backing.Close()

	// Wire the session controller and task repository into the API
	sessions := session.NewController(backing, cfg.Storage.SessionKey)
	tasks := repository.New(backing, cfg.Storage.TasksKey)
	apiInstance := api.New(sessions, tasks)

	// Pick up a session persisted by an earlier invocation
	apiInstance.Restore()

	app := cli.NewApp(apiInstance, cfg)
	root := cli.NewRootCommand(app, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
