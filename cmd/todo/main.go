package main

import (
	"context"
	"fmt"
	"os"

	"todo/internal/cli"
	"todo/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(cfg, os.Stdin, os.Stdout)
	root := cli.NewRootCommand(app)

	if err := root.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
