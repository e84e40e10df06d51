package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"backoffice/internal/client/api"
	"backoffice/internal/client/cli"
	"backoffice/internal/client/session"
)

func main() {
	server := flag.String("server", defaultServer(), "dashboard server base URL")
	flag.Parse()

	store, err := session.DefaultStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(api.New(*server), store)
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func defaultServer() string {
	if s := os.Getenv("DASH_SERVER"); s != "" {
		return s
	}
	return "http://localhost:5000"
}
