// Command dashctl queries and exports dashboard views from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/JonMunkholm/dashboard/internal/core/views" // Register all views
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Environment variables take precedence over .env for the CLI.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, app := newRootCmd()
	defer app.Close()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
