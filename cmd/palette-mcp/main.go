// Command palette-mcp serves the palette engine over MCP stdio and exposes
// the same operations as CLI subcommands.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.execute(ctx, os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString("palette-mcp: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
