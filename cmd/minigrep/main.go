package main

import (
	"fmt"
	"io"
	"os"

	"github.com/a2y-d5l/minigrep/internal/config"
	"github.com/a2y-d5l/minigrep/internal/logging"
	"github.com/a2y-d5l/minigrep/internal/scan"
	"go.uber.org/zap"
)

func main() {
	logger := logging.New(os.Stderr, os.Getenv(logging.LevelEnv))
	code := run(os.Stdout, os.Stderr, os.Args, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// run returns the process exit status: 0 on success, 1 for a bad
// invocation, 2 when the file cannot be read or output cannot be written.
func run(stdout, stderr io.Writer, args []string, logger *zap.Logger) int {
	logger.Debug("starting", zap.String("version", config.Version), zap.Strings("args", args))

	cfg, err := config.FromArgs(args)
	if err != nil {
		// User-supplied arguments are invalid → exit 1
		fmt.Fprintln(stderr, "minigrep:", err)
		return 1
	}

	if err := scan.Run(stdout, cfg, logger); err != nil {
		// Runtime failure → exit 2
		fmt.Fprintln(stderr, "minigrep:", err)
		return 2
	}
	return 0
}
