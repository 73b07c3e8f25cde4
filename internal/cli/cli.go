// Package cli implements the graphson command-line interface.
//
// This package provides commands for translating between GraphSON and plain
// JSON, inspecting type-tagged documents, rendering decoded graphs, and
// running a small translation server for peer-implementation debugging. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - decode: GraphSON text → plain (untagged) JSON
//   - encode: plain JSON → GraphSON text
//   - inspect: styled tree view of a GraphSON document
//   - render: decoded vertices/edges → DOT or SVG
//   - serve: HTTP translation endpoints for interop debugging
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Example
//
//	import "github.com/tinkerkit/graphson/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tinkerkit/graphson/pkg/buildinfo"
	"github.com/tinkerkit/graphson/pkg/graphson"
)

// appName is the application name used for directories and display.
const appName = "graphson"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the user's
// config file applied (missing config is not an error).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
	if cfg, err := LoadConfig(configPath()); err == nil {
		c.Config = cfg
	} else {
		c.Logger.Debugf("config not loaded: %v", err)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Graphson translates between GraphSON and plain JSON",
		Long:         `Graphson is a CLI for the GraphSON wire format: it encodes, decodes, inspects, and renders the type-tagged JSON exchanged with remote graph-processing services.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Make the logger reachable from any command context
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// mapper builds the codec session the commands share, with the user's
// configured namespace applied.
func (c *CLI) mapper() *graphson.Mapper {
	var opts []graphson.Option
	if ns := c.Config.Namespace; ns != "" && ns != graphson.DefaultNamespace {
		opts = append(opts, graphson.WithNamespace(ns))
	}
	return graphson.NewMapper(opts...)
}

// readInput reads the named file, or stdin when the argument is absent
// or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

// writeOutput writes data to the named file, or stdout when path is empty.
// A trailing newline is added for terminal output only.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		out := string(data)
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		_, err := io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// configPath returns the config file location using the XDG standard
// (~/.config/graphson/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
