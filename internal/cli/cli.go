// Package cli implements the scenectl command-line interface.
//
// scenectl loads scene documents, lays them out and replays their input
// scripts. All commands support --verbose (-v) for debug-level logging and
// read defaults from an optional scenectl.yaml.
//
// # Commands
//
//   - layout: run one update pass and print every element's container
//   - tree: print the element tree with its listeners
//   - simulate: replay the document script and print the routed events
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/scene/internal/config"
	"github.com/go-drift/scene/pkg/errors"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	settings *config.Resolved
}

// New creates a new CLI instance writing results to out and logs to logw.
// Errors reported by the scene packages are routed to the same logger.
func New(out, logw io.Writer, level log.Level) *CLI {
	c := &CLI{
		Out:    out,
		Logger: newLogger(logw, level),
	}
	errors.SetHandler(&errors.LogHandler{Logger: c.Logger})
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "scenectl",
		Short:        "scenectl lays out and exercises scene documents",
		Long:         `scenectl loads YAML or TOML scene documents, computes their layout and replays scripted input through the event router.`,
		Version:      version + " (" + commit + ")",
		SilenceUsage: true,
	}

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.simulateCommand())

	return root
}

// DefaultLevel returns the log level configured in scenectl.yaml, or info
// when the file does not set one.
func (c *CLI) DefaultLevel() (log.Level, error) {
	s, err := c.loadSettings()
	if err != nil {
		return LogInfo, err
	}
	return s.LogLevel, nil
}

// loadSettings resolves scenectl.yaml starting from the working directory.
func (c *CLI) loadSettings() (*config.Resolved, error) {
	if c.settings != nil {
		return c.settings, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	r, err := config.Resolve(config.FindRoot(wd))
	if err != nil {
		return nil, err
	}
	c.settings = r
	return r, nil
}
