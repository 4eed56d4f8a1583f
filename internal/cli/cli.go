// Package cli implements the quaver command line: value table listings,
// resource probing and loading through the engine adapters, and journal
// queries.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"quaver.click/internal/config"
	"quaver.click/internal/fs"
	"quaver.click/internal/journal"
)

const Version = "0.3.0"

// CLI represents the command-line interface
type CLI struct {
	rootCmd          *cobra.Command
	fs               afero.Fs
	resources        afero.Fs // read-only view resources are resolved in
	configManager    *config.ConfigManager
	config           *config.Config
	terminalDetector TerminalDetector
	journalDB        *sql.DB // Optional journal database
	logCloser        io.Closer
}

// NewCLI creates a CLI working on the real filesystem
func NewCLI() *CLI {
	factory := fs.NewDefaultFactory()
	return newCLI(factory.Production(), factory.Resources())
}

// NewCLIWithFilesystem creates a CLI reading resources and configuration through fsys
func NewCLIWithFilesystem(fsys afero.Fs) *CLI {
	return newCLI(fsys, afero.NewReadOnlyFs(fsys))
}

func newCLI(fsys, resources afero.Fs) *CLI {
	slog.Debug("creating new CLI instance")

	c := &CLI{
		fs:               fsys,
		resources:        resources,
		configManager:    config.NewConfigManager(fsys),
		terminalDetector: &DefaultTerminalDetector{},
	}

	rootCmd := &cobra.Command{
		Use:           "quaver",
		Short:         "Audio engine adapter toolkit",
		Long:          "quaver inspects the engine value tables and decodes resources through the same adapters the audio engine calls.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.prepare(cmd)
		},
	}
	rootCmd.SetVersionTemplate("quaver version {{.Version}}\n")

	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file loaded before the environment is read")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSlice("search-path", nil, "Directory to resolve resources in (repeatable)")
	rootCmd.PersistentFlags().String("journal-db", "", "Journal database path (\":memory:\" for a throwaway journal)")
	rootCmd.PersistentFlags().Bool("no-journal", false, "Do not record events")

	rootCmd.AddCommand(
		newTablesCommand(),
		newPresetsCommand(),
		newAttrsCommand(),
		newProbeCommand(),
		newLoadCommand(),
		newToneCommand(),
		newEventsCommand(),
		newConfigCommand(),
	)

	c.rootCmd = rootCmd
	return c
}

type cliContextKey struct{}

// contextWithCLI stores CLI instance in context for command handlers
func contextWithCLI(cli *CLI) context.Context {
	return context.WithValue(context.Background(), cliContextKey{}, cli)
}

// cliFromContext extracts CLI instance from context
func cliFromContext(ctx context.Context) *CLI {
	if cli, ok := ctx.Value(cliContextKey{}).(*CLI); ok {
		return cli
	}
	return nil
}

// mustCLI returns the CLI stored in the command context
func mustCLI(cmd *cobra.Command) (*CLI, error) {
	cli := cliFromContext(cmd.Context())
	if cli == nil {
		slog.Error("CLI instance not found in context")
		return nil, fmt.Errorf("CLI instance not found in context")
	}
	return cli, nil
}

// prepare loads configuration and sets up logging before any command runs
func (c *CLI) prepare(cmd *cobra.Command) error {
	cfg, err := loadAndValidateConfig(cmd, c)
	if err != nil {
		return err
	}
	c.config = cfg

	closer, err := setupLogging(cfg, c.configManager, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c.logCloser = closer
	return nil
}

// loadAndValidateConfig loads configuration from flags and files, applies overrides, and validates
func loadAndValidateConfig(cmd *cobra.Command, cli *CLI) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	logLevel, _ := cmd.Flags().GetString("log-level")
	searchPaths, _ := cmd.Flags().GetStringSlice("search-path")
	journalDB, _ := cmd.Flags().GetString("journal-db")
	noJournal, _ := cmd.Flags().GetBool("no-journal")

	if envFile != "" {
		if err := cli.configManager.LoadDotEnv(envFile); err != nil {
			return nil, err
		}
	}

	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = cli.configManager.LoadFromFile(configFile)
	} else {
		cfg, err = cli.configManager.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	cfg = cli.configManager.ApplyEnvironmentOverrides(cfg)

	// Command line overrides
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if len(searchPaths) > 0 {
		cfg.SearchPaths = searchPaths
	}
	if journalDB != "" || noJournal {
		journalCfg := config.JournalConfig{}
		if cfg.Journal != nil {
			journalCfg = *cfg.Journal
		}
		if journalDB != "" {
			journalCfg.DatabasePath = journalDB
		}
		if noJournal {
			journalCfg.Enabled = false
		}
		cfg.Journal = &journalCfg
	}

	if err := cli.configManager.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openJournal opens the journal database if enabled in configuration.
// A failure leaves the journal off rather than failing the command.
func (c *CLI) openJournal() *sql.DB {
	if c.journalDB != nil {
		return c.journalDB
	}
	if c.config == nil || c.config.Journal == nil || !c.config.Journal.Enabled {
		slog.Debug("journal disabled, skipping database initialization")
		return nil
	}

	dbPath := c.configManager.ResolveJournalPath(c.config.Journal.DatabasePath)
	db, err := journal.OpenDatabase(dbPath)
	if err != nil {
		slog.Error("failed to open journal database, continuing without journal",
			"path", dbPath, "error", err)
		return nil
	}

	c.journalDB = db
	slog.Debug("journal database opened", "path", dbPath)
	return db
}

// Run executes the CLI with the given arguments and I/O streams
func (c *CLI) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	slog.Debug("CLI run started", "args", args)

	defer func() {
		if c.journalDB != nil {
			if err := c.journalDB.Close(); err != nil {
				slog.Error("error closing journal database", "error", err)
			}
			c.journalDB = nil
		}
		if c.logCloser != nil {
			c.logCloser.Close()
			c.logCloser = nil
		}
	}()

	if len(args) > 0 {
		args = args[1:] // Skip program name
	}
	c.rootCmd.SetArgs(args)
	c.rootCmd.SetIn(stdin)
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
	c.rootCmd.SetContext(contextWithCLI(c))

	if err := c.rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		slog.Debug("command failed", "error", err)
		return 1
	}
	return 0
}
