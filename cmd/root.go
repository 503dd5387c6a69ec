// Package cmd implements the twig command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/twig/internal/app"
	"github.com/zjrosen/twig/internal/config"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mode/shared"
	"github.com/zjrosen/twig/internal/paths"
	"github.com/zjrosen/twig/internal/store"
	"github.com/zjrosen/twig/internal/tracing"
	"github.com/zjrosen/twig/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigName is looked up in the working directory before the user
// config.
const localConfigName = ".twig.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool

	cfg     config.Config
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "twig [path]",
	Short: "A keyboard-driven terminal git client",
	Long: `twig is a terminal user interface for git. The status view stages and
commits changes, the branches view moves between branches and remotes, and
the graph view browses history.

With a path, the enclosing repository is registered and opened. Without
one, the last opened repository is reopened, or the repository picker is
shown.`,
	Version:           version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.twig.yaml, then ~/.config/twig/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log and enable the log overlay (ctrl+x)")
}

func initConfig(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	cfg, cfgPath, err = loadConfig(cfgFile, wd, config.DefaultConfigPath())
	return err
}

// loadConfig reads the config in lookup order: the explicit file, then
// localConfigName in workDir, then defaultPath, which is written with the
// defaults when missing. It returns the file that should receive saved
// settings.
func loadConfig(explicit, workDir, defaultPath string) (config.Config, string, error) {
	v := viper.New()
	path := explicit
	if path == "" {
		local := filepath.Join(workDir, localConfigName)
		if _, err := os.Stat(local); err == nil {
			path = local
		} else {
			path = defaultPath
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				if writeErr := config.WriteDefaultConfig(path); writeErr != nil {
					log.Warn(log.CatConfig, "Could not write default config", "path", path, "error", writeErr)
				}
			}
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	loaded := config.Defaults()
	if err := v.ReadInConfig(); err != nil {
		if explicit != "" || !errors.Is(err, fs.ErrNotExist) {
			return loaded, "", fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "No config file, using defaults", "path", path)
	}
	if err := v.Unmarshal(&loaded); err != nil {
		return loaded, "", fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := config.Validate(loaded); err != nil {
		return loaded, "", fmt.Errorf("invalid configuration: %w", err)
	}
	return loaded, path, nil
}

// startLogging honours --debug and TWIG_DEBUG. TWIG_LOG overrides the
// debug.log destination.
func startLogging() (bool, func(), error) {
	if !debugFlag && os.Getenv("TWIG_DEBUG") == "" {
		return false, func() {}, nil
	}
	logPath := os.Getenv("TWIG_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.Init(logPath)
	if err != nil {
		return false, nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "twig starting", "version", version, "config", cfgPath)
	return true, cleanup, nil
}

func runApp(_ *cobra.Command, args []string) (err error) {
	debug, cleanup, err := startLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	styles.ApplyTheme(cfg.Theme.Accent, cfg.Theme.Added, cfg.Theme.Removed)

	ctx := context.Background()
	provider, err := tracing.NewProvider(cfg.TracingConfig())
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		if shutdownErr := provider.Shutdown(ctx); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}()

	st, err := store.Open(cfg.StorePath())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	repo, err := initialRepo(ctx, st, args)
	if err != nil {
		return err
	}

	zone.NewGlobal()
	model := app.New(app.Options{
		Config:     cfg,
		ConfigPath: cfgPath,
		Registry:   st,
		Executor: func(root string) git.Executor {
			var exec git.Executor = git.NewRealExecutor(root)
			if provider.Enabled() {
				exec = git.NewTracedExecutor(exec, provider.Tracer())
			}
			return exec
		},
		Clipboard: shared.SystemClipboard{},
		Opener:    shared.SystemOpener{},
		Notifier:  shared.DesktopNotifier{},
		Clock:     shared.RealClock{},
		Debug:     debug,
		Repo:      repo,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(model, opts...).Run()

	// Clean up watcher resources
	if m, ok := final.(app.Model); ok {
		if closeErr := m.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// initialRepo registers and returns the repository named on the command
// line, or the last opened one.
func initialRepo(ctx context.Context, st *store.Store, args []string) (string, error) {
	if len(args) == 0 {
		return st.Current(ctx)
	}
	root, err := paths.ResolveRepo(args[0])
	if err != nil {
		return "", fmt.Errorf("%s: %w", args[0], err)
	}
	if _, err := st.Add(ctx, root); err != nil {
		return "", err
	}
	return root, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
