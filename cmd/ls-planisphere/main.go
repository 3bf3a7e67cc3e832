// Command ls-planisphere is a terminal planisphere: it shows the sky above an
// observer in stereographic projection and prints headless summaries.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-planisphere/internal/body"
	"github.com/litescript/ls-planisphere/internal/config"
	"github.com/litescript/ls-planisphere/internal/logging"
	"github.com/litescript/ls-planisphere/internal/state"
	"github.com/litescript/ls-planisphere/internal/ui"
	"github.com/litescript/ls-planisphere/internal/version"
)

const appName = "ls-planisphere"

// app holds what every command needs once flags and config are resolved.
type app struct {
	cfg config.Config
	loc *time.Location
	log *logging.Logger
	mgr *state.Manager
}

var cfgFile string

// flagKeys maps persistent flags to their config keys.
var flagKeys = map[string]string{
	"name":      "observer.name",
	"lat":       "observer.lat",
	"lon":       "observer.lon",
	"timezone":  "observer.timezone",
	"az":        "view.center_az",
	"alt":       "view.center_alt",
	"fov":       "view.fov",
	"refresh":   "refresh",
	"log-level": "log_level",
	"schedule":  "schedule",
}

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Terminal planisphere",
		Long: `ls-planisphere draws the sky above an observer: the Sun, the Moon,
the planets and the bright stars, in stereographic projection around a
viewing direction you can pan, zoom and step through time.

Configuration is read from $HOME/.ls-planisphere/config.yaml, LSP_*
environment variables and flags, in increasing order of precedence.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ls-planisphere/config.yaml)")
	pf.String("name", "", "observer name")
	pf.Float64("lat", 0, "observer latitude in degrees")
	pf.Float64("lon", 0, "observer longitude in degrees, east positive")
	pf.String("timezone", "", "IANA time zone for displayed times")
	pf.Float64("az", 0, "azimuth of the view centre in degrees")
	pf.Float64("alt", 0, "altitude of the view centre in degrees")
	pf.Float64("fov", 0, "field of view in degrees")
	pf.Duration("refresh", 0, "rebuild interval (e.g. 30s, 1m)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newSummaryCmd(a), newClosestCmd(a), newVersionCmd())
	return root
}

// setup loads the configuration and builds the state manager.
func (a *app) setup(cmd *cobra.Command) error {
	v := config.NewViper(cfgFile)
	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.loc = loc
	a.log = logging.New(logging.ParseLevel(cfg.LogLevel))
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("Using config file: %s", used)
	}

	cat, err := body.DefaultCatalogue()
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = cfg.Refresh
	a.mgr = state.NewManager(stateCfg, cat, a.log.Named("state"))

	where, err := cfg.Where()
	if err != nil {
		return err
	}
	center, err := cfg.Center()
	if err != nil {
		return err
	}
	a.mgr.SetObserver(where)
	a.mgr.SetCenter(center)
	return nil
}

// bindFlags binds every flag the user actually set to its config key, so
// that unset flags do not shadow the file and the environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (a *app) runTUI(ctx context.Context) error {
	// The alternate screen owns stderr while the TUI runs.
	logDir := config.DefaultDir()
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", logDir, err)
	}
	f, err := tea.LogToFile(filepath.Join(logDir, appName+".log"), appName)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	a.log.SetOutput(f)

	a.log.Info("starting TUI at (%.4f, %.4f), refresh %v",
		a.cfg.Observer.Lat, a.cfg.Observer.Lon, a.mgr.RefreshInterval())

	model := ui.New(a.mgr, ui.Options{
		ObserverName: a.cfg.Observer.Name,
		FieldOfView:  a.cfg.View.FieldOfView,
		Location:     a.loc,
		Logger:       a.log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version.Version)
		},
	}
}
