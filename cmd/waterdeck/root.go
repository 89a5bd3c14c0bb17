package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"waterdeck/internal/config"
	"waterdeck/internal/domain"
	"waterdeck/internal/eventbus"
	"waterdeck/internal/monitors"
	"waterdeck/internal/ui"
	"waterdeck/internal/ui/commands"
)

var (
	cfgFile     string
	catalogFlag string
	queryFlag   string
	logFile     string

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "waterdeck [catalog]",
	Short: "Browse and search ML monitors in the terminal",
	Long: `waterdeck lists the monitors defined in a TOML or YAML catalog, filters them
as you type and reports what happened in short-lived toasts.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Context(), args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: user config dir)")
	rootCmd.PersistentFlags().StringVarP(&catalogFlag, "catalog", "c", "", "monitor catalog file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "waterdeck.log", "log file, empty to disable logging")
	rootCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "search to start with")
}

// setupLogging sends the standard logger to path so it never draws over the UI
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", path)
	}
	log.SetOutput(f)
	logCloser = f
	return nil
}

// loadConfig reads the config file, falling back to the defaults when it is broken
func loadConfig(bus eventbus.EventBus) (config.ConfigService, *config.Config) {
	svc := config.NewConfigServiceWithBus(cfgFile, bus)
	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	return svc, cfg
}

// catalogPath picks the catalog from the argument, the flag or the config, in that order
func catalogPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if catalogFlag != "" {
		return catalogFlag
	}
	return cfg.CatalogPath
}

func runDashboard(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	configSvc, cfg := loadConfig(bus)
	if queryFlag != "" {
		cfg.UISettings.InitialQuery = queryFlag
	}

	path := catalogPath(args, cfg)
	store := monitors.NewMemoryStore(nil)
	var reloader commands.Reloader

	loaded, loadErr := monitors.LoadCatalog(path)
	if loadErr != nil {
		log.Printf("Could not load catalog: %v", loadErr)
	} else {
		store.Replace(loaded)
		watcher := monitors.NewWatcher(path, store, bus)
		reloader = watcher
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Printf("Catalog watcher stopped: %v", err)
				bus.Publish(eventbus.ErrorEvent{Message: "Live reload unavailable", Err: err})
			}
		}()
	}
	log.Printf("Starting with %d monitors from %s", store.Count(), path)

	model := ui.NewModel(cfg, configSvc, store, bus, reloader)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Background events reach the UI as messages
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventCatalogLoaded, forward)
	bus.Subscribe(eventbus.EventCatalogReloaded, forward)
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventMonitorDeleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MonitorDeletedEvent); ok {
			log.Printf("Monitor %s (%s) deleted", event.Name, event.ID)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})

	if loadErr != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "Could not load catalog", Err: loadErr})
	} else {
		bus.Publish(domain.CatalogLoadedEvent{Path: path, Count: store.Count()})
	}

	if os.Getenv("WATERDECK_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "run program")
	}
	log.Printf("UI exited normally")
	return nil
}
