package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/catalog"
	"github.com/KirkDiggler/spellbook/internal/config"
	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/kvstore"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/spellbook"
	characterrepo "github.com/KirkDiggler/spellbook/internal/repositories/character"
)

// rootOptions holds the persistent flags and the configuration they
// resolve to
type rootOptions struct {
	envFile     string
	store       string
	catalogPath string
	logLevel    string
	output      string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "spellbook",
		Short: "D&D 5e spellbook and spell slot tracker",
		Long: `Spellbook keeps saved spellcasters, lists the spells their classes can learn
and tracks expended spell slots, including warlock pact magic.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "Optional .env file with configuration")
	flags.StringVar(&opts.store, "store", "", "Store backend: memory, redis, bolt or sqlite")
	flags.StringVar(&opts.catalogPath, "catalog", "", "Path to the spell catalog JSON")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVarP(&opts.output, "output", "o", outputText, "Output format: text, json or yaml")

	cmd.AddCommand(
		newCharactersCmd(opts),
		newSpellsCmd(opts),
		newSlotsCmd(opts),
		newCatalogCmd(opts),
	)
	return cmd
}

// load resolves configuration and installs the logger. Flags override
// environment values.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = o.store
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = o.catalogPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateOutput(o.output); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	o.cfg = cfg
	return nil
}

// app is the wired object graph a command works with
type app struct {
	store        kvstore.Store
	catalog      *catalog.Catalog
	orchestrator *spellbook.Orchestrator
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("failed to close store", "error", err.Error())
	}
}

// openApp wires store, catalog, engine, repository and orchestrator. A
// missing catalog file is only an error when requireCatalog is set.
func (o *rootOptions) openApp(ctx context.Context, requireCatalog bool) (*app, error) {
	cat, err := catalog.LoadFile(ctx, o.cfg.CatalogPath)
	if err != nil {
		if requireCatalog || !errors.IsNotFound(err) {
			return nil, err
		}
		slog.DebugContext(ctx, "catalog not found, continuing without spells",
			"catalog_path", o.cfg.CatalogPath)
		cat = catalog.New(nil)
	}

	eng, err := engine.New(&engine.Config{Catalog: cat})
	if err != nil {
		return nil, err
	}

	store, err := kvstore.Open(ctx, o.cfg.StoreOptions())
	if err != nil {
		return nil, err
	}

	repo, err := characterrepo.New(&characterrepo.Config{Store: store})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	orch, err := spellbook.New(&spellbook.Config{Engine: eng, CharacterRepo: repo})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &app{store: store, catalog: cat, orchestrator: orch}, nil
}
