package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayasuda/kanjidrill/internal/app"
	"github.com/ayasuda/kanjidrill/internal/config"
	"github.com/ayasuda/kanjidrill/internal/plugins"
	"github.com/ayasuda/kanjidrill/internal/session"
	"github.com/ayasuda/kanjidrill/internal/store"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
	"github.com/ayasuda/kanjidrill/internal/usermodel"
)

// env holds everything a command needs once the process is wired up.
type env struct {
	store    *store.Store
	cfg      config.Config
	registry *plugins.Registry
	builder  *session.Builder
}

func (e *env) Close() error {
	return e.store.Close()
}

// setup opens the store, loads and validates configuration, resolves the
// plugin registry, and wires the builder. Plugin resolution failures are
// fatal here, before any drill state is touched.
func setup(cmd *cobra.Command) (*env, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		st.Close()
		return nil, err
	}

	syl, err := loadSyllabus(cfg)
	if err != nil {
		st.Close()
		return nil, err
	}

	sampler := usermodel.NewSampler(st.History(), syl, nil)
	registry, err := plugins.Load(cfg.Plugins, plugins.Deps{
		Distractors: sampler,
		OptionCount: cfg.OptionsPerQuestion,
	})
	if err != nil {
		st.Close()
		return nil, err
	}

	builder := session.NewBuilder(registry, syl, st.Sets(), cfg.QuestionsPerSet, nil)

	return &env{store: st, cfg: cfg, registry: registry, builder: builder}, nil
}

func loadSyllabus(cfg config.Config) (*syllabus.Lexicon, error) {
	if cfg.Syllabus == "builtin" {
		return syllabus.Builtin(nil), nil
	}
	return syllabus.LoadLexicon(cfg.Syllabus, nil)
}

// runApp wires the environment and starts the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Builder: e.builder,
		Sets:    e.store.Sets(),
		UserID:  e.cfg.ProfileID,
	})
}
