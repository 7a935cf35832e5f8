// Package cmd implements the eco command line application to track an
// in-game economy.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ecotrack"
	"github.com/etnz/ecotrack/renderer"
	"github.com/etnz/ecotrack/storage"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	homeFlag    = flag.String("home", "", "directory holding the tracker data (default $ECOTRACK_HOME or .ecotrack)")
	backendFlag = flag.String("backend", "", "storage backend: file or sqlite (default $ECOTRACK_BACKEND or file)")
	keyFlag     = flag.String("key", "", "name of the snapshot, to keep several trackers side by side")
	verboseFlag = flag.Bool("v", false, "log debug information to stderr")
	rawFlag     = flag.Bool("raw", false, "print raw markdown instead of rendering it")
)

// output receives everything the commands print.
var output io.Writer = os.Stdout

// Commands lists every eco subcommand, in the order of the help message.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&txCmd{},
	&addTxCmd{},
	&clearHistoryCmd{},
	&shopsCmd{},
	&addShopCmd{},
	&editShopCmd{},
	&sellCmd{},
	&rmShopCmd{},
	&intelCmd{},
	&addIntelCmd{},
	&rmIntelCmd{},
	&notesCmd{},
	&addNoteCmd{},
	&rmNoteCmd{},
	&profileCmd{},
	&riskCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// Register the subcommands on c, grouped by topic.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, group(cmd.Name()))
	}
}

func group(name string) string {
	switch name {
	case "tx", "add-tx", "clear-history":
		return "transactions"
	case "shops", "add-shop", "edit-shop", "sell", "rm-shop":
		return "shops"
	case "intel", "add-intel", "rm-intel", "notes", "add-note", "rm-note":
		return "intel & notes"
	default:
		return ""
	}
}

// session is an open store and the resources behind it.
type session struct {
	*ecotrack.Store
	logger  *zap.Logger
	closers []io.Closer
}

// openStore opens the configured store. Every successful save prints a short
// summary of the balance.
func openStore(ctx context.Context) (*session, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	clock, err := cfg.Clock()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	s := &session{logger: logger}

	var backend ecotrack.Storage
	switch cfg.Backend {
	case BackendSQLite:
		if err := os.MkdirAll(cfg.Home, 0755); err != nil {
			return nil, fmt.Errorf("could not create home %q: %w", cfg.Home, err)
		}
		db, err := storage.OpenSQLite(ctx, filepath.Join(cfg.Home, "ecotrack.db"))
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db)
		backend = db
	default:
		backend = storage.NewDir(cfg.Home)
	}
	logger.Debug("opening store",
		zap.String("home", cfg.Home),
		zap.String("backend", cfg.Backend),
		zap.String("key", cfg.Key),
	)

	store, err := ecotrack.Open(ctx, backend,
		ecotrack.WithLogger(logger),
		ecotrack.WithClock(clock),
		ecotrack.WithKey(cfg.Key),
		ecotrack.WithRiskPolicy(cfg.RiskPolicy()),
	)
	if err != nil {
		s.Close()
		return nil, err
	}
	store.Subscribe(func(st ecotrack.State) { printMarkdown(renderer.Summary(st)) })
	s.Store = store
	return s, nil
}

// Close releases the storage and flushes the logs.
func (s *session) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	_ = s.logger.Sync()
	return errors.Join(errs...)
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if *rawFlag {
		fmt.Fprint(output, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(output, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(output, md)
		return
	}
	fmt.Fprint(output, out)
}

// exitStatus reports err on stderr and returns the matching exit status.
func exitStatus(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	if errors.Is(err, ecotrack.ErrInvalid) || errors.Is(err, ecotrack.ErrInsufficientInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
