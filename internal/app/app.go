package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"
	"github.com/mordilloSan/go-logger/logger"
	"github.com/spf13/pflag"

	"lss/internal/config"
	"lss/internal/lscolors"
	"lss/internal/osuser"
	"lss/internal/render"
	"lss/internal/services"
	"lss/internal/state"
	"lss/internal/ui"
)

const Version = "0.4.0"

// Exit statuses follow ls.
const (
	ExitOK    = 0
	ExitMinor = 1
	ExitMajor = 2
)

func Run(args []string, stdout, stderr io.Writer) int {
	base, configErr := config.LoadConfig()
	cfg, err := config.ParseFlags(base, args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "lss: %v\n", err)
		return ExitMajor
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "lss %s\n", Version)
		return ExitOK
	}

	initLogger(cfg.Debug)
	if configErr != nil {
		logger.Warnf("config file ignored: %v", configErr)
	}
	logger.DebugKV("starting", "paths", cfg.Paths, "maxDepth", cfg.MaxDepth, "timeout", cfg.Timeout)

	colorMode, err := render.ParseColorMode(cfg.Color)
	if err != nil {
		fmt.Fprintf(stderr, "lss: %v\n", err)
		return ExitMajor
	}

	registry := services.NewRegistry()
	if cfg.Markers {
		registry.Register("git", services.GitMarker)
	}
	opts := services.TraverseOptions{
		MaxDepth:   cfg.MaxDepth,
		Timeout:    cfg.Timeout,
		Filters:    services.BuildFilters(cfg.All, cfg.IgnoreBackups, cfg.Ignore),
		CrossMount: cfg.CrossMount,
		Markers:    registry,
	}
	formatters := &render.Formatters{
		Scheme:      lscolors.Load(),
		Identities:  osuser.NewResolver(),
		Dereference: cfg.Dereference,
	}
	columns := render.DefaultColumns(formatters, cfg.Inode)
	color := render.ColorEnabled(stdout, colorMode)

	if cfg.Browse {
		return browse(cfg, opts, columns, color, configErr, stderr)
	}
	return list(cfg, opts, columns, color, stdout, stderr)
}

func initLogger(debug bool) {
	levels := []logger.Level{logger.WarnLevel, logger.ErrorLevel}
	if debug {
		levels = logger.AllLevels()
	}
	logger.Init(logger.Config{
		Levels: levels,
	})
}

func list(cfg config.Config, opts services.TraverseOptions, columns []render.Column, color bool, stdout, stderr io.Writer) int {
	traverser := services.NewTraverser(opts)
	listing := render.NewListing(columns, render.ListingOptions{
		SortMode: cfg.SortMode,
		Reverse:  cfg.Reverse,
		Color:    color,
	})

	var rootErrs *multierror.Error
	for _, path := range cfg.Paths {
		if err := traverser.Walk(path, listing.Add); err != nil {
			rootErrs = multierror.Append(rootErrs, err)
		}
	}
	logger.DebugKV("walk finished", "items", listing.Len(), "elapsed", traverser.Deadline().Elapsed(), "problems", len(traverser.Problems()))

	status := ExitOK
	if len(traverser.Problems()) > 0 {
		status = ExitMinor
	}
	if rootErrs != nil {
		for _, err := range rootErrs.Errors {
			fmt.Fprintln(stderr, accessMessage(err))
		}
		status = ExitMajor
	}
	if err := listing.Render(stdout); err != nil {
		fmt.Fprintf(stderr, "lss: write error: %v\n", err)
		return ExitMajor
	}
	return status
}

// accessMessage formats a root failure the way ls reports it.
func accessMessage(err error) string {
	var walkErr *services.Error
	if !errors.As(err, &walkErr) {
		return fmt.Sprintf("lss: %v", err)
	}
	reason := walkErr.Err
	var pathErr *fs.PathError
	if errors.As(reason, &pathErr) {
		reason = pathErr.Err
	}
	return fmt.Sprintf("lss: cannot access '%s': %v", walkErr.Path, reason)
}

func browse(cfg config.Config, opts services.TraverseOptions, columns []render.Column, color bool, configErr error, stderr io.Writer) int {
	appState := state.NewState(cfg, columns, color)
	scanner := services.NewDirScanner(opts, cfg.IgnoreBackups, cfg.Ignore)

	model := ui.NewModel(appState, scanner)
	if configErr != nil {
		model = model.WithStatus("Config warning: using defaults")
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(stderr, "lss:", err)
		return ExitMajor
	}
	return ExitOK
}
