package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/infra/assets"
	"github.com/aalvaropc/petspeak/internal/infra/logger"
	"github.com/aalvaropc/petspeak/internal/infra/workspacefinder"
	"github.com/aalvaropc/petspeak/internal/infra/yamlroster"
	"github.com/aalvaropc/petspeak/internal/ports"
	"github.com/aalvaropc/petspeak/internal/usecase"
)

var locator ports.WorkspaceLocator = workspacefinder.NewFinder()

// globalOpts are the persistent flags shared by every command.
type globalOpts struct {
	workspace  string
	roster     string
	noDefaults bool
	debug      bool
}

type workspaceCtx struct {
	root  string
	found bool // petspeak.yaml exists at root
	cfg   domain.Config

	roster []domain.Animal
	assets ports.AssetResolver
}

// openWorkspace resolves the workspace, points the global logger at its log
// file and builds the roster. The returned cleanup is never nil.
func openWorkspace(opts *globalOpts) (*workspaceCtx, func(), error) {
	ws, err := resolveWorkspace(opts.workspace)
	if err != nil {
		return nil, func() {}, err
	}

	cleanup := ws.setupLogging(opts.debug)

	if err := ws.loadRoster(opts, logger.L()); err != nil {
		logger.L().Error("workspace.load.failed", "root", ws.root, "err", err)
		return nil, cleanup, err
	}
	return ws, cleanup, nil
}

func resolveWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if found {
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil {
			return nil, err
		}
	}
	return &workspaceCtx{root: root, found: found, cfg: cfg}, nil
}

// setupLogging writes logs under cfg.Logs.Dir. Outside a workspace only an
// explicit --debug creates a log file. Failure to open it leaves logging
// discarded rather than aborting the command.
func (ws *workspaceCtx) setupLogging(debug bool) func() {
	if !ws.found && !debug {
		return func() {}
	}

	cleanup, err := logger.Setup(logger.Config{Root: ws.root, Dir: ws.cfg.Logs.Dir, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

// loadRoster builds the roster and glyph resolver. --roster overrides the
// configured roster path.
func (ws *workspaceCtx) loadRoster(opts *globalOpts, log *slog.Logger) error {
	spec := domain.RosterSpec{
		IncludeDefaults: ws.cfg.Roster.IncludeDefaults && !opts.noDefaults,
		Path:            workspacefinder.RosterPath(ws.root, ws.cfg),
	}
	if r := strings.TrimSpace(opts.roster); r != "" {
		abs, err := filepath.Abs(r)
		if err != nil {
			return fmt.Errorf("invalid roster path: %w", err)
		}
		spec.Path = abs
	}

	uc := usecase.NewBuildRoster(yamlroster.NewLoader(), usecase.WithRosterLogger(log))
	roster, err := uc.Execute(spec)
	if err != nil {
		return err
	}

	ws.roster = roster
	ws.assets = assets.FromConfig(ws.cfg.Assets)
	return nil
}

// resolveWorkspaceRoot returns the explicit workspace if given, otherwise the
// nearest ancestor holding petspeak.yaml, otherwise the working directory.
// found reports whether a petspeak.yaml is expected at root.
func resolveWorkspaceRoot(workspaceFlag string) (root string, found bool, err error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, workspacefinder.ConfigFileName)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	r, ferr := locator.FindRoot(wd)
	if ferr != nil {
		return wd, false, nil
	}
	return r, true, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
