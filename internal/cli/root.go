package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/petspeak/internal/infra/logger"
	"github.com/aalvaropc/petspeak/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:          "petspeak",
		Short:        "petspeak: pick an animal and make it speak",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(opts)
			defer cleanup()
			if err != nil {
				return err
			}

			return tui.Run(tuiDeps(ws, opts.debug), ws.roster)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	f.StringVar(&opts.roster, "roster", "", "Extra roster file (overrides petspeak.yaml roster.path)")
	f.BoolVar(&opts.noDefaults, "no-defaults", false, "Leave the built-in animals out of the roster")
	f.BoolVar(&opts.debug, "debug", false, "enable verbose logging to .petspeak/logs/petspeak.log")

	cmd.AddCommand(
		animalsCmd(opts),
		speakCmd(opts),
		playCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func tuiDeps(ws *workspaceCtx, debug bool) tui.Deps {
	deps := tui.Deps{
		Assets: ws.assets,
		Logger: logger.L(),
		Debug:  debug,
	}
	if logger.IsReady() == nil {
		deps.LogPath = logger.Path()
		deps.LogStarted = logger.InitTime()
	}
	return deps
}
