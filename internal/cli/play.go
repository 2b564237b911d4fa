package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/infra/logger"
	"github.com/aalvaropc/petspeak/internal/ports"
	"github.com/aalvaropc/petspeak/internal/ui/viewstate"
)

func playCmd(opts *globalOpts) *cobra.Command {
	var noGlyphs bool

	c := &cobra.Command{
		Use:   "play <action>...",
		Short: "Replay select:<name> and speak actions and print the resulting screen",
		Example: "  petspeak play select:Whiskers speak\n" +
			"  petspeak play select:Whiskers speak select:Charlie",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cleanup, err := openWorkspace(opts)
			defer cleanup()
			if err != nil {
				return err
			}

			var glyphs ports.AssetResolver = ws.assets
			if noGlyphs {
				glyphs = nil
			}
			return play(cmd.OutOrStdout(), logger.L(), ws.roster, glyphs, args)
		},
	}

	c.Flags().BoolVar(&noGlyphs, "no-glyphs", false, "Omit species glyphs from the output")
	return c
}

// play applies actions in order and renders the final state once. Rejected
// transitions are logged by the state and do not stop the replay; unknown
// actions and animals do.
func play(w io.Writer, log *slog.Logger, roster []domain.Animal, glyphs ports.AssetResolver, actions []string) error {
	st := viewstate.New(log)

	for _, raw := range actions {
		action := strings.TrimSpace(raw)
		switch {
		case strings.EqualFold(action, "speak"):
			st, _ = st.Speak()

		case strings.HasPrefix(strings.ToLower(action), "select:"):
			a, err := lookupAnimal(roster, action[len("select:"):])
			if err != nil {
				return err
			}
			st, _ = st.Select(a)

		default:
			return fmt.Errorf("unknown action %q (expected select:<name> or speak)", raw)
		}
	}

	_, err := io.WriteString(w, viewstate.Render(roster, st, glyphs))
	return err
}
