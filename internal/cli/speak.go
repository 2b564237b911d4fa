package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/petspeak/internal/domain"
)

func speakCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "speak <name>",
		Short: "Print what an animal says",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cleanup, err := openWorkspace(opts)
			defer cleanup()
			if err != nil {
				return err
			}

			a, err := lookupAnimal(ws.roster, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Speak())
			return nil
		},
	}
}

func lookupAnimal(roster []domain.Animal, name string) (domain.Animal, error) {
	a, ok := domain.FindAnimal(roster, name)
	if !ok {
		return domain.Animal{}, &domain.OpError{
			Op:   "cli.lookup_animal",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("animal %q: %w", name, domain.ErrNotFound),
		}
	}
	return a, nil
}
