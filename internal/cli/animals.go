package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/ports"
)

func animalsCmd(opts *globalOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "animals",
		Short: "Inspect the animal roster",
	}

	c.AddCommand(animalsListCmd(opts))
	return c
}

func animalsListCmd(opts *globalOpts) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List animals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(opts)
			defer cleanup()
			if err != nil {
				return err
			}
			return printAnimals(cmd.OutOrStdout(), ws.roster, ws.assets, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func printAnimals(w io.Writer, animals []domain.Animal, glyphs ports.AssetResolver, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(animals)
	case "pretty", "":
		if len(animals) == 0 {
			fmt.Fprintln(w, "(no animals)")
			return nil
		}
		for _, a := range animals {
			glyph := ""
			if glyphs != nil {
				glyph = glyphs.Resolve(a.Species()) + " "
			}
			fmt.Fprintf(w, "- %s%s  %s\n", glyph, a.String(), a.Info())
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
