package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/imposer/pkg/core/impose"
)

func (c *CLI) schemesCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the imposition schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if namesOnly {
				for _, name := range impose.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			t := newTable("Scheme", "Grid", "Group", "Turns", "Description")
			for _, s := range impose.Schemes() {
				group := "-"
				if s.Unit > 0 {
					group = strconv.Itoa(s.Unit)
				}
				turns := ""
				if s.Rotates {
					turns = "✓"
				}
				t.Row(s.Name, fmt.Sprintf("%d×%d", s.Rows, s.Cols), group, turns, s.Description)
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "print scheme names only")
	return cmd
}
