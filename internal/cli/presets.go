package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/imposer/pkg/preset"
)

func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List named job presets",
		Long: `List the built-in presets and those defined in the preset file.

Presets live in TOML tables named [preset.<name>]:

  [preset.flyer]
  scheme = "2-up"
  page_size = "a5"
  formats = ["pdf"]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := c.presets()
			if err != nil {
				return err
			}
			t := newTable("Preset", "Scheme", "Page", "Options", "Description")
			for _, name := range set.Names() {
				p, _ := set.Get(name)
				t.Row(name, p.Scheme, presetSize(p), presetOptions(p), p.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the preset file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				var err error
				if path, err = preset.DefaultPath(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
	return cmd
}

func presetSize(p preset.Preset) string {
	switch {
	case p.Width != 0 || p.Height != 0:
		return fmt.Sprintf("%g×%g", p.Width, p.Height)
	case p.PageSize != "":
		return p.PageSize
	default:
		return "-"
	}
}

func presetOptions(p preset.Preset) string {
	var parts []string
	if p.Rotation != 0 {
		s := fmt.Sprintf("%d°", p.Rotation)
		if p.RotationType != "" {
			s += " " + p.RotationType
		}
		parts = append(parts, s)
	}
	if p.SignatureSize != 0 {
		parts = append(parts, fmt.Sprintf("sig %d", p.SignatureSize))
	}
	if p.Orientation != "" {
		parts = append(parts, p.Orientation)
	}
	if len(p.Formats) > 0 {
		parts = append(parts, strings.Join(p.Formats, ","))
	}
	return strings.Join(parts, " · ")
}
