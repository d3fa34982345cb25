package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/imposer/pkg/pipeline"
)

type renderOpts struct {
	job     jobFlags
	output  string
	formats string
	title   string
	noCache bool
	refresh bool
}

// extensions maps output formats to file suffixes.
var extensions = map[string]string{
	pipeline.FormatJSON: ".json",
	pipeline.FormatSVG:  ".svg",
	pipeline.FormatPDF:  ".pdf",
	pipeline.FormatPNG:  ".png",
	pipeline.FormatDOT:  ".dot",
	pipeline.FormatMap:  ".map.svg",
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [input.pdf]",
		Short: "Render an imposition proof",
		Long: `Plan the imposition and render it: an SVG, PDF or PNG proof showing every
sheet with its pages in place, the plan as JSON, or a sheet map (dot, map).

PDF and PNG output require librsvg (rsvg-convert) on the PATH.`,
		Example: `  imposer render zine.pdf --preset zine -f svg,pdf
  imposer render --scheme 8-up-perfect-bound-sheetwise --pages 32 -f map -o proof
  imposer render --scheme tent-card --pages 2 --rotation 180`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &opts)
		},
	}

	opts.job.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), pdf, png, json, dot, map (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "proof title (default: input name)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	ctx := cmd.Context()
	popts, err := c.jobOptions(cmd, &opts.job, args)
	if err != nil {
		return err
	}
	if opts.formats != "" || len(popts.Formats) == 0 {
		popts.Formats = parseFormats(opts.formats)
	}
	name := jobName(&opts.job, popts)
	popts.Title = opts.title
	if popts.Title == "" {
		popts.Title = name
	}
	popts.Refresh = opts.refresh

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Imposing "+name+"...")
	spinner.Start()
	res, err := runner.Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, name, popts.Formats)
	u := ui{w: cmd.OutOrStdout()}
	u.success("Imposed %s pages onto %s sheets", StyleNumber.Render(strconv.Itoa(res.Plan.TotalInputPages)), StyleNumber.Render(strconv.Itoa(len(res.Plan.Sheets))))
	u.cacheStatus(len(res.Plan.Sheets), res.CacheInfo.PlanHit && res.CacheInfo.RenderHit)
	if res.Plan.BlanksAdded > 0 {
		u.detail("%d blank pages added", res.Plan.BlanksAdded)
	}
	for _, format := range popts.Formats {
		path := paths[format]
		if err := writeOutput(path, res.Artifacts[format]); err != nil {
			return err
		}
		u.file(path)
	}
	return nil
}

// outputPaths assigns a file to each format. A single format with an
// explicit file name is written there as-is; otherwise output (or name) is
// a base path and each format appends its extension.
func outputPaths(output, name string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, name)
	for _, f := range formats {
		paths[f] = base + extensions[f]
	}
	return paths
}

// basePath strips a known format extension from output, falling back to name.
func basePath(output, name string) string {
	if output == "" {
		return name
	}
	// Longest suffix first so "proof.map.svg" loses ".map.svg", not ".svg".
	for _, ext := range []string{".map.svg", ".json", ".svg", ".pdf", ".png", ".dot"} {
		if strings.HasSuffix(output, ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
