package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/pipeline"
	"github.com/matzehuels/imposer/pkg/plan"
	"github.com/matzehuels/imposer/pkg/render/sheetmap"
)

type planOpts struct {
	job     jobFlags
	output  string
	json    bool
	sheets  bool
	noCache bool
}

func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan [input.pdf]",
		Short: "Compute an imposition plan",
		Long: `Compute the imposition plan for a PDF, or for a blank document of --pages
pages, and print a summary. The plan itself can be written as JSON.`,
		Example: `  imposer plan --scheme booklet --pages 12 --sheets
  imposer plan book.pdf --scheme signature --signature-size 20 -o book.plan.json
  imposer plan --preset zine --pages 8 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args, &opts)
		},
	}

	opts.job.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the plan as JSON to this file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the plan as JSON instead of a summary")
	cmd.Flags().BoolVar(&opts.sheets, "sheets", false, "print the layout of every sheet")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")

	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, args []string, opts *planOpts) error {
	ctx := cmd.Context()
	popts, err := c.jobOptions(cmd, &opts.job, args)
	if err != nil {
		return err
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	src, err := pipeline.Load(popts)
	if err != nil {
		return err
	}
	p, hit, err := runner.PlanWithCacheInfo(ctx, popts.Request(src.Doc.PageCount(), src.Size), popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Planned %d sheets", len(p.Sheets)))

	out := cmd.OutOrStdout()
	if opts.json {
		return plan.WriteJSON(p, out)
	}

	u := ui{w: out}
	u.success("Planned %s", StyleNumber.Render(p.Scheme))
	u.cacheStatus(len(p.Sheets), hit)
	fmt.Fprintln(out)
	u.summary(plan.Summarize(p))

	if len(p.Signatures) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, signatureTable(p))
	}
	if opts.sheets && len(p.Sheets) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, sheetTable(p))
	}

	if opts.output != "" {
		if err := plan.ExportJSON(p, opts.output); err != nil {
			return err
		}
		fmt.Fprintln(out)
		u.file(opts.output)
		u.nextStep("Check it later with", "imposer verify "+opts.output)
	}
	return nil
}

func signatureTable(p *impose.Plan) string {
	t := newTable("Signature", "Pages", "Size", "Sheets")
	for _, sig := range p.Signatures {
		t.Row(
			strconv.Itoa(sig.Index+1),
			fmt.Sprintf("%d–%d", sig.Base+1, sig.Base+sig.Size),
			strconv.Itoa(sig.Size),
			strconv.Itoa(sig.Size/2),
		)
	}
	return t.Render()
}

// sheetTable lists every sheet with its rows top-down, separated by "/".
func sheetTable(p *impose.Plan) string {
	t := newTable("Sheet", "Layout (top row first)")
	for i, s := range p.Sheets {
		cells := sheetmap.Cells(s, p.PageWidth, p.PageHeight)
		rows := make([]string, len(cells))
		for r, row := range cells {
			rows[r] = strings.Join(row, "  ")
		}
		t.Row(strconv.Itoa(i+1), strings.Join(rows, " / "))
	}
	return t.Render()
}

func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <plan.json>",
		Short: "Check a saved plan for consistency",
		Long: `Read a plan written by "imposer plan -o" and check that every page is placed
exactly once, rotations are valid and sheet sizes agree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.ImportJSON(args[0])
			if err != nil {
				return err
			}
			u := ui{w: cmd.OutOrStdout()}
			u.success("%s is a valid %s plan", args[0], p.Scheme)
			u.summary(plan.Summarize(p))
			return nil
		},
	}
}
