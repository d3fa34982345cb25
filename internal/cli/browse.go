package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/pipeline"
	"github.com/matzehuels/imposer/pkg/render/sheetmap"
)

var (
	cellPageStyle   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 2)
	cellTurnedStyle = lipgloss.NewStyle().Foreground(colorYellow).Padding(0, 2)
	cellBlankStyle  = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 2)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// SheetBrowser is the bubbletea model for paging through a plan's sheets.
type SheetBrowser struct {
	Plan  *impose.Plan
	Title string
	Sheet int
}

// NewSheetBrowser creates a browser positioned on the first sheet.
func NewSheetBrowser(p *impose.Plan, title string) SheetBrowser {
	return SheetBrowser{Plan: p, Title: title}
}

func (m SheetBrowser) Init() tea.Cmd {
	return nil
}

func (m SheetBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	last := len(m.Plan.Sheets) - 1
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "n", " ":
		if m.Sheet < last {
			m.Sheet++
		}
	case "left", "h", "p":
		if m.Sheet > 0 {
			m.Sheet--
		}
	case "home", "g":
		m.Sheet = 0
	case "end", "G":
		m.Sheet = max(last, 0)
	}
	return m, nil
}

func (m SheetBrowser) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ sheet  g/G first/last  q quit"))
	b.WriteString("\n\n")

	p := m.Plan
	if len(p.Sheets) == 0 {
		b.WriteString(listDimStyle.Render("  no sheets"))
		b.WriteString("\n")
		return b.String()
	}

	s := p.Sheets[m.Sheet]
	header := fmt.Sprintf("Sheet %d/%d", m.Sheet+1, len(p.Sheets))
	if sig := m.signature(); sig != "" {
		header += "  " + listDimStyle.Render(sig)
	}
	b.WriteString(header)
	b.WriteString("\n")

	cells := sheetmap.Cells(s, p.PageWidth, p.PageHeight)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		BorderRow(true).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(cells) {
				return cellPageStyle
			}
			switch text := cells[row][col]; {
			case text == "·":
				return cellBlankStyle
			case strings.HasSuffix(text, "↻"):
				return cellTurnedStyle
			default:
				return cellPageStyle
			}
		})
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %g × %g pt · %d pages · %d blanks added", s.Width, s.Height, p.TotalInputPages, p.BlanksAdded)))
	b.WriteString("\n")
	return b.String()
}

// signature names the signature the current sheet belongs to.
func (m SheetBrowser) signature() string {
	start := 0
	for _, sig := range m.Plan.Signatures {
		end := start + sig.Size/2
		if m.Sheet < end {
			return fmt.Sprintf("signature %d of %d", sig.Index+1, len(m.Plan.Signatures))
		}
		start = end
	}
	return ""
}

type browseOpts struct {
	job     jobFlags
	noCache bool
}

func (c *CLI) browseCommand() *cobra.Command {
	var opts browseOpts

	cmd := &cobra.Command{
		Use:   "browse [input.pdf]",
		Short: "Page through the sheets of a plan in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			src, err := pipeline.Load(popts)
			if err != nil {
				return err
			}
			p, err := runner.Plan(ctx, popts.Request(src.Doc.PageCount(), src.Size), popts)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("%s · %s", jobName(&opts.job, popts), p.Scheme)
			_, err = tea.NewProgram(NewSheetBrowser(p, title), tea.WithContext(ctx), tea.WithAltScreen()).Run()
			return err
		},
	}

	opts.job.register(cmd)
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")
	return cmd
}
