package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/core/rotation"
	"github.com/matzehuels/imposer/pkg/errors"
	"github.com/matzehuels/imposer/pkg/pipeline"
	"github.com/matzehuels/imposer/pkg/preset"
)

// jobFlags are the flags that describe an imposition job. They are shared
// by plan, render and browse.
type jobFlags struct {
	scheme        string
	preset        string
	pages         int
	pageSize      string
	rotation      int
	rotationType  string
	signatureSize int
	orientation   string
}

func (f *jobFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.scheme, "scheme", "s", "", "imposition scheme (see: imposer schemes)")
	fl.StringVarP(&f.preset, "preset", "p", "", "named preset (see: imposer presets)")
	fl.IntVarP(&f.pages, "pages", "n", 0, "page count of a blank proof (when no input PDF is given)")
	fl.StringVar(&f.pageSize, "page-size", "", "source page size: a name (a5, letter, ...) or WIDTHxHEIGHT in points")
	fl.IntVar(&f.rotation, "rotation", 0, "rotate pages by 0 or 180 degrees")
	fl.StringVar(&f.rotationType, "rotation-type", "", "rows to rotate: top or bottom (default depends on scheme)")
	fl.IntVar(&f.signatureSize, "signature-size", 0, "pages per signature (signature scheme; default 16)")
	fl.StringVar(&f.orientation, "orientation", "", "2-up sheet orientation: landscape or portrait")

	_ = cmd.RegisterFlagCompletionFunc("scheme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return impose.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("page-size", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return preset.PageSizeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("rotation-type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(rotation.TypeTop), string(rotation.TypeBottom)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// jobOptions resolves a preset, then applies explicitly set flags on top.
// args holds at most the input PDF.
func (c *CLI) jobOptions(cmd *cobra.Command, f *jobFlags, args []string) (pipeline.Options, error) {
	var opts pipeline.Options
	fl := cmd.Flags()

	if f.preset != "" {
		set, err := c.presets()
		if err != nil {
			return opts, err
		}
		p, err := set.Get(f.preset)
		if err != nil {
			return opts, err
		}
		size, err := p.Size()
		if err != nil {
			return opts, err
		}
		opts.Scheme = p.Scheme
		opts.Options = p.Options()
		opts.PageSize = size
		opts.Formats = p.Formats
		c.Logger.Debug("loaded preset", "name", p.Name, "scheme", p.Scheme)
	}

	if fl.Changed("scheme") || opts.Scheme == "" {
		opts.Scheme = f.scheme
	}
	if fl.Changed("rotation") {
		opts.Options.Rotation = f.rotation
	}
	if fl.Changed("rotation-type") {
		opts.Options.RotationType = rotation.Type(f.rotationType)
	}
	if fl.Changed("signature-size") {
		opts.Options.SignatureSize = f.signatureSize
	}
	if fl.Changed("orientation") {
		opts.Options.Orientation = f.orientation
	}
	if fl.Changed("page-size") {
		size, err := preset.ParsePageSize(f.pageSize)
		if err != nil {
			return opts, err
		}
		opts.PageSize = size
	}

	opts.Pages = f.pages
	if len(args) > 0 {
		opts.Input = args[0]
	}
	opts.Logger = c.Logger

	if opts.Scheme == "" {
		return opts, errors.New(errors.ErrCodeInvalidInput, "a scheme is required: pass --scheme or --preset")
	}
	return opts, nil
}

// jobName names outputs: the input file stem, else the preset, else the scheme.
func jobName(f *jobFlags, opts pipeline.Options) string {
	switch {
	case opts.Input != "":
		base := filepath.Base(opts.Input)
		return strings.TrimSuffix(base, filepath.Ext(base))
	case f.preset != "":
		return f.preset
	default:
		return fmt.Sprintf("%s-%d", opts.Scheme, opts.Pages)
	}
}
