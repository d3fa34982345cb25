package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/imposer/pkg/cache"
	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/observability"
	"github.com/matzehuels/imposer/pkg/plan"
)

// Runner executes the pipeline with caching. It holds no per-run state and
// may be shared between goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer uses [cache.DefaultKeyer]; a nil
// cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs load, plan and render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	start := time.Now()
	src, err := Load(opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(start)
	result.Stats.Pages = src.Doc.PageCount()
	if opts.Input != "" {
		r.Logger.Info("loaded document", "path", opts.Input, "pages", result.Stats.Pages,
			"size", []float64{src.Size.Width, src.Size.Height})
	}

	start = time.Now()
	p, planHit, err := r.PlanWithCacheInfo(ctx, opts.Request(src.Doc.PageCount(), src.Size), opts)
	if err != nil {
		return nil, err
	}
	result.Plan = p
	result.Stats.PlanTime = time.Since(start)
	result.Stats.Sheets = len(p.Sheets)
	result.CacheInfo.PlanHit = planHit

	r.Logger.Info("planned imposition",
		"scheme", p.Scheme,
		"pages", p.TotalInputPages,
		"blanks", p.BlanksAdded,
		"sheets", len(p.Sheets),
		"cached", planHit)

	start = time.Now()
	artifacts, hash, renderHit, err := r.RenderWithCacheInfo(ctx, src, p, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.PlanHash = hash
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// PlanWithCacheInfo builds the plan for req, reusing a cached plan when one
// exists. The bool reports a cache hit.
func (r *Runner) PlanWithCacheInfo(ctx context.Context, req impose.Request, opts Options) (*impose.Plan, bool, error) {
	r.applyLogger(&opts)
	key := r.Keyer.PlanKey(PlanKeyOpts(req))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			// A cached plan that no longer verifies is rebuilt.
			if p, err := plan.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, key)
				return p, true, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", key, "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, key)
	}

	hooks := observability.Plan()
	hooks.OnPlanStart(ctx, req.Scheme, req.PageCount)
	start := time.Now()
	p, err := impose.Build(req, impose.WithTracer(opts.Logger.Debug))
	sheets := 0
	if p != nil {
		sheets = len(p.Sheets)
	}
	hooks.OnPlanComplete(ctx, req.Scheme, sheets, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := plan.Marshal(p); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.PlanTTL); err != nil {
			r.Logger.Warn("cache write failed", "key", key, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, key, len(data))
		}
	}
	return p, false, nil
}

// Plan builds the plan for req, discarding cache hit info.
func (r *Runner) Plan(ctx context.Context, req impose.Request, opts Options) (*impose.Plan, error) {
	p, _, err := r.PlanWithCacheInfo(ctx, req, opts)
	return p, err
}

// RenderWithCacheInfo renders p against src in every requested format. The
// returned hash identifies the plan; the bool reports that every artifact
// came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, src *Source, p *impose.Plan, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", false, err
	}
	r.applyLogger(&opts)

	data, err := plan.Marshal(p)
	if err != nil {
		return nil, "", false, err
	}
	planHash := cache.Hash(data)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format, src.Hash))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, key)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, key)
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, planHash, true, nil
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()
	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, src.Doc, p, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format, src.Hash))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, key, len(data))
		}
	}
	return artifacts, planHash, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
