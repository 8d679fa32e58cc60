// Package fitscape synthesizes genotype-to-phenotype fitness landscapes for
// forward-time viral evolution engines: per-site additive effects plus
// pairwise epistatic coefficients, installed into a trait slot of the
// population engine.
package fitscape

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fitscape/internal/engine"
	"fitscape/internal/landscape"
	"fitscape/internal/model"
	"fitscape/internal/storage"
)

// Conventional trait slots for the two-landscape HIV setup.
const (
	TraitReplication = 0
	TraitResistance  = 1
)

const (
	defaultGenomeLength = 10000
	defaultTraitCount   = 2
	defaultDBPath       = "fitscape.db"
)

type RegionSpec struct {
	Name  string
	Start int
	End   int
}

type Options struct {
	StoreKind    string
	DBPath       string
	GenomeLength int
	TraitCount   int
	Regions      []RegionSpec
}

type Client struct {
	store storage.Store
	eng   engine.TraitEngine
}

// SynthesisRequest drives one landscape synthesis. A nil Params means the
// default statistical parameters; an empty Region means the env region.
type SynthesisRequest struct {
	Trait  int
	Region string
	Seed   int64
	Params *model.SynthesisParams
}

type SynthesisSummary struct {
	ID             string
	TraitIndex     int
	GenomeLength   int
	Seed           int64
	SelectedSites  int
	EpistaticTerms int
}

// New builds a Client backed by the in-memory reference engine.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.GenomeLength == 0 {
		opts.GenomeLength = defaultGenomeLength
	}
	if opts.TraitCount == 0 {
		opts.TraitCount = defaultTraitCount
	}
	eng, err := engine.NewSimEngine(opts.GenomeLength, opts.TraitCount)
	if err != nil {
		return nil, err
	}
	for _, region := range opts.Regions {
		if err := eng.DefineRegion(region.Name, region.Start, region.End); err != nil {
			return nil, err
		}
	}
	return NewWithEngine(ctx, opts, eng)
}

// NewWithEngine builds a Client that drives a caller-supplied engine, e.g. a
// full population simulator.
func NewWithEngine(ctx context.Context, opts Options, eng engine.TraitEngine) (*Client, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if opts.DBPath == "" {
		opts.DBPath = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, opts.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return &Client{store: store, eng: eng}, nil
}

func (c *Client) Engine() engine.TraitEngine {
	return c.eng
}

// Synthesize builds one trait landscape, installs it into the engine and
// archives the result. The seed fully determines the landscape.
func (c *Client) Synthesize(ctx context.Context, req SynthesisRequest) (SynthesisSummary, error) {
	cfg := requestConfig(req)
	rng := rand.New(rand.NewSource(req.Seed))

	ls, err := landscape.Build(c.eng, cfg, rng)
	if err != nil {
		return SynthesisSummary{}, err
	}

	record := model.LandscapeRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:           uuid.NewString(),
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339Nano),
		TraitIndex:   ls.TraitIndex,
		GenomeLength: len(ls.Effects),
		Region:       cfg.Region,
		Seed:         req.Seed,
		Params:       cfg.Params,
		Effects:      ls.Effects,
		Terms:        ls.Terms,
	}
	if err := c.store.SaveLandscape(ctx, record); err != nil {
		return SynthesisSummary{}, fmt.Errorf("archive landscape: %w", err)
	}

	return summarize(record), nil
}

// SynthesizeAll builds several trait landscapes in one call, one goroutine
// per trait slot. Requests must target distinct slots; rebuilding the same
// slot concurrently is not a supported usage.
func (c *Client) SynthesizeAll(ctx context.Context, reqs []SynthesisRequest) ([]SynthesisSummary, error) {
	seen := make(map[int]bool, len(reqs))
	for _, req := range reqs {
		if seen[req.Trait] {
			return nil, fmt.Errorf("duplicate trait slot %d in synthesis batch", req.Trait)
		}
		seen[req.Trait] = true
	}

	summaries := make([]SynthesisSummary, len(reqs))
	group, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		group.Go(func() error {
			summary, err := c.Synthesize(ctx, req)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *Client) Landscapes(ctx context.Context, limit int) ([]model.LandscapeRecord, error) {
	return c.store.ListLandscapes(ctx, limit)
}

func (c *Client) Landscape(ctx context.Context, id string) (model.LandscapeRecord, bool, error) {
	return c.store.GetLandscape(ctx, id)
}

func (c *Client) Reset(ctx context.Context) error {
	return c.store.Reset(ctx)
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func requestConfig(req SynthesisRequest) landscape.Config {
	cfg := landscape.DefaultConfig()
	cfg.TraitIndex = req.Trait
	if req.Region != "" {
		cfg.Region = req.Region
	}
	if req.Params != nil {
		cfg.Params = *req.Params
	}
	return cfg
}

func summarize(record model.LandscapeRecord) SynthesisSummary {
	selected := 0
	for _, effect := range record.Effects {
		if effect != 0 {
			selected++
		}
	}
	return SynthesisSummary{
		ID:             record.ID,
		TraitIndex:     record.TraitIndex,
		GenomeLength:   record.GenomeLength,
		Seed:           record.Seed,
		SelectedSites:  selected,
		EpistaticTerms: len(record.Terms),
	}
}
