// Package ingest loads the static lithium supply-chain dataset into a
// supplychain.Repository.
//
// A dataset is a directory (or fs.FS) holding a manifest.yaml plus one JSON
// array per entity kind. The built-in dataset is embedded in the binary and
// loaded at most once per process; alternative datasets are read from disk.
package ingest

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/lithiumscope/internal/logging"
	"github.com/rshade/lithiumscope/internal/supplychain"
)

// Dataset file names.
const (
	ManifestFile   = "manifest.yaml"
	MiningFile     = "mining-operations.json"
	ProcessingFile = "processing-facilities.json"
	BatteryFile    = "battery-manufacturing.json"
)

// SupportedSchemaConstraint is the manifest schema_version range this build reads.
const SupportedSchemaConstraint = "^1.0"

//go:embed data/manifest.yaml data/*.json
var embedded embed.FS

// Manifest describes a dataset snapshot.
type Manifest struct {
	SchemaVersion string `yaml:"schema_version" json:"schemaVersion"`
	Name          string `yaml:"name"           json:"name"`
	AsOf          string `yaml:"as_of"          json:"asOf"`
}

// Dataset is a loaded manifest together with its repository.
type Dataset struct {
	Manifest   Manifest
	Repository *supplychain.Repository
}

// EmbeddedFS returns the dataset compiled into the binary.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// Only possible if the embed directive above changes.
		panic(fmt.Sprintf("embedded dataset: %v", err))
	}
	return sub
}

//nolint:gochecknoglobals // Process-wide memoised embedded dataset.
var loadDefault = sync.OnceValues(func() (*Dataset, error) {
	return LoadFS(context.Background(), EmbeddedFS())
})

// Default returns the embedded dataset, decoding it on first use.
func Default() (*Dataset, error) {
	return loadDefault()
}

// MustDefault is Default for callers that treat a broken embedded dataset as
// a build defect.
func MustDefault() *Dataset {
	ds, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded dataset is invalid: %v", err))
	}
	return ds
}

// Load returns the dataset in dir, or the embedded dataset when dir is empty.
func Load(ctx context.Context, dir string) (*Dataset, error) {
	if dir == "" {
		logging.FromContext(ctx).Debug().
			Str("component", "ingest").
			Str("operation", "load_dataset").
			Msg("using embedded dataset")
		return Default()
	}
	return LoadDir(ctx, dir)
}

// LoadDir loads a dataset directory from disk.
func LoadDir(ctx context.Context, dir string) (*Dataset, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "ingest").
		Str("operation", "load_dataset").
		Str("dataset_dir", dir).
		Msg("loading dataset directory")

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dataset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset path %s is not a directory", dir)
	}

	return LoadFS(ctx, os.DirFS(dir))
}

// LoadFS reads the manifest, decodes the three collections in
// parallel, validates every record and builds the repository.
func LoadFS(ctx context.Context, fsys fs.FS) (*Dataset, error) {
	log := logging.FromContext(ctx)

	manifest, err := readManifest(fsys)
	if err != nil {
		log.Error().
			Str("component", "ingest").
			Err(err).
			Msg("failed to read dataset manifest")
		return nil, err
	}

	var (
		mining     []supplychain.MiningOperation
		processing []supplychain.ProcessingFacility
		battery    []supplychain.BatteryManufacturing
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return decodeCollection(gCtx, fsys, MiningFile, &mining) })
	g.Go(func() error { return decodeCollection(gCtx, fsys, ProcessingFile, &processing) })
	g.Go(func() error { return decodeCollection(gCtx, fsys, BatteryFile, &battery) })
	if err = g.Wait(); err != nil {
		log.Error().
			Str("component", "ingest").
			Err(err).
			Msg("failed to decode dataset")
		return nil, err
	}

	if err = validateRecords(MiningFile, supplychain.EntityMining, mining, miningSite); err != nil {
		return nil, err
	}
	if err = validateRecords(ProcessingFile, supplychain.EntityProcessing, processing, processingSite); err != nil {
		return nil, err
	}
	if err = validateRecords(BatteryFile, supplychain.EntityBattery, battery, batterySite); err != nil {
		return nil, err
	}

	repo := supplychain.NewRepository(mining, processing, battery)

	log.Debug().
		Str("component", "ingest").
		Str("dataset", manifest.Name).
		Str("schema_version", manifest.SchemaVersion).
		Int("mining_count", len(mining)).
		Int("processing_count", len(processing)).
		Int("battery_count", len(battery)).
		Msg("dataset loaded successfully")

	return &Dataset{Manifest: manifest, Repository: repo}, nil
}

func readManifest(fsys fs.FS) (Manifest, error) {
	var m Manifest

	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return m, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}
	if err = yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}

	v, err := semver.NewVersion(m.SchemaVersion)
	if err != nil {
		return m, fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedSchema, m.SchemaVersion)
	}
	constraint, err := semver.NewConstraint(SupportedSchemaConstraint)
	if err != nil {
		return m, fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return m, fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SupportedSchemaConstraint)
	}

	return m, nil
}

func decodeCollection[T any](ctx context.Context, fsys fs.FS, name string, out *[]T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	var records []T
	if err = json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	if records == nil {
		records = []T{}
	}

	logging.FromContext(ctx).Debug().
		Str("component", "ingest").
		Str("operation", "decode_collection").
		Str("file", name).
		Int("data_size_bytes", len(data)).
		Int("record_count", len(records)).
		Msg("collection decoded")

	*out = records
	return nil
}
