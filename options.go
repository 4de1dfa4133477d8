package watrix

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/AlexWan0/succinct/fid"
)

// LayerBuilder builds the index for one bit-plane.
// depth is 0 for the most significant plane.
type LayerBuilder func(depth int, bits []bool) (fid.Index, error)

// NaiveLayers builds in-memory fid.Naive layers. It never fails.
func NaiveLayers(_ int, bits []bool) (fid.Index, error) {
	return fid.FromBools(bits), nil
}

// MappedLayers builds fid.Mapped layers, one subdirectory of dir per layer.
// dir must exist.
func MappedLayers(dir string) LayerBuilder {
	return func(depth int, bits []bool) (fid.Index, error) {
		m, err := fid.NewMapped(filepath.Join(dir, fmt.Sprintf("layer%d", depth)), bits)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

type config struct {
	layerBuilder LayerBuilder
	logger       *slog.Logger
}

func defaultConfig() *config {
	return &config{
		layerBuilder: NaiveLayers,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures Build.
type Option func(*config)

// WithLayerBuilder selects the index implementation used for each layer.
// The default is NaiveLayers.
func WithLayerBuilder(lb LayerBuilder) Option {
	return func(c *config) {
		c.layerBuilder = lb
	}
}

// WithLogger sets the logger build statistics are reported to.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
