package ahc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Verbosity levels understood by the engine's diagnostic output.
const (
	VerbositySilent = 0
	VerbosityMerges = 1
	VerbosityDump   = 2
)

// Config controls a clustering run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric measures the dissimilarity of two elements.
	// Built-in: EuclideanMetric (squared), CityBlockMetric, ChebyshevMetric,
	// PearsonMetric, CosineMetric, MinkowskiMetric. Use DistanceFunc to wrap
	// a custom function. Default: EuclideanMetric.
	Metric DistanceMetric

	// Linkage derives the distance to a freshly merged cluster.
	// WardLinkage requires EuclideanMetric. Default: SingleLinkage.
	Linkage Linkage

	// Verbosity selects diagnostic output: 0 is silent, 1 logs every merge,
	// 2 also dumps the live distance matrix before each merge. Default: 0.
	Verbosity int

	// Logger receives diagnostic output and warnings.
	// Default: a logger writing to stderr with the "ahc" prefix.
	Logger *log.Logger
}

// DefaultConfig returns a Config with squared Euclidean distance and
// single linkage.
func DefaultConfig() Config {
	return Config{
		Metric:  EuclideanMetric{},
		Linkage: SingleLinkage{},
		Logger:  defaultLogger(),
	}
}

func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "ahc"})
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Linkage == nil {
		cfg.Linkage = SingleLinkage{}
	}
	if cfg.Logger == nil {
		cfg.Logger = defaultLogger()
	}
}

// validateConfig checks the verbosity and the metric/linkage pairing.
func validateConfig(cfg *Config) error {
	if cfg.Verbosity < VerbositySilent || cfg.Verbosity > VerbosityDump {
		return fmt.Errorf("ahc: Verbosity must be in [0, 2], got %d: %w", cfg.Verbosity, ErrConfiguration)
	}
	if isWard(cfg.Linkage) && !isSquaredEuclidean(cfg.Metric) {
		return fmt.Errorf("ahc: ward linkage requires squared Euclidean distance, got %T: %w", cfg.Metric, ErrConfiguration)
	}
	return nil
}

func isWard(l Linkage) bool {
	switch l.(type) {
	case WardLinkage, *WardLinkage:
		return true
	}
	return false
}

func isSquaredEuclidean(m DistanceMetric) bool {
	switch m.(type) {
	case EuclideanMetric, *EuclideanMetric:
		return true
	}
	return false
}

// validateFeatures checks the minimum vector length a metric declares.
func validateFeatures(cfg *Config, featureCount int) error {
	if req, ok := cfg.Metric.(featureRequirement); ok && featureCount < req.MinFeatures() {
		return fmt.Errorf("ahc: metric %T needs at least %d features, got %d: %w",
			cfg.Metric, req.MinFeatures(), featureCount, ErrConfiguration)
	}
	return nil
}

var metricsByName = map[string]func(p float64) DistanceMetric{
	"euclidean": func(float64) DistanceMetric { return EuclideanMetric{} },
	"cityblock": func(float64) DistanceMetric { return CityBlockMetric{} },
	"chebyshev": func(float64) DistanceMetric { return ChebyshevMetric{} },
	"pearson":   func(float64) DistanceMetric { return PearsonMetric{} },
	"cosine":    func(float64) DistanceMetric { return CosineMetric{} },
	"minkowski": func(p float64) DistanceMetric { return MinkowskiMetric{P: p} },
}

var linkagesByName = map[string]Linkage{
	"single":   SingleLinkage{},
	"complete": CompleteLinkage{},
	"average":  AverageLinkage{},
	"weighted": WeightedAverageLinkage{},
	"ward":     WardLinkage{},
}

// MetricByName resolves a metric name such as "euclidean" or "pearson".
// The Minkowski exponent defaults to 2.
func MetricByName(name string) (DistanceMetric, error) {
	return metricByName(name, 2)
}

func metricByName(name string, p float64) (DistanceMetric, error) {
	build, ok := metricsByName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("ahc: unknown metric %q (known: %s): %w",
			name, strings.Join(sortedKeys(metricsByName), ", "), ErrConfiguration)
	}
	if p < 1 {
		return nil, fmt.Errorf("ahc: minkowski exponent must be >= 1, got %g: %w", p, ErrConfiguration)
	}
	return build(p), nil
}

// LinkageByName resolves a linkage name such as "single" or "ward".
func LinkageByName(name string) (Linkage, error) {
	l, ok := linkagesByName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("ahc: unknown linkage %q (known: %s): %w",
			name, strings.Join(sortedKeys(linkagesByName), ", "), ErrConfiguration)
	}
	return l, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fileConfig is the YAML form of Config.
type fileConfig struct {
	Metric     string  `yaml:"metric"`
	Linkage    string  `yaml:"linkage"`
	Verbosity  int     `yaml:"verbosity"`
	MinkowskiP float64 `yaml:"minkowski_p"`
}

// ReadConfig decodes a YAML document of the form
//
//	metric: pearson
//	linkage: average
//	verbosity: 1
//	minkowski_p: 3   # only used by the minkowski metric
//
// Missing keys keep their defaults; unknown keys and names are rejected.
// The returned Config uses the default logger.
func ReadConfig(r io.Reader) (Config, error) {
	fc := fileConfig{Metric: "euclidean", Linkage: "single", MinkowskiP: 2}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ahc: decode config: %v: %w", err, ErrConfiguration)
	}

	metric, err := metricByName(fc.Metric, fc.MinkowskiP)
	if err != nil {
		return Config{}, err
	}
	linkage, err := LinkageByName(fc.Linkage)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	cfg.Metric = metric
	cfg.Linkage = linkage
	cfg.Verbosity = fc.Verbosity
	if err := validateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
