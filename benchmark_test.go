package ahc

import (
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
)

func generateBenchMatrix(b *testing.B, n, dims int) *Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	names := make([]string, n)
	vectors := make([][]float64, n)
	for i := range vectors {
		names[i] = fmt.Sprintf("e%d", i)
		vectors[i] = make([]float64, dims)
		for j := range vectors[i] {
			vectors[i][j] = rng.Float64() * 100
		}
	}
	features := make([]string, dims)
	for j := range features {
		features[j] = fmt.Sprintf("f%d", j)
	}
	m, err := MatrixFromVectors(names, features, vectors)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func benchEngine(linkage Linkage) *Engine {
	cfg := DefaultConfig()
	cfg.Linkage = linkage
	cfg.Logger = log.New(io.Discard)
	return New(cfg)
}

// --- Run ---

func benchRun(b *testing.B, n int, linkage Linkage) {
	b.Helper()
	m := generateBenchMatrix(b, n, 8)
	e := benchEngine(linkage)
	e.SetData(m)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_Single_50(b *testing.B)   { benchRun(b, 50, SingleLinkage{}) }
func BenchmarkRun_Single_200(b *testing.B)  { benchRun(b, 200, SingleLinkage{}) }
func BenchmarkRun_Average_200(b *testing.B) { benchRun(b, 200, AverageLinkage{}) }
func BenchmarkRun_Ward_200(b *testing.B)    { benchRun(b, 200, WardLinkage{}) }

// --- Optimal leaf ordering ---

func benchSortLeaves(b *testing.B, n int) {
	b.Helper()
	m := generateBenchMatrix(b, n, 8)
	e := benchEngine(AverageLinkage{})
	e.SetData(m)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		if err := e.Run(); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if err := e.SortLeaves(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSortLeaves_100(b *testing.B) { benchSortLeaves(b, 100) }
func BenchmarkSortLeaves_400(b *testing.B) { benchSortLeaves(b, 400) }

// --- Distance metrics ---

func benchMetric(b *testing.B, m DistanceMetric) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	x := make([]float64, 64)
	y := make([]float64, 64)
	for i := range x {
		x[i], y[i] = rng.Float64(), rng.Float64()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Distance(x, y)
	}
}

func BenchmarkMetric_Euclidean(b *testing.B) { benchMetric(b, EuclideanMetric{}) }
func BenchmarkMetric_CityBlock(b *testing.B) { benchMetric(b, CityBlockMetric{}) }
func BenchmarkMetric_Pearson(b *testing.B)   { benchMetric(b, PearsonMetric{}) }
