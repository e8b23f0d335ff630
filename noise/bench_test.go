package noise_test

import (
	"testing"

	"github.com/katalvlaran/terragraph/noise"
)

func BenchmarkValueAt(b *testing.B) {
	src := noise.NewValue(7)
	for i := 0; i < b.N; i++ {
		_ = src.At(float64(i)*0.137, float64(i)*0.291)
	}
}

func BenchmarkFBM(b *testing.B) {
	src := noise.NewValue(7)
	p := noise.DefaultFBMParams()
	for i := 0; i < b.N; i++ {
		_ = noise.FBM(src, float64(i)*0.137, float64(i)*0.291, p)
	}
}

func BenchmarkWarpFBM(b *testing.B) {
	src := noise.NewOpenSimplex(7)
	p := noise.DefaultFBMParams()
	for i := 0; i < b.N; i++ {
		_ = noise.WarpFBM(src, float64(i)*0.137, float64(i)*0.291, p, 10)
	}
}
