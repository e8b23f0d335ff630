package mesh_test

import (
	"testing"

	"github.com/katalvlaran/terragraph/mesh"
	"github.com/katalvlaran/terragraph/rng"
)

func BenchmarkSamplePoints(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = mesh.SamplePoints(400, 400, 8, rng.New(42))
	}
}

func BenchmarkBuild(b *testing.B) {
	pts, err := mesh.SamplePoints(400, 400, 8, rng.New(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mesh.Build(pts, 400, 400)
	}
}
