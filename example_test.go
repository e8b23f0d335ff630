package terragraph_test

import (
	"fmt"

	"github.com/katalvlaran/terragraph"
)

// ExampleGenerate builds a small volcanic island and inspects the outputs a
// renderer would consume.
func ExampleGenerate() {
	cfg := terragraph.DefaultConfig("terragraph-docs")
	cfg.Width, cfg.Height = 160, 160
	cfg.MinDist = 8

	m, err := terragraph.Generate(cfg)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println("cells sampled:", m.Mesh.Len() > 100)
	fmt.Println("sea level in (0,1):", m.SeaLevel > 0 && m.SeaLevel < 1)
	fmt.Println("has land:", m.LandFraction() > 0)
	fmt.Println("has shoreline:", len(m.Coastlines) > 0)

	// Output:
	// cells sampled: true
	// sea level in (0,1): true
	// has land: true
	// has shoreline: true
}

// ExampleGenerate_hooks watches the pipeline stages go by.
func ExampleGenerate_hooks() {
	cfg := terragraph.DefaultConfig("stage-walk")
	cfg.Width, cfg.Height = 120, 120
	cfg.MinDist = 10

	_, err := terragraph.Generate(cfg,
		terragraph.WithStageHook(func(stage string) { fmt.Println("stage:", stage) }))
	if err != nil {
		fmt.Println("generate:", err)
	}

	// Output:
	// stage: sample
	// stage: mesh
	// stage: elevation
	// stage: classify
	// stage: coastline
	// stage: rivers
}
