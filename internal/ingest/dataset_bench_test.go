package ingest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/rshade/lithiumscope/internal/ingest"
)

// generateMining builds count mining records in the on-disk JSON shape.
func generateMining(count int) []byte {
	records := make([]map[string]any, count)
	for i := 0; i < count; i++ {
		records[i] = map[string]any{
			"id":                fmt.Sprintf("mine-%d", i),
			"name":              fmt.Sprintf("Mine %d", i),
			"entityType":        "mining_operation",
			"operator":          "Op",
			"country":           "AU",
			"countryName":       "Australia",
			"latitude":          -30.0,
			"longitude":         120.0,
			"status":            "operational",
			"utilizationRate":   float64(i % 100),
			"confidenceLevel":   "MEDIUM",
			"operationType":     "hard_rock",
			"oreType":           "spodumene",
			"nameplateCapacity": map[string]any{"value": 1000.0 * float64(i), "unit": "tonnes/year"},
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		panic(err)
	}
	return data
}

func benchFS(count int) fstest.MapFS {
	return fstest.MapFS{
		ingest.ManifestFile:   {Data: []byte("schema_version: \"1.0.0\"\nname: bench\nas_of: \"2025-01-01\"\n")},
		ingest.MiningFile:     {Data: generateMining(count)},
		ingest.ProcessingFile: {Data: []byte("[]")},
		ingest.BatteryFile:    {Data: []byte("[]")},
	}
}

// BenchmarkLoadFS_Embedded benchmarks a cold load of the embedded dataset.
func BenchmarkLoadFS_Embedded(b *testing.B) {
	b.ReportAllocs()
	fsys := ingest.EmbeddedFS()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ingest.LoadFS(context.Background(), fsys); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLoadFS_Large benchmarks decoding and validating 10k mining records.
func BenchmarkLoadFS_Large(b *testing.B) {
	b.ReportAllocs()
	fsys := benchFS(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ingest.LoadFS(context.Background(), fsys); err != nil {
			b.Fatal(err)
		}
	}
}
