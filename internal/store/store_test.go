package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testData() *EvalData {
	return &EvalData{
		Model:   "redshift_powerlaw",
		Backend: "cpu",
		Params:  map[string]float64{"alpha": 2.7},
		Axis:    "redshift",
		Samples: []float64{0, 0.5, 1},
		Density: []float64{0, 1.2, 0.8},
	}
}

func TestExportJSONRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eval.json")

	if err := ExportJSON(path, testData()); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got EvalData
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}

	if got.Model != "redshift_powerlaw" {
		t.Errorf("expected model redshift_powerlaw, got %s", got.Model)
	}
	if len(got.Density) != 3 {
		t.Errorf("expected 3 density values, got %d", len(got.Density))
	}
	if got.Params["alpha"] != 2.7 {
		t.Errorf("expected alpha 2.7, got %f", got.Params["alpha"])
	}
}

func TestExportJSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSONTo(&buf, testData()); err != nil {
		t.Fatal(err)
	}

	var got EvalData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Backend != "cpu" {
		t.Errorf("expected backend cpu, got %s", got.Backend)
	}
	if !strings.HasPrefix(buf.String(), "{\n  ") {
		t.Errorf("expected indented output, got %q", buf.String()[:8])
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eval.csv")

	if err := ExportCSV(path, testData()); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "redshift,density" {
		t.Errorf("unexpected header %q", lines[0])
	}
}
