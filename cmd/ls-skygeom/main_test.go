package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litescript/ls-skygeom/internal/constellation"
	"github.com/litescript/ls-skygeom/internal/planar"
)

func TestParseSegments(t *testing.T) {
	a, b, err := parseSegments("0,0,2,2:0,2, 2,0")
	if err != nil {
		t.Fatalf("parseSegments: %v", err)
	}
	if a != planar.Seg(0, 0, 2, 2) || b != planar.Seg(0, 2, 2, 0) {
		t.Errorf("got %+v, %+v", a, b)
	}

	for _, bad := range []string{"", "0,0,1,1", "0,0,1:1,1,2,2", "0,0,1,x:1,1,2,2", "0,0,1,1:1,1,2,2:3,3,4,4"} {
		if _, _, err := parseSegments(bad); err == nil {
			t.Errorf("parseSegments(%q) succeeded", bad)
		}
	}
}

func TestRunSegment(t *testing.T) {
	tests := []struct {
		arg    string
		strict string
		legacy string
	}{
		{"0,0,2,2:0,2,2,0", "intersect: true", "intersect (legacy collinear rule): true"},
		{"0,0,1,0:2,0,3,0", "intersect: false", "intersect (legacy collinear rule): true"},
		{"0,0,1,0:0,1,1,1", "intersect: false", "intersect (legacy collinear rule): false"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := runSegment(&buf, tt.arg); err != nil {
			t.Fatalf("runSegment(%q): %v", tt.arg, err)
		}
		out := buf.String()
		if !strings.Contains(out, tt.strict+"\n") || !strings.Contains(out, tt.legacy+"\n") {
			t.Errorf("runSegment(%q) = %q", tt.arg, out)
		}
	}
}

func TestRunLocate(t *testing.T) {
	reg, err := constellation.NewRegistry(constellation.DefaultBoundaries())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		arg  string
		want string
	}{
		{"88.793,7.407", "Orion (Ori)"},
		{"05h55m10.3s +07d24m25s", "Orion (Ori)"},
		{"101.287,-16.716", "outside all boundaries"},
		{"0,90", "Ursa Minor (UMi)"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := runLocate(&buf, reg, tt.arg); err != nil {
			t.Fatalf("runLocate(%q): %v", tt.arg, err)
		}
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("runLocate(%q) = %q, want %q", tt.arg, buf.String(), tt.want)
		}
	}

	var buf bytes.Buffer
	if err := runLocate(&buf, reg, "nonsense"); err == nil {
		t.Error("runLocate accepted an unparsable coordinate")
	}
	// Orion's western edge
	if err := runLocate(&buf, reg, "73,5"); err == nil {
		t.Error("runLocate on a boundary should fail")
	}
}

func TestWriteExportFile(t *testing.T) {
	reg, err := constellation.NewRegistry(constellation.DefaultBoundaries())
	if err != nil {
		t.Fatal(err)
	}
	targets := []constellation.Target{
		{Name: "Betelgeuse", Point: constellation.Vertex{RA: 88.793, Dec: 7.407}.Point(), Mag: 0.5},
	}
	results, err := constellation.Classify(context.Background(), reg, targets, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	export := constellation.ExportClassification(results)

	path := filepath.Join(t.TempDir(), "out.json")
	if err := writeExportFile(path, export); err != nil {
		t.Fatalf("writeExportFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded constellation.ClassificationExport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Counts["Ori"] != 1 {
		t.Errorf("counts = %v, want Ori=1", decoded.Counts)
	}

	missing := filepath.Join(t.TempDir(), "no-such-dir", "out.json")
	if err := writeExportFile(missing, export); err == nil || !strings.Contains(err.Error(), "create export file") {
		t.Errorf("writeExportFile into missing dir = %v", err)
	}
}
