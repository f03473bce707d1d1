package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/jetstream/internal/render"
)

func TestEnsureOutdir(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "outdir")
		if err := ensureOutdir(dir); err != nil {
			t.Fatalf("ensureOutdir: %v", err)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("outdir was not created: %v", err)
		}
	})

	t.Run("accepts existing directory", func(t *testing.T) {
		if err := ensureOutdir(t.TempDir()); err != nil {
			t.Errorf("ensureOutdir: %v", err)
		}
	})

	t.Run("rejects file by that name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "outdir")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := ensureOutdir(path); err == nil {
			t.Error("ensureOutdir accepted a regular file")
		}
	})
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    render.Area
		wantErr bool
	}{
		{
			name: "default area",
			in:   "-180,180,-70,74",
			want: render.Area{West: -180, East: 180, South: -70, North: 74},
		},
		{
			name: "north america with spaces",
			in:   "-134, -74, 26, 52",
			want: render.Area{West: -134, East: -74, South: 26, North: 52},
		},
		{name: "too few fields", in: "-180,180,-70", wantErr: true},
		{name: "not numbers", in: "w,e,s,n", wantErr: true},
		{name: "east west swapped", in: "180,-180,-70,74", wantErr: true},
		{name: "north south swapped", in: "-180,180,74,-70", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArea(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseArea(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArea(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseArea(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapTitle(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{level: 250, want: "Jet Stream 2014-01-01"},
		{level: 500, want: "Winds 500 mb 2014-01-01"},
		{level: 1000, want: "Winds 1000 mb 2014-01-01"},
	}

	for _, tt := range tests {
		if got := mapTitle(tt.level, "2014-01-01"); got != tt.want {
			t.Errorf("mapTitle(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
