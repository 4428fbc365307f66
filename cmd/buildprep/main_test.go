package main

import (
	"reflect"
	"testing"

	"github.com/SKINIKE/Roll-Write-Foundry/internal/compat"
)

func TestFormatReport(t *testing.T) {
	tests := []struct {
		name      string
		report    compat.Report
		porcelain bool
		want      []string
	}{
		{
			name: "directives for the build supervisor",
			report: compat.Report{
				Warnings:   []string{"Missing pkg-config libdir for webkit2gtk-4.1"},
				Created:    []string{"/out/compat-libs/libwebkit2gtk-4.0.so"},
				SearchPath: "/out/compat-libs",
			},
			porcelain: true,
			want: []string{
				"cargo:warning=Missing pkg-config libdir for webkit2gtk-4.1",
				"cargo:rustc-link-search=native=/out/compat-libs",
			},
		},
		{
			name: "human readable",
			report: compat.Report{
				Created:    []string{"/out/compat-libs/libwebkit2gtk-4.0.so"},
				SearchPath: "/out/compat-libs",
			},
			want: []string{
				"Created compatibility alias /out/compat-libs/libwebkit2gtk-4.0.so",
				"Link step will additionally search /out/compat-libs",
			},
		},
		{
			name:      "no-op run still names the search path",
			report:    compat.Report{SearchPath: "/out/compat-libs"},
			porcelain: true,
			want:      []string{"cargo:rustc-link-search=native=/out/compat-libs"},
		},
		{
			name:   "staging failure emits no search path",
			report: compat.Report{Warnings: []string{"Failed to prepare compat lib dir: denied"}},
			want:   []string{"WARNING: Failed to prepare compat lib dir: denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatReport(tt.report, tt.porcelain)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("formatReport() = %v, want %v", got, tt.want)
			}
		})
	}
}
