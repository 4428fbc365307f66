package compat

import (
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/SKINIKE/Roll-Write-Foundry/internal/helpers"
)

// Report is what one resolver run did. Warnings are advisory only; the
// build goes ahead regardless, and the link step surfaces any remaining
// problem with its own diagnostics.
type Report struct {
	Warnings []string
	Created  []string // alias paths created during this run
	Skipped  []string // aliases that already existed and were left alone
	// SearchPath is the directory the linker must additionally search.
	// Empty only when the staging directory could not be prepared.
	SearchPath string
}

// Resolver stages compatibility aliases for a fixed set of libraries so
// the link step finds them under the names it expects.
type Resolver struct {
	Metadata   Metadata
	Creator    AliasCreator
	Specs      []AliasSpec
	StagingDir string
}

// Run processes every alias spec independently; no single failure stops
// the others or the build. Safe to re-run across incremental builds:
// the staging directory is only ever added to, existing aliases are
// never rewritten.
func (r *Resolver) Run() Report {
	var report Report

	if err := os.MkdirAll(r.StagingDir, 0755); err != nil {
		report.Warnings = append(report.Warnings, "Failed to prepare compat lib dir: "+err.Error())
		return report
	}

	versionChecked := make(map[string]bool)

	for _, spec := range r.Specs {
		libdir, ok := r.Metadata.Libdir(spec.Package)
		if !ok {
			report.Warnings = append(report.Warnings, "Missing pkg-config libdir for "+spec.Package)
			continue
		}

		if !versionChecked[spec.Package] {
			versionChecked[spec.Package] = true
			if w := r.checkVersion(spec.Package); w != "" {
				report.Warnings = append(report.Warnings, w)
			}
		}

		source := filepath.Join(libdir, spec.Source)
		if !helpers.Exists(source) {
			// Likely version skew in the installed system
			report.Warnings = append(report.Warnings, "Expected library "+spec.Source+" from "+spec.Package+" at "+source)
			continue
		}

		alias := filepath.Join(r.StagingDir, spec.Alias)
		if helpers.Exists(alias) {
			report.Skipped = append(report.Skipped, alias)
			continue
		}

		if err := r.Creator.CreateAlias(source, alias); err != nil {
			// A partial alias set may still let the link succeed for
			// some libraries, so keep going
			report.Warnings = append(report.Warnings, "Failed to create compatibility alias "+alias+" -> "+source+": "+err.Error())
			continue
		}
		report.Created = append(report.Created, alias)
	}

	// Emitted even when nothing was created, so repeated no-op runs
	// keep the link step deterministic
	report.SearchPath = r.StagingDir
	return report
}

// checkVersion warns when the installed package reports a version older
// than the one its name advertises, e.g. webkit2gtk-4.1 resolving to
// 4.0.x. Purely advisory: a failed query or unparseable version means
// nothing can be said, not that something is wrong.
func (r *Resolver) checkVersion(pkg string) string {
	idx := strings.LastIndex(pkg, "-")
	if idx < 0 {
		return ""
	}
	want, err := goversion.NewVersion(pkg[idx+1:])
	if err != nil {
		return ""
	}

	installed, ok := r.Metadata.ModVersion(pkg)
	if !ok {
		return ""
	}
	have, err := goversion.NewVersion(installed)
	if err != nil {
		return ""
	}

	if have.LessThan(want) {
		return "Installed " + pkg + " reports version " + installed + ", older than its name suggests"
	}
	return ""
}
