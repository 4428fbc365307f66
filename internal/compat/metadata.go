package compat

import (
	"os/exec"
	"strings"
)

// Metadata looks up installed-package information from the system's
// package metadata. A false return means the package is not known to
// the metadata tool, which is an expected condition, not an error; the
// runtime library may still be present under a different mechanism.
type Metadata interface {
	// Libdir returns the directory the package installs its libraries to
	Libdir(pkg string) (string, bool)
	// ModVersion returns the version of the installed package
	ModVersion(pkg string) (string, bool)
}

// PkgConfig queries package metadata by shelling out to pkg-config or a
// compatible replacement such as pkgconf.
type PkgConfig struct {
	// Tool is the executable to invoke, "pkg-config" if empty
	Tool string
}

func (p PkgConfig) Libdir(pkg string) (string, bool) {
	return p.query("--variable=libdir", pkg)
}

func (p PkgConfig) ModVersion(pkg string) (string, bool) {
	return p.query("--modversion", pkg)
}

func (p PkgConfig) query(args ...string) (string, bool) {
	tool := p.Tool
	if tool == "" {
		tool = "pkg-config"
	}

	out, err := exec.Command(tool, args...).Output()
	if err != nil {
		// Covers both a missing tool and a non-zero exit
		return "", false
	}

	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
