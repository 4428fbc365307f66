// Package config resolves where buildprep reads from and writes to,
// from command line flags, the build supervisor's environment and an
// optional buildprep.ini next to the manifest.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/ini.v1"

	"github.com/SKINIKE/Roll-Write-Foundry/internal/compat"
	"github.com/SKINIKE/Roll-Write-Foundry/internal/helpers"
)

// FileName is the optional per-project configuration file, looked up in
// the manifest directory
const FileName = "buildprep.ini"

type Config struct {
	ManifestDir string // root the icon asset lives under
	OutDir      string // build-output root; the staging directory lives beneath it
	PkgConfig   string // package metadata query tool

	// ExtraAliases are additions from the configuration file. The
	// built-in table is always processed and cannot be overridden.
	ExtraAliases []compat.AliasSpec
}

// StagingDir returns the build-scoped directory alias files are staged in
func (c Config) StagingDir() string {
	return filepath.Join(c.OutDir, "compat-libs")
}

// Aliases returns the built-in alias table followed by any additions
// from the configuration file
func (c Config) Aliases() []compat.AliasSpec {
	return append(compat.BuiltinAliases(), c.ExtraAliases...)
}

// Load builds the effective configuration. Flag values (may be empty)
// win over environment variables, which win over buildprep.ini, which
// wins over the defaults.
func Load(manifestFlag string, outFlag string) (Config, error) {
	var c Config

	c.ManifestDir = firstNonEmpty(manifestFlag, os.Getenv("CARGO_MANIFEST_DIR"))
	if c.ManifestDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return c, err
		}
		c.ManifestDir = wd
	}

	c.OutDir = firstNonEmpty(outFlag, os.Getenv("OUT_DIR"))
	c.PkgConfig = os.Getenv("PKG_CONFIG")

	if err := c.mergeFile(filepath.Join(c.ManifestDir, FileName)); err != nil {
		return c, err
	}

	if c.OutDir == "" {
		// Outside the build supervisor there is no OUT_DIR; stage under
		// the user cache so plain buildprep runs still work
		c.OutDir = filepath.Join(xdg.CacheHome, "buildprep")
	}
	if c.PkgConfig == "" {
		c.PkgConfig = "pkg-config"
	}

	return c, nil
}

func (c *Config) mergeFile(path string) error {
	if !helpers.Exists(path) {
		return nil
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return errors.New("could not read " + path + ": " + err.Error())
	}

	if c.OutDir == "" {
		c.OutDir = cfg.Section("paths").Key("out_dir").String()
	}
	if c.PkgConfig == "" {
		c.PkgConfig = cfg.Section("tools").Key("pkg_config").String()
	}

	// [aliases] adds entries to the built-in table, one per key:
	//   <alias file> = <package>:<source file>
	for _, key := range cfg.Section("aliases").Keys() {
		parts := strings.SplitN(key.String(), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return errors.New("malformed alias entry for " + key.Name() + " in " + path + ", want <package>:<source file>")
		}
		c.ExtraAliases = append(c.ExtraAliases, compat.AliasSpec{
			Package: parts[0],
			Source:  parts[1],
			Alias:   key.Name(),
		})
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
