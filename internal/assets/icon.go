// Package assets makes sure the image assets the packaging toolchain
// insists on are present before the build starts.
package assets

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"

	"github.com/SKINIKE/Roll-Write-Foundry/internal/helpers"
)

// placeholderIcon is a 1x1 transparent PNG. It gets written to
// icons/icon.png when the application does not ship an icon yet,
// because the packaging toolchain refuses to run without one.
const placeholderIcon = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z/C/HwAHAAL/3LjXLwAAAABJRU5ErkJggg=="

// IconRelPath is where the packaging toolchain expects the application
// icon, relative to the manifest directory
const IconRelPath = "icons/icon.png"

// EnsurePlaceholderIcon makes sure <manifestDir>/icons/icon.png exists,
// writing the embedded placeholder if it does not. An icon that is
// already there is left untouched. Returns error; any error here means
// the build must not proceed.
func EnsurePlaceholderIcon(manifestDir string) error {
	return ensureIcon(filepath.Join(manifestDir, filepath.FromSlash(IconRelPath)), placeholderIcon)
}

func ensureIcon(iconPath string, payload string) error {
	if helpers.Exists(iconPath) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(iconPath), 0755); err != nil {
		return errors.New("failed to create icon directory: " + err.Error())
	}

	// The payload is compiled in, so a decode failure means this program
	// itself is broken, not that the build environment is
	bytes, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return errors.New("placeholder icon base64 failed to decode: " + err.Error())
	}

	if err := os.WriteFile(iconPath, bytes, 0644); err != nil {
		return errors.New("failed to write placeholder icon: " + err.Error())
	}

	return nil
}
