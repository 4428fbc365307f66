package compat

import (
	"os"
	"runtime"

	"github.com/otiai10/copy"
)

// AliasCreator creates one alias file that resolves to the same content
// as source under the alias name.
type AliasCreator interface {
	CreateAlias(source string, alias string) error
}

// SymlinkCreator aliases by symbolic link, for platforms whose
// filesystems support link files.
type SymlinkCreator struct{}

func (SymlinkCreator) CreateAlias(source string, alias string) error {
	return os.Symlink(source, alias)
}

// CopyCreator aliases by copying the library bytes, for platforms
// without symlink support.
type CopyCreator struct{}

func (CopyCreator) CreateAlias(source string, alias string) error {
	return copy.Copy(source, alias)
}

// DefaultCreator returns the alias creator suitable for the build host
func DefaultCreator() AliasCreator {
	if runtime.GOOS == "windows" {
		return CopyCreator{}
	}
	return SymlinkCreator{}
}
