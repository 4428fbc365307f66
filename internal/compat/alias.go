// Package compat papers over shared-library naming differences on Linux
// systems. Newer distributions ship only the 4.1-versioned webkit2gtk
// shared objects, while the link step still asks for the 4.0 names; we
// stage aliases under the expected names so linking succeeds.
package compat

// AliasSpec describes one compatibility alias: the library file we
// expect the package to provide, and the name the linker will look for
// instead.
type AliasSpec struct {
	Package string // package that owns the library, as known to pkg-config
	Source  string // file name the installed system actually provides
	Alias   string // file name the linker expects to find
}

// BuiltinAliases returns the fixed alias table: webkit2gtk and
// javascriptcoregtk (the script engine webkit2gtk depends on), each
// with the unversioned and the major-version-suffixed shared object.
func BuiltinAliases() []AliasSpec {
	return []AliasSpec{
		{Package: "webkit2gtk-4.1", Source: "libwebkit2gtk-4.1.so", Alias: "libwebkit2gtk-4.0.so"},
		{Package: "webkit2gtk-4.1", Source: "libwebkit2gtk-4.1.so.0", Alias: "libwebkit2gtk-4.0.so.0"},
		{Package: "javascriptcoregtk-4.1", Source: "libjavascriptcoregtk-4.1.so", Alias: "libjavascriptcoregtk-4.0.so"},
		{Package: "javascriptcoregtk-4.1", Source: "libjavascriptcoregtk-4.1.so.0", Alias: "libjavascriptcoregtk-4.0.so.0"},
	}
}
