package helpers

import (
	"os"
	"os/exec"
)

// PrintError prints error, prefixed by a string that explains the context
func PrintError(context string, e error) {
	if e != nil {
		os.Stderr.WriteString("ERROR " + context + ": " + e.Error() + "\n")
	}
}

// Exists returns true if the file or directory at the given path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsCommandAvailable returns true if a file is on the $PATH
func IsCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
