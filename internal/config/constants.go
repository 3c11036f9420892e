package config

// Version is the current sinepia version.
var Version = "0.1.0"

// SourceFileExt is the canonical extension for surface-syntax scripts.
const SourceFileExt = ".sin"

// SourceFileExtensions are all recognized source file extensions: the
// canonical ".sin" and the longer ".sinepia" alias.
var SourceFileExtensions = []string{".sin", ".sinepia"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates whether `sinepia run` was started with
// SINEPIA_TEST_MODE=1, set once at startup.
var IsTestMode = false
