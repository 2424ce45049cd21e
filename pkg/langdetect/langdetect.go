// Package langdetect maps file names to analyzer language tags by extension.
package langdetect

import (
	"path/filepath"
	"strings"
)

// defaultExtensions covers the languages with dedicated analyzers. Anything
// else resolves to the empty string and the caller falls back to generic.
var defaultExtensions = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".py":   "python",
	".java": "java",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
	".hh":   "cpp",
}

// Detector resolves file paths to language tags.
type Detector struct {
	extensions map[string]string
}

// New creates a Detector with the default extension table.
func New() *Detector {
	ext := make(map[string]string, len(defaultExtensions))
	for k, v := range defaultExtensions {
		ext[k] = v
	}
	return &Detector{extensions: ext}
}

// WithOverrides merges user-supplied extension mappings over the defaults.
// Keys are normalized to a leading dot and lower case.
func (d *Detector) WithOverrides(overrides map[string]string) *Detector {
	for ext, lang := range overrides {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		d.extensions[ext] = lang
	}
	return d
}

// Detect returns the language tag for a path, or "" when the extension is
// not mapped.
func (d *Detector) Detect(path string) string {
	return d.extensions[strings.ToLower(filepath.Ext(path))]
}
