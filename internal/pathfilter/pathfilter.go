// Package pathfilter decides which candidate files survive the exclusion
// commands, and matches file names against include patterns.
package pathfilter

import "path/filepath"

// PathFilter holds the excluded-file and excluded-directory sets.
type PathFilter struct {
	excludedFiles map[string]struct{}
	excludedDirs  map[string]struct{}
}

// New creates an empty PathFilter.
func New() *PathFilter {
	return &PathFilter{
		excludedFiles: make(map[string]struct{}),
		excludedDirs:  make(map[string]struct{}),
	}
}

// ExcludeFile adds absolute file paths to the excluded-file set.
func (pf *PathFilter) ExcludeFile(paths ...string) {
	for _, p := range paths {
		pf.excludedFiles[filepath.Clean(p)] = struct{}{}
	}
}

// ExcludeDir adds an absolute directory to the excluded-directory set. Only
// files directly inside dir are affected.
func (pf *PathFilter) ExcludeDir(dir string) {
	pf.excludedDirs[filepath.Clean(dir)] = struct{}{}
}

// IsAllowed reports whether path is neither an excluded file nor a direct
// child of an excluded directory.
func (pf *PathFilter) IsAllowed(path string) bool {
	path = filepath.Clean(path)
	if _, ok := pf.excludedFiles[path]; ok {
		return false
	}
	if _, ok := pf.excludedDirs[filepath.Dir(path)]; ok {
		return false
	}
	return true
}

// FilterPaths returns the allowed paths, preserving order and duplicates.
func (pf *PathFilter) FilterPaths(paths []string) []string {
	allowed := make([]string, 0, len(paths))
	for _, path := range paths {
		if pf.IsAllowed(path) {
			allowed = append(allowed, path)
		}
	}
	return allowed
}

// Len returns the sizes of the excluded-file and excluded-directory sets.
func (pf *PathFilter) Len() (files, dirs int) {
	return len(pf.excludedFiles), len(pf.excludedDirs)
}
