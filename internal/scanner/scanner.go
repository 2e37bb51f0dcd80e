// Package scanner enumerates project files for analysis. It is the only
// component allowed to touch the directory tree; everything downstream works
// on the relative paths it emits.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/castellan/webscope/pkg/config"
)

// FileRecord is one enumerated file. RelPath is relative to the scanned
// root, slash-separated, and never escapes it. Records are immutable after
// creation and live for one analysis pass.
type FileRecord struct {
	RelPath string
	Ext     string // extension without the leading dot, lowercased
}

// Scanner finds source files under a project root.
type Scanner struct {
	config   *config.Config
	matchers []gitignore.Matcher
}

// New creates a file scanner.
func New(cfg *config.Config) *Scanner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Scanner{config: cfg}
}

// findGitRoot walks up from start looking for a .git directory. Returns ""
// when not inside a git repository.
func findGitRoot(start string) string {
	dir := start
	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadExcludePatterns combines config exclude patterns with .gitignore files
// found in the enclosing repository, all parsed as gitignore syntax.
func (s *Scanner) loadExcludePatterns(root string) {
	var patterns []gitignore.Pattern

	for _, p := range s.config.Scan.ExcludePatterns {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}

	if s.config.Scan.Gitignore {
		if gitRoot := findGitRoot(root); gitRoot != "" {
			bfs := osfs.New(gitRoot)
			if gitPatterns, err := gitignore.ReadPatterns(bfs, nil); err == nil {
				patterns = append(patterns, gitPatterns...)
			}
		}
	}

	if len(patterns) > 0 {
		s.matchers = append(s.matchers, gitignore.NewMatcher(patterns))
	}
}

// isExcludedDir checks a single path segment against the exclude_dirs list.
func (s *Scanner) isExcludedDir(name string) bool {
	for _, dir := range s.config.Scan.ExcludeDirs {
		if matched, _ := doublestar.Match(dir, name); matched {
			return true
		}
	}
	return false
}

// isExcluded checks a relative path against the gitignore matchers.
func (s *Scanner) isExcluded(relPath string, isDir bool) bool {
	if len(s.matchers) == 0 {
		return false
	}
	parts := strings.Split(relPath, "/")
	for _, m := range s.matchers {
		if m.Match(parts, isDir) {
			return true
		}
	}
	return false
}

// Enumerate walks root and returns records for regular files whose extension
// is in exts. Paths are relative, slash-separated, and exclude configured
// directories at every depth. Order is traversal order, stable within a run.
// An unreadable root fails the whole enumeration; that is the only fatal
// case.
func (s *Scanner) Enumerate(root string, exts []string) ([]FileRecord, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.ReadDir(absRoot); err != nil {
		return nil, err
	}

	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	s.loadExcludePatterns(absRoot)

	resolvedRoot := absRoot
	if r, err := filepath.EvalSymlinks(absRoot); err == nil {
		resolvedRoot = r
	}

	records := make([]FileRecord, 0, 256)

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: degrade, do not abort the pass.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		// Symlinks that resolve outside the root are skipped entirely.
		if d.Type()&fs.ModeSymlink != 0 {
			resolved, err := filepath.EvalSymlinks(path)
			if err != nil || !isWithinRoot(resolved, resolvedRoot) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			if s.isExcludedDir(d.Name()) || s.isExcluded(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		if s.isExcluded(rel, false) {
			return nil
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if !extSet[ext] {
			return nil
		}

		records = append(records, FileRecord{RelPath: rel, Ext: ext})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return records, nil
}

// isWithinRoot reports whether path is contained in root after symlink
// resolution.
func isWithinRoot(path, root string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absPath = filepath.Clean(absPath)
	root = filepath.Clean(root)
	return absPath == root || strings.HasPrefix(absPath, root+string(filepath.Separator))
}

// Load reads the UTF-8 text of one enumerated file. A failure here is
// per-file: callers skip the file and continue the batch. Content that is
// not valid UTF-8 (binary) is reported as an error the same way.
func Load(root, relPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		return "", err
	}
	if !validText(data) {
		return "", &NotTextError{Path: relPath}
	}
	return string(data), nil
}

// validText rejects content with NUL bytes, the cheap binary heuristic.
func validText(data []byte) bool {
	for _, b := range data {
		if b == 0 {
			return false
		}
	}
	return true
}

// NotTextError indicates a file whose content is not analyzable text.
type NotTextError struct {
	Path string
}

func (e *NotTextError) Error() string {
	return "not a text file: " + e.Path
}
