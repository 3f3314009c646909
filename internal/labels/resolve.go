package labels

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/visionkit/yolotools/internal/errs"
)

// ImageExtensions is the fixed candidate order used when pairing an
// annotation file with its image. Earlier extensions win.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".webp"}

// ResolveLabelsDir locates the directory holding annotation files.
//
// An explicit override must be an existing directory (errs.KindNotFound
// otherwise, fatal). Without one, root/labels is tried first, then the
// tree under root is walked in lexicographic order and the first
// directory literally named "labels" wins.
func ResolveLabelsDir(root, override string) (string, error) {
	if override != "" {
		if !isDir(override) {
			return "", errs.New(errs.KindNotFound, "labels directory not found: %s", override)
		}
		return override, nil
	}

	candidate := filepath.Join(root, "labels")
	if isDir(candidate) {
		return candidate, nil
	}

	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if path == root || !d.IsDir() {
			return nil
		}
		if d.Name() == "labels" {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", errs.Wrap(errs.KindNotFound, err, "failed to scan %s", root)
	}
	if found == "" {
		return "", errs.New(errs.KindNotFound, "could not locate a 'labels' directory under %s", root)
	}
	return found, nil
}

// FindImageForLabel locates the image paired with an annotation file.
//
// Candidates are tried in order, first hit wins:
//  1. root/<stem><ext> for each extension in ImageExtensions.
//  2. The same under the annotation file's grandparent directory, when
//     the file's parent is literally named "labels".
//  3. A recursive lexicographic search under root, per extension in
//     ImageExtensions order.
//
// A miss is errs.KindResolution: the caller warns and skips this
// annotation file, the batch continues.
func FindImageForLabel(root, labelPath string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(labelPath), filepath.Ext(labelPath))

	dirs := []string{root}
	parent := filepath.Dir(labelPath)
	if filepath.Base(parent) == "labels" {
		grandparent := filepath.Dir(parent)
		if grandparent != root {
			dirs = append(dirs, grandparent)
		}
	}

	for _, dir := range dirs {
		for _, ext := range ImageExtensions {
			candidate := filepath.Join(dir, stem+ext)
			if isFile(candidate) {
				return candidate, nil
			}
		}
	}

	// Fall back to a full tree scan, keeping only the first
	// lexicographic match per extension.
	matches := make(map[string]string)
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name := d.Name()
		for _, ext := range ImageExtensions {
			if name == stem+ext {
				if _, ok := matches[ext]; !ok {
					matches[ext] = path
				}
			}
		}
		return nil
	})
	if walkErr == nil {
		for _, ext := range ImageExtensions {
			if path, ok := matches[ext]; ok {
				return path, nil
			}
		}
	}

	return "", errs.New(errs.KindResolution, "image for annotation not found: %s", stem)
}

// ListLabelFiles returns every *.txt file under labelsDir, recursively,
// in sorted order so runs are reproducible across platforms.
func ListLabelFiles(labelsDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(labelsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Exact-case match: .TXT files are not annotation files.
		if !d.IsDir() && filepath.Ext(path) == ".txt" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "failed to list annotation files under %s", labelsDir)
	}
	sort.Strings(files)
	return files, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
