// Package fileutil reads section text files and discovers chapter
// files on disk.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// Sentinel errors for file operations.
var (
	ErrNoChapterFiles = errors.New("no chapter files found")
	ErrNotAFile       = errors.New("not a regular file")
)

// ReadSection reads a UTF-8 text file and returns its contents with
// surrounding whitespace stripped.
func ReadSection(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading section file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// DiscoverChapters lists the regular files in dir sorted naturally, so
// "chapter2" comes before "chapter10". The caller validates the count.
func DiscoverChapters(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading chapters directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoChapterFiles, dir)
	}
	SortNatural(paths)
	return paths, nil
}

// CheckFiles verifies every path is an existing regular file.
func CheckFiles(paths []string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("chapter file: %w", err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrNotAFile, p)
		}
	}
	return nil
}

// SortNatural sorts paths by the natural key of their file stem:
// embedded digit runs compare numerically, everything else compares
// case-insensitively.
func SortNatural(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return naturalLess(stem(paths[i]), stem(paths[j]))
	})
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// naturalLess compares two stems chunk by chunk, where a chunk is
// either a run of digits or a run of non-digits.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		ca, restA := chunk(a)
		cb, restB := chunk(b)
		if ca != cb {
			da, aNum := digits(ca)
			db, bNum := digits(cb)
			if aNum && bNum {
				if da != db {
					return da < db
				}
			} else {
				la, lb := strings.ToLower(ca), strings.ToLower(cb)
				if la != lb {
					return la < lb
				}
			}
		}
		a, b = restA, restB
	}
	return a == "" && b != ""
}

// chunk splits off the leading digit run or non-digit run.
func chunk(s string) (string, string) {
	runes := []rune(s)
	isDigit := unicode.IsDigit(runes[0])
	for i, r := range runes {
		if unicode.IsDigit(r) != isDigit {
			return string(runes[:i]), string(runes[i:])
		}
	}
	return s, ""
}

// digits parses a chunk as a number; ok is false for non-digit chunks.
func digits(s string) (n int, ok bool) {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
