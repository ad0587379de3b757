// Package dataset loads ordered numeric sample sequences from local files.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFiles expands doublestar glob patterns to regular files. Matches are
// sorted by path so the assembled dataset order is deterministic.
func FindFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, name := range matches {
			info, err := os.Lstat(name)
			if err != nil {
				continue
			}
			if info.Mode().IsRegular() {
				files = append(files, name)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// Load reads samples from the given files in order: one float per line.
// Blank lines and lines starting with '#' are skipped.
func Load(paths []string) ([]float64, error) {
	var samples []float64
	for _, path := range paths {
		fileSamples, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		samples = append(samples, fileSamples...)
	}
	return samples, nil
}

// LoadGlob combines FindFiles and Load.
func LoadGlob(patterns []string) ([]float64, error) {
	files, err := FindFiles(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files matched %v", patterns)
	}
	return Load(files)
}

func loadFile(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var samples []float64
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid sample %q: %w", path, lineNo, line, err)
		}
		samples = append(samples, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
