package codefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName returns the output file name for a prefix group. The empty
// prefix maps to "prefix_.txt".
func FileName(prefix string) string {
	return "prefix_" + prefix + ".txt"
}

// WriteGroup writes one code per line, in acceptance order, to the group's
// file under dir, creating dir if needed. A group of zero codes still
// produces its (empty) file. It returns the path of the written file.
func WriteGroup(dir, prefix string, codes []string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(prefix))

	var b strings.Builder
	for _, code := range codes {
		b.WriteString(code)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ReadCodes reads a previously generated code file: one code per line,
// blank lines ignored.
func ReadCodes(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var codes []string
	for _, line := range strings.Split(string(data), "\n") {
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}
