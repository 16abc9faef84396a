package goroutine

import "strings"

// internalPaths returns the "internal/...go:line" frames of a raw stack trace.
func internalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}

		end := strings.IndexByte(line[idx:], ' ')
		if end == -1 {
			end = len(line)
		} else {
			end += idx
		}

		shortPath := line[:end]
		if i := strings.Index(shortPath, "/internal/"); i != -1 {
			paths = append(paths, shortPath[i+1:])
		}
	}

	return paths
}
