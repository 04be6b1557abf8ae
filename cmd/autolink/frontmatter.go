package main

import "strings"

// frontMatterEnd returns the offset just past a leading front matter block delimited
// by ---, +++ or ;;; lines, or 0 when src does not start with one. The line after
// the opening delimiter must look like metadata, so a leading thematic break is kept.
func frontMatterEnd(src string) int {
	line, next := nextLine(src, 0)
	delim, ok := openingDelimiter(line)
	if !ok {
		return 0
	}
	second, pos := nextLine(src, next)
	if !metadataLikely(second) {
		return 0
	}
	for pos < len(src) {
		line, next = nextLine(src, pos)
		if strings.TrimSpace(line) == delim {
			return next
		}
		pos = next
	}
	return 0
}

func nextLine(src string, start int) (string, int) {
	if start >= len(src) {
		return "", len(src)
	}
	i := strings.IndexByte(src[start:], '\n')
	if i < 0 {
		return strings.TrimSuffix(src[start:], "\r"), len(src)
	}
	return strings.TrimSuffix(src[start:start+i], "\r"), start + i + 1
}

func openingDelimiter(line string) (string, bool) {
	switch delim := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff")); delim {
	case "---", "+++", ";;;":
		return delim, true
	default:
		return "", false
	}
}

func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
