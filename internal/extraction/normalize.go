package extraction

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	multiBlankRe = regexp.MustCompile(`\n\n\n+`)
)

// NormalizeText cleans extracted text while preserving line structure:
// line endings are folded to LF, trailing whitespace is trimmed, runs of
// interior spaces collapse to one, and blank-line runs shrink to a
// single separator. Bullet indentation survives.
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
