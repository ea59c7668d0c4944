package pipeline

import (
	"regexp"
	"strings"
)

// DefaultSVGClass is the class added to the inlined root <svg>.
const DefaultSVGClass = "main-logo-svg"

var (
	xmlDeclPattern   = regexp.MustCompile(`(?s)<\?xml.*?\?>`)
	doctypePattern   = regexp.MustCompile(`(?is)<!DOCTYPE[^\[>]*(\[.*?\])?\s*>`)
	commentPattern   = regexp.MustCompile(`(?s)<!--.*?-->`)
	svgOpenPattern   = regexp.MustCompile(`(?i)<svg(?:\s(?:[^>"']|"[^"]*"|'[^']*')*)?/?>`)
	classAttrPattern = regexp.MustCompile(`\sclass\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// CleanSVG prepares standalone SVG markup for inlining in an HTML page.
// It removes the XML declaration, any DOCTYPE and every comment, then adds
// className to the root <svg> element. An empty className skips the class.
func CleanSVG(content, className string) string {
	content = xmlDeclPattern.ReplaceAllString(content, "")
	content = doctypePattern.ReplaceAllString(content, "")
	content = commentPattern.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)

	if className == "" {
		return content
	}
	return AddRootClass(content, className)
}

// AddRootClass adds className to the first <svg> opening tag, including a
// self-closing one. An existing class attribute, in either quote style, is
// extended rather than duplicated.
// Content without an <svg> tag is returned unchanged.
func AddRootClass(content, className string) string {
	loc := svgOpenPattern.FindStringIndex(content)
	if loc == nil {
		return content
	}

	tag := content[loc[0]:loc[1]]

	var newTag string
	if m := classAttrPattern.FindStringSubmatchIndex(tag); m != nil {
		// value bounds: group 1 for double quotes, group 2 for single
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}
		existing := tag[start:end]
		for _, c := range strings.Fields(existing) {
			if c == className {
				return content
			}
		}
		merged := strings.TrimSpace(existing + " " + className)
		newTag = tag[:start] + merged + tag[end:]
	} else {
		// "<svg" is four bytes regardless of case.
		newTag = tag[:4] + ` class="` + className + `"` + tag[4:]
	}

	return content[:loc[0]] + newTag + content[loc[1]:]
}
