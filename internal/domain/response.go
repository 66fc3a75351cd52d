package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// keyAliases maps loosely written keys (after canonicalKey) to field names.
var keyAliases = map[string]string{
	"title":                  FieldTitle,
	"user_story":             FieldUserStory,
	"story":                  FieldUserStory,
	"acceptance_criteria":    FieldCriteria,
	"criteria":               FieldCriteria,
	"technical_requirements": FieldRequirements,
	"requirements":           FieldRequirements,
}

// quotePairs lists the quote characters stripped from around values.
var quotePairs = [][2]string{
	{`"`, `"`},
	{`'`, `'`},
	{"`", "`"},
	{"“", "”"},
	{"‘", "’"},
	{"「", "」"},
}

// labelLine matches a top-level "Key: value" line, optionally decorated as
// a Markdown heading or with bold/italic markers around the key.
var labelLine = regexp.MustCompile(`^(?:#{1,6}[ \t]*)?[*_]{0,2}[ \t]*([A-Za-z][A-Za-z _-]*?)[ \t]*[*_]{0,2}[ \t]*:[ \t]*[*_]{0,2}[ \t]*(.*)$`)

// headingLine matches a Markdown heading used as a label, as in "## User Story".
var headingLine = regexp.MustCompile(`^#{1,6}[ \t]*[*_]{0,2}[ \t]*([A-Za-z][A-Za-z _-]*?)[ \t]*[*_]{0,2}[ \t]*$`)

// bulletMarker matches "* item" and "• item" list lines.
var bulletMarker = regexp.MustCompile(`^([ \t]*)(?:\*|•)[ \t]+`)

// NormalizeResponse extracts a Draft from a completion response.
//
// The response is expected to be a YAML mapping with the keys title,
// user_story, acceptance_criteria and technical_requirements. Every value
// may be a string or a list of strings. A fenced code block, if present,
// is parsed instead of the whole text. Loosely labelled text such as
// "**User Story**:" or a "## Title" heading followed by a paragraph is
// rewritten into that mapping before parsing.
//
// Syntax errors yield a *FormatError. A document without a usable title
// or user_story yields a *ValidationError naming the missing fields.
func NormalizeResponse(raw string) (Draft, error) {
	doc := extractDocument(raw)

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return Draft{}, &FormatError{Err: err}
	}

	fields, err := collectFields(&root)
	if err != nil {
		return Draft{}, err
	}

	d := Draft{
		Title:        strings.Join(strings.Fields(strings.Join(fields[FieldTitle], " ")), " "),
		Story:        strings.Join(fields[FieldUserStory], "\n\n"),
		Criteria:     strings.Join(fields[FieldCriteria], "\n"),
		Requirements: strings.Join(fields[FieldRequirements], "\n"),
	}

	var missing []string
	if d.Title == "" {
		missing = append(missing, FieldTitle)
	}
	if d.Story == "" {
		missing = append(missing, FieldUserStory)
	}
	if len(missing) > 0 {
		return Draft{}, &ValidationError{Fields: missing}
	}
	return d, nil
}

// collectFields walks the document root and returns the cleaned items of
// each recognized field. Empty documents and non-mapping roots yield an
// empty result so that required-field validation reports them.
func collectFields(root *yaml.Node) (map[string][]string, error) {
	fields := make(map[string][]string)

	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return fields, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fields, nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		field, ok := keyAliases[canonicalKey(node.Content[i].Value)]
		if !ok {
			continue
		}
		items, err := valueItems(node.Content[i+1])
		if err != nil {
			return nil, &FormatError{Field: field, Err: err}
		}
		// First occurrence wins; models sometimes repeat a key in a summary.
		if _, seen := fields[field]; !seen {
			fields[field] = items
		}
	}
	return fields, nil
}

// valueItems flattens a scalar or a sequence of scalars into cleaned items.
func valueItems(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, errors.New("dangling alias")
		}
		return valueItems(n.Alias)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		return appendItem(nil, n.Value), nil
	case yaml.SequenceNode:
		var items []string
		for _, c := range n.Content {
			if c.Kind == yaml.AliasNode && c.Alias != nil {
				c = c.Alias
			}
			if c.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: expected a string list item", c.Line)
			}
			if c.ShortTag() == "!!null" {
				continue
			}
			items = appendItem(items, c.Value)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("line %d: expected a string or a list of strings", n.Line)
	}
}

func appendItem(items []string, v string) []string {
	if v = stripQuotes(strings.TrimSpace(v)); v != "" {
		items = append(items, v)
	}
	return items
}

// stripQuotes removes one layer of matching quotes around s.
func stripQuotes(s string) string {
	for _, q := range quotePairs {
		if len(s) >= len(q[0])+len(q[1]) && strings.HasPrefix(s, q[0]) && strings.HasSuffix(s, q[1]) {
			return strings.TrimSpace(s[len(q[0]) : len(s)-len(q[1])])
		}
	}
	return s
}

// canonicalKey lowercases a key and unifies separators, so that
// "User Story", "user-story" and "user_story" compare equal.
func canonicalKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.NewReplacer("-", "_", " ", "_").Replace(k)
	return strings.Trim(k, "_")
}

// normalizeLabels rewrites loosely labelled lines into YAML. A known label
// at column 0 becomes "field: value". A label without a value followed by
// a bare paragraph gets the paragraph as a literal block. Other lines are
// left alone so that well-formed YAML passes through unchanged.
func normalizeLabels(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := bulletMarker.ReplaceAllString(lines[i], "$1- ")

		field, value, ok := parseLabel(line)
		if !ok {
			out = append(out, line)
			continue
		}
		if value != "" {
			if needsBlock(value) {
				out = append(out, field+": |-", "  "+value)
			} else {
				out = append(out, field+": "+value)
			}
			continue
		}

		// Skip blank lines between the label and its value.
		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if j < len(lines) && line[0] == '#' {
			if _, _, nextIsLabel := parseLabel(lines[j]); nextIsLabel {
				// A heading over a labelled line stays a YAML comment.
				out = append(out, line)
				continue
			}
		}
		if j == len(lines) || !isParagraphLine(lines[j]) {
			out = append(out, field+":")
			continue
		}

		out = append(out, field+": |-")
		for ; j < len(lines) && strings.TrimSpace(lines[j]) != "" && isParagraphLine(lines[j]); j++ {
			out = append(out, "  "+strings.TrimSpace(lines[j]))
		}
		i = j - 1
	}
	return out
}

// parseLabel reports whether line is a recognized field label and returns
// the canonical field name and the remaining value.
func parseLabel(line string) (field, value string, ok bool) {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return "", "", false
	}

	var key string
	if m := headingLine.FindStringSubmatch(line); m != nil {
		key = m[1]
	} else if m := labelLine.FindStringSubmatch(line); m != nil {
		key, value = m[1], strings.TrimSpace(m[2])
	} else {
		return "", "", false
	}

	field, ok = keyAliases[canonicalKey(key)]
	if !ok {
		return "", "", false
	}
	if strings.ContainsRune("*_#", rune(line[0])) {
		// Closing emphasis markers belong to the decoration.
		value = strings.TrimSpace(strings.TrimRight(value, "*_"))
	}
	return field, value, true
}

// needsBlock reports whether a plain value would not survive as a YAML
// plain scalar and must be written as a literal block.
func needsBlock(value string) bool {
	if strings.IndexByte(`[{"'|>`, value[0]) >= 0 {
		return false
	}
	return strings.Contains(value, ": ") || strings.HasSuffix(value, ":")
}

// isParagraphLine reports whether line is bare text that YAML would not
// read as a value on its own: unindented, not a list item, not a label.
func isParagraphLine(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	if strings.HasPrefix(line, "- ") || line == "-" || bulletMarker.MatchString(line) {
		return false
	}
	_, _, isLabel := parseLabel(line)
	return !isLabel
}

// extractDocument returns the body of the first fenced code block in s,
// or s itself when there is none.
func extractDocument(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if start < 0 {
				start = i
				continue
			}
			return strings.Join(normalizeLabels(lines[start+1:i]), "\n")
		}
	}
	if start >= 0 {
		// Unterminated fence: take everything after the opener.
		return strings.Join(normalizeLabels(lines[start+1:]), "\n")
	}
	return strings.Join(normalizeLabels(lines), "\n")
}
