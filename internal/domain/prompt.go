package domain

import (
	"strings"
)

// DefaultLanguage is the response language when none is configured.
const DefaultLanguage = "English"

const promptTemplate = `You convert feature requests into GitHub issue drafts.

Rewrite the request below as a single YAML document with exactly these keys:

title: a short imperative summary (one line)
user_story: a list with one "As a <role>, I want <goal>, so that <benefit>" sentence
acceptance_criteria: a list of verifiable conditions
technical_requirements: a list of implementation notes

Rules:
- Output only the YAML document. No prose, no code fences.
- Quote any value that contains a colon.
- Write every value in {{language}}.

Request:
{{input}}
`

// BuildPrompt builds the completion prompt for a feature request.
// It returns a *ValidationError when the request is blank.
func BuildPrompt(input, language string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", &ValidationError{Fields: []string{FieldUserInput}}
	}
	if language = strings.TrimSpace(language); language == "" {
		language = DefaultLanguage
	}
	r := strings.NewReplacer("{{language}}", language, "{{input}}", input)
	return r.Replace(promptTemplate), nil
}
