package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("  I want to log in with my Google account  ", "Japanese")
	require.NoError(t, err)

	assert.Contains(t, prompt, "I want to log in with my Google account\n")
	assert.Contains(t, prompt, "Write every value in Japanese.")
	for _, key := range []string{FieldTitle, FieldUserStory, FieldCriteria, FieldRequirements} {
		assert.Contains(t, prompt, key+":")
	}
}

func TestBuildPrompt_DefaultLanguage(t *testing.T) {
	prompt, err := BuildPrompt("dark mode", "")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Write every value in English.")
}

func TestBuildPrompt_BlankInput(t *testing.T) {
	_, err := BuildPrompt(" \n\t", "English")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{FieldUserInput}, verr.Fields)
}
