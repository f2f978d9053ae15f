package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSupportPrompt(t *testing.T) {
	message := "I feel really anxious today"
	prompt := BuildSupportPrompt(message)

	assert.Contains(t, prompt, "User message: "+message+"\n")
	assert.Contains(t, prompt, "empathetic emotional support chatbot")
	assert.Contains(t, prompt, "self-harm")
	assert.Contains(t, prompt, "professional help")
	assert.Contains(t, prompt, "Avoid giving medical diagnoses")
	assert.Contains(t, prompt, "2–4 sentences")
	assert.True(t, strings.HasSuffix(prompt, "Your supportive response:"))
}

func TestBuildSupportPrompt_MessageIsVerbatim(t *testing.T) {
	message := "  {{.Persona}} %s \"quoted\" <b>html</b>\nsecond line  "
	assert.Contains(t, BuildSupportPrompt(message), message)
}

func TestBuildSupportPrompt_Static(t *testing.T) {
	a := BuildSupportPrompt("<first>")
	b := BuildSupportPrompt("<second>")
	assert.Equal(t, strings.Replace(a, "<first>", "<second>", 1), b)
}

func TestLoadPromptSpec(t *testing.T) {
	spec, err := LoadPromptSpec([]byte(`
persona: Be kind.
guidelines:
  - Listen
closing: "Reply:"
`))
	require.NoError(t, err)
	assert.Equal(t, "Be kind.\n\nGuidelines:\n- Listen\n\nUser message: hi\n\nReply:", spec.Render("hi"))
}

func TestLoadPromptSpec_Invalid(t *testing.T) {
	_, err := LoadPromptSpec([]byte("persona: [unterminated"))
	require.Error(t, err)

	_, err = LoadPromptSpec([]byte("closing: only"))
	require.Error(t, err)
}
