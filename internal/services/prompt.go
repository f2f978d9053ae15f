package services

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompts/support.yaml
var supportPromptYAML []byte

// PromptSpec is the static instruction template wrapped around every user message.
type PromptSpec struct {
	Persona    string   `yaml:"persona"`
	Guidelines []string `yaml:"guidelines"`
	Closing    string   `yaml:"closing"`
}

var supportPrompt = mustLoadPromptSpec(supportPromptYAML)

func LoadPromptSpec(data []byte) (*PromptSpec, error) {
	var spec PromptSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse prompt spec: %w", err)
	}
	if strings.TrimSpace(spec.Persona) == "" {
		return nil, fmt.Errorf("prompt spec has no persona")
	}
	return &spec, nil
}

func mustLoadPromptSpec(data []byte) *PromptSpec {
	spec, err := LoadPromptSpec(data)
	if err != nil {
		panic(err)
	}
	return spec
}

// Render embeds message verbatim into the template.
func (p *PromptSpec) Render(message string) string {
	var b strings.Builder
	b.WriteString(p.Persona)
	b.WriteString("\n\n")

	if len(p.Guidelines) > 0 {
		b.WriteString("Guidelines:\n")
		for _, g := range p.Guidelines {
			b.WriteString("- ")
			b.WriteString(g)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("User message: ")
	b.WriteString(message)
	b.WriteString("\n\n")
	b.WriteString(p.Closing)
	return b.String()
}

// BuildSupportPrompt builds the empathetic-support prompt for a validated message.
func BuildSupportPrompt(message string) string {
	return supportPrompt.Render(message)
}
