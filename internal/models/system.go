package models

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ModelInfo describes a generative model offered by the upstream API.
type ModelInfo struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"display_name"`
	Description                string   `json:"description,omitempty"`
	InputTokenLimit            int32    `json:"input_token_limit"`
	OutputTokenLimit           int32    `json:"output_token_limit"`
	SupportedGenerationMethods []string `json:"supported_generation_methods"`
}

type ModelsResponse struct {
	Configured string      `json:"configured"`
	Models     []ModelInfo `json:"models"`
}
