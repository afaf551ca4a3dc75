package config

import "os"

// TranslatorConfig configures the chat-completions backend used for
// Python-to-C translation.
type TranslatorConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

func NewTranslatorConfig() *TranslatorConfig {
	baseURL := os.Getenv("TRANSLATOR_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("TRANSLATOR_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	return &TranslatorConfig{
		APIKey:    os.Getenv("OPENAI_API_KEY"),
		BaseURL:   baseURL,
		Model:     model,
		MaxTokens: 4000,
	}
}
