package translate

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gitlab.com/codebench-2025.net/internal/config"
	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

var _ secondary.Translator = (*TranslatorService)(nil)

const systemPrompt = `You are an expert C programmer who specializes in translating Python code to C code.

Your task is to:
1. Analyze the provided Python code
2. Convert it to equivalent C code
3. Include necessary headers and libraries
4. Handle Python-specific features appropriately (e.g., dynamic typing, lists, dictionaries)
5. Ensure the C code is syntactically correct and compilable

Return only the C code without any additional explanations or markdown formatting.`

const explainSystemPrompt = `You are an expert C programmer who specializes in translating Python code to C code.

Your task is to:
1. Analyze the provided Python code
2. Convert it to equivalent C code
3. Provide a detailed explanation of the translation process

Return your response in the following format:

C CODE:
[The translated C code here]

EXPLANATION:
[Detailed explanation of the translation choices and C concepts used]`

// TranslatorService translates Python to C through an OpenAI-compatible
// chat-completions endpoint, with a cache in front of the model call.
//
// Failures never surface as Go errors: the returned Translation carries an
// "Error during translation: ..." string instead, and callers check the
// prefix. That convention predates this service and the chat UI depends
// on it.
type TranslatorService struct {
	cfg        *config.TranslatorConfig
	httpClient *http.Client
	cache      secondary.TranslationCache
	logger     primary.Logger
}

// NewTranslatorService creates a translator. cache may be nil, in which case
// every request hits the model.
func NewTranslatorService(cfg *config.TranslatorConfig, cache secondary.TranslationCache, logger primary.Logger) *TranslatorService {
	return &TranslatorService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		cache:      cache,
		logger:     logger,
	}
}

// Translate converts Python code to C code.
func (s *TranslatorService) Translate(ctx context.Context, pythonCode string) domain.Translation {
	if strings.TrimSpace(pythonCode) == "" {
		return domain.Translation{CCode: "Error: No Python code provided."}
	}

	key := cacheKey("translate", pythonCode)
	if cached := s.lookup(ctx, key); cached != nil {
		return *cached
	}

	content, err := s.complete(ctx, systemPrompt,
		fmt.Sprintf("Translate this Python code to C:\n\n```python\n%s\n```", pythonCode))
	if err != nil {
		s.logger.Error("Translation request failed", "error", err)
		return domain.Translation{CCode: fmt.Sprintf("Error during translation: %v", err)}
	}

	translation := domain.Translation{CCode: stripFences(content)}
	s.store(ctx, key, translation)
	return translation
}

// TranslateWithExplanation converts Python code to C code and returns the
// model's explanation alongside it.
func (s *TranslatorService) TranslateWithExplanation(ctx context.Context, pythonCode string) domain.Translation {
	if strings.TrimSpace(pythonCode) == "" {
		return domain.Translation{CCode: "Error: No Python code provided."}
	}

	key := cacheKey("translate_explain", pythonCode)
	if cached := s.lookup(ctx, key); cached != nil {
		return *cached
	}

	content, err := s.complete(ctx, explainSystemPrompt,
		fmt.Sprintf("Translate this Python code to C with explanation:\n\n```python\n%s\n```", pythonCode))
	if err != nil {
		s.logger.Error("Translation request failed", "error", err)
		return domain.Translation{CCode: fmt.Sprintf("Error during translation: %v", err)}
	}

	translation := parseExplained(content)
	s.store(ctx, key, translation)
	return translation
}

func (s *TranslatorService) lookup(ctx context.Context, key string) *domain.Translation {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		// Cache faults degrade to a miss
		s.logger.Warn("Translation cache lookup failed", "error", err)
		return nil
	}
	if cached == nil {
		return nil
	}
	cached.Cached = true
	return cached
}

func (s *TranslatorService) store(ctx context.Context, key string, translation domain.Translation) {
	if s.cache == nil || translation.IsError() {
		return
	}
	if err := s.cache.Set(ctx, key, &translation); err != nil {
		s.logger.Warn("Failed to cache translation", "error", err)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *TranslatorService) complete(ctx context.Context, system, user string) (string, error) {
	payload := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.1,
		MaxTokens:   s.cfg.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("model error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// parseExplained splits the "C CODE: / EXPLANATION:" layout. When the model
// ignores the format the whole content is treated as code.
func parseExplained(content string) domain.Translation {
	if strings.Contains(content, "C CODE:") && strings.Contains(content, "EXPLANATION:") {
		parts := strings.SplitN(content, "EXPLANATION:", 2)
		code := strings.TrimSpace(strings.Replace(parts[0], "C CODE:", "", 1))
		return domain.Translation{
			CCode:       stripFences(code),
			Explanation: strings.TrimSpace(parts[1]),
		}
	}
	return domain.Translation{
		CCode:       stripFences(content),
		Explanation: "Translation completed successfully.",
	}
}

func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```c") {
		content = content[4:]
	} else if strings.HasPrefix(content, "```") {
		content = content[3:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

func cacheKey(prefix, source string) string {
	sum := sha256.Sum256([]byte(source))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
