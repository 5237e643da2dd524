package gemini

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"text/template"

	"google.golang.org/genai"

	"github.com/phrazzld/illustrate-api/internal/config"
	"github.com/phrazzld/illustrate-api/internal/generation"
)

// maxOutputTokens bounds the length of the model output. Three short search
// phrases fit comfortably; anything longer is the model ignoring the prompt.
const maxOutputTokens int32 = 256

//go:embed prompt.tmpl
var defaultPromptTemplate string

// TermGenerator implements the generation.TermGenerator interface using
// Google's Gemini API to derive image-search phrases from lesson text.
type TermGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// promptTemplate is the parsed template for creating prompts
	promptTemplate *template.Template

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// NewTermGenerator creates a new TermGenerator with the provided dependencies.
//
// The prompt template is loaded from cfg.PromptTemplatePath when set, falling
// back to the embedded default otherwise. Missing or invalid configuration is
// a startup-time failure wrapping generation.ErrInvalidConfig; no request-time
// path reports credential problems.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key, model name, and optional
//     prompt template path
//
// Returns:
//   - A properly initialized TermGenerator or an error if initialization fails
func NewTermGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*TermGenerator, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	templateContent := defaultPromptTemplate
	if cfg.PromptTemplatePath != "" {
		content, err := os.ReadFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				generation.ErrInvalidConfig, cfg.PromptTemplatePath, err)
		}
		templateContent = string(content)
	}

	promptTemplate, err := template.New("search_terms").Parse(templateContent)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &TermGenerator{
		logger:         logger,
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
	}, nil
}

// buildPrompt renders the instruction prompt with the lesson text embedded
// verbatim. Empty lesson text is valid input and is embedded as-is.
func (g *TermGenerator) buildPrompt(ctx context.Context, lessonText string) (string, error) {
	var buf bytes.Buffer
	if err := g.promptTemplate.Execute(&buf, promptData{LessonText: lessonText}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	g.logger.DebugContext(ctx, "prompt built from template",
		"lesson_length", len(lessonText),
		"prompt_length", buf.Len())

	return buf.String(), nil
}

// GenerateSearchTerms derives exactly generation.TermCount search phrases from
// the provided lesson text.
//
// It makes a single call to the Gemini API with a bounded output length and no
// retries. Transport and API failures wrap generation.ErrGenerationFailed;
// responses blocked by safety filters wrap generation.ErrContentBlocked; any
// output that fails the term-list contract wraps generation.ErrInvalidResponse.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - lessonText: The lesson text to derive phrases from; may be empty
//
// Returns:
//   - An ordered slice of exactly generation.TermCount phrase strings
//   - An error if the call or the response validation fails
func (g *TermGenerator) GenerateSearchTerms(ctx context.Context, lessonText string) ([]string, error) {
	prompt, err := g.buildPrompt(ctx, lessonText)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "calling Gemini API",
		"model", g.model,
		"lesson_length", len(lessonText))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens: maxOutputTokens,
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	raw, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	terms, err := generation.ParseTermList(raw)
	if err != nil {
		g.logger.WarnContext(ctx, "model output failed term-list validation",
			"error", err,
			"output_length", len(raw))
		return nil, err
	}

	g.logger.InfoContext(ctx, "search terms generated",
		"term_count", len(terms))

	return terms, nil
}

// extractText pulls the concatenated text parts out of a Gemini response,
// mapping absent or blocked content to the matching sentinel errors.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	if text == "" {
		return "", fmt.Errorf("%w: response contains no text parts", generation.ErrInvalidResponse)
	}

	return text, nil
}
