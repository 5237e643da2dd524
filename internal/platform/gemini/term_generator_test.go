package gemini

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/phrazzld/illustrate-api/internal/config"
	"github.com/phrazzld/illustrate-api/internal/generation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func validLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey: "test-api-key",
		ModelName:    "gemini-2.0-flash",
	}
}

func TestNewTermGeneratorValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("nil logger", func(t *testing.T) {
		gen, err := NewTermGenerator(ctx, nil, validLLMConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger cannot be nil")
		assert.Nil(t, gen)
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := validLLMConfig()
		cfg.GeminiAPIKey = ""
		gen, err := NewTermGenerator(ctx, testLogger(), cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "API key")
		assert.Nil(t, gen)
	})

	t.Run("missing model name", func(t *testing.T) {
		cfg := validLLMConfig()
		cfg.ModelName = ""
		gen, err := NewTermGenerator(ctx, testLogger(), cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "model name")
		assert.Nil(t, gen)
	})

	t.Run("nonexistent template path", func(t *testing.T) {
		cfg := validLLMConfig()
		cfg.PromptTemplatePath = filepath.Join(t.TempDir(), "missing.tmpl")
		gen, err := NewTermGenerator(ctx, testLogger(), cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "failed to read prompt template")
		assert.Nil(t, gen)
	})

	t.Run("malformed template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{.LessonText"), 0o600))

		cfg := validLLMConfig()
		cfg.PromptTemplatePath = path
		gen, err := NewTermGenerator(ctx, testLogger(), cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "failed to parse prompt template")
		assert.Nil(t, gen)
	})

	t.Run("embedded default template", func(t *testing.T) {
		gen, err := NewTermGenerator(ctx, testLogger(), validLLMConfig())
		require.NoError(t, err)
		require.NotNil(t, gen)
	})

	t.Run("template path override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("find pictures for: {{.LessonText}}"), 0o600))

		cfg := validLLMConfig()
		cfg.PromptTemplatePath = path
		gen, err := NewTermGenerator(ctx, testLogger(), cfg)
		require.NoError(t, err)

		prompt, err := gen.buildPrompt(ctx, "the water cycle")
		require.NoError(t, err)
		assert.Equal(t, "find pictures for: the water cycle", prompt)
	})
}

func TestBuildPromptEmbedsLessonTextVerbatim(t *testing.T) {
	ctx := context.Background()
	gen, err := NewTermGenerator(ctx, testLogger(), validLLMConfig())
	require.NoError(t, err)

	tests := []struct {
		name       string
		lessonText string
	}{
		{"plain text", "The Nile is the longest river in Africa."},
		{"empty text", ""},
		{"text with quotes and braces", `"hello" {not a template} & <tags>`},
		{"multiline text", "line one\nline two\nline three"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prompt, err := gen.buildPrompt(ctx, tc.lessonText)
			require.NoError(t, err)

			if tc.lessonText != "" {
				// text/template must not escape or alter the lesson text
				assert.Contains(t, prompt, tc.lessonText)
			}
			assert.Contains(t, prompt, "JSON array of exactly 3 strings")
		})
	}
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	textResponse := func(parts ...string) *genai.GenerateContentResponse {
		genaiParts := make([]*genai.Part, 0, len(parts))
		for _, p := range parts {
			genaiParts = append(genaiParts, &genai.Part{Text: p})
		}
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: genaiParts}},
			},
		}
	}

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		_, err := extractText(nil)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()
		_, err := extractText(&genai.GenerateContentResponse{})
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("safety block", func(t *testing.T) {
		t.Parallel()
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{FinishReason: genai.FinishReasonSafety},
			},
		}
		_, err := extractText(resp)
		assert.ErrorIs(t, err, generation.ErrContentBlocked)
	})

	t.Run("nil content", func(t *testing.T) {
		t.Parallel()
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		}
		_, err := extractText(resp)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("no text parts", func(t *testing.T) {
		t.Parallel()
		_, err := extractText(textResponse(""))
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("single part", func(t *testing.T) {
		t.Parallel()
		text, err := extractText(textResponse(`["a", "b", "c"]`))
		require.NoError(t, err)
		assert.Equal(t, `["a", "b", "c"]`, text)
	})

	t.Run("concatenates parts in order", func(t *testing.T) {
		t.Parallel()
		text, err := extractText(textResponse(`["a", `, `"b", "c"]`))
		require.NoError(t, err)
		assert.Equal(t, `["a", "b", "c"]`, text)
	})
}
