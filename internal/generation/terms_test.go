package generation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/illustrate-api/internal/generation"
)

func TestParseTermList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		wantTerms   []string
		wantErr     bool
		errContains string
	}{
		{
			name:      "valid term list",
			raw:       `["ancient roman aqueduct", "arched stone bridge", "roman engineering diagram"]`,
			wantTerms: []string{"ancient roman aqueduct", "arched stone bridge", "roman engineering diagram"},
		},
		{
			name:      "valid list with surrounding whitespace",
			raw:       "\n  [\"a cat\", \"a dog\", \"a bird\"]  \n",
			wantTerms: []string{"a cat", "a dog", "a bird"},
		},
		{
			name:      "valid list in code fence",
			raw:       "```json\n[\"solar eclipse photo\", \"lunar phases chart\", \"orbital diagram\"]\n```",
			wantTerms: []string{"solar eclipse photo", "lunar phases chart", "orbital diagram"},
		},
		{
			name:      "valid list in bare code fence",
			raw:       "```\n[\"one thing\", \"two thing\", \"three thing\"]\n```",
			wantTerms: []string{"one thing", "two thing", "three thing"},
		},
		{
			name:      "terms are trimmed",
			raw:       `["  padded  ", "fine", "also fine"]`,
			wantTerms: []string{"padded", "fine", "also fine"},
		},
		{
			name:        "not json at all",
			raw:         "not json",
			wantErr:     true,
			errContains: "not valid JSON",
		},
		{
			name:        "json object instead of array",
			raw:         `{"a": 1}`,
			wantErr:     true,
			errContains: "expected a JSON array",
		},
		{
			name:        "json scalar instead of array",
			raw:         `"just a string"`,
			wantErr:     true,
			errContains: "expected a JSON array",
		},
		{
			name:        "too few terms",
			raw:         `["one", "two"]`,
			wantErr:     true,
			errContains: "expected 3 terms, got 2",
		},
		{
			name:        "too many terms",
			raw:         `["a", "b", "c", "d", "e"]`,
			wantErr:     true,
			errContains: "expected 3 terms, got 5",
		},
		{
			name:        "non-string element",
			raw:         `["one", 2, "three"]`,
			wantErr:     true,
			errContains: "term 1 is not a string",
		},
		{
			name:        "empty string element",
			raw:         `["one", "", "three"]`,
			wantErr:     true,
			errContains: "term 1 is empty",
		},
		{
			name:        "whitespace-only element",
			raw:         `["one", "two", "   "]`,
			wantErr:     true,
			errContains: "term 2 is empty",
		},
		{
			name:        "empty input",
			raw:         "",
			wantErr:     true,
			errContains: "not valid JSON",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			terms, err := generation.ParseTermList(tc.raw)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, generation.ErrInvalidResponse)
				assert.Contains(t, err.Error(), tc.errContains)
				assert.Nil(t, terms)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantTerms, terms)
			assert.Len(t, terms, generation.TermCount)
		})
	}
}
