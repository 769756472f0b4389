package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text string
	err  error
	got  string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.got = prompt
	return f.text, f.err
}

func TestNormalizeAITextExtractsFence(t *testing.T) {
	raw := "```json\n{\"titles\":[\"a\",\"b\"]}\n```"
	require.Equal(t, `{"titles":["a","b"]}`, NormalizeAIText(raw))
}

func TestNormalizeAITextFencedWithProse(t *testing.T) {
	raw := "Here you go!\n```json\n{\"titles\":[]}\n```\nLet me know if you need more."
	require.Equal(t, `{"titles":[]}`, NormalizeAIText(raw))
}

func TestNormalizeAITextFallbackTrims(t *testing.T) {
	raw := "  {\"titles\":[]}  "
	require.Equal(t, `{"titles":[]}`, NormalizeAIText(raw))
}

func TestNormalizeAITextPlainTextUnchanged(t *testing.T) {
	require.Equal(t, "Sorry, I cannot help with that.", NormalizeAIText("Sorry, I cannot help with that."))
}

func TestSuggestPassesPayloadThrough(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n{\"titles\":[\"t\"],\"subtitles\":[\"s\"],\"descriptions\":[\"d\"]}\n```"}
	svc := NewSuggestionService(gen)
	payload, err := svc.Suggest(context.Background(), "gardening")
	require.NoError(t, err)
	var out map[string][]string
	require.NoError(t, json.Unmarshal(payload, &out))
	require.Equal(t, []string{"t"}, out["titles"])
	require.Equal(t, []string{"s"}, out["subtitles"])
	require.Equal(t, []string{"d"}, out["descriptions"])
	// 主题被嵌入到固定指令模板中
	require.Contains(t, gen.got, `"gardening"`)
	require.Contains(t, gen.got, "directly parsable")
}

func TestSuggestUnparsableKeepsRawText(t *testing.T) {
	gen := &fakeGenerator{text: "Sorry, I cannot help with that."}
	svc := NewSuggestionService(gen)
	_, err := svc.Suggest(context.Background(), "gardening")
	var ue *UnparsableError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "Sorry, I cannot help with that.", ue.Raw)
	require.Error(t, ue.Cause)
}

func TestSuggestGenerationFailure(t *testing.T) {
	cause := errors.New("quota exceeded")
	svc := NewSuggestionService(&fakeGenerator{err: cause})
	_, err := svc.Suggest(context.Background(), "gardening")
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	require.ErrorIs(t, ge.Cause, cause)
}

func TestSuggestEmptyPromptRejected(t *testing.T) {
	svc := NewSuggestionService(&fakeGenerator{})
	_, err := svc.Suggest(context.Background(), "   ")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}
