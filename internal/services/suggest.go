package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Generator 抽象外部文本生成 API（实现见 internal/genai）。
type Generator interface {
	// Generate 发送提示词并返回模型产出的原始文本。
	Generate(ctx context.Context, prompt string) (string, error)
}

// SuggestionService 将自由文本主题转换为结构化的文章起稿建议。
type SuggestionService struct{ gen Generator }

func NewSuggestionService(gen Generator) *SuggestionService { return &SuggestionService{gen: gen} }

// promptTemplate 要求模型固定产出 5 个标题、5 个副标题、3 段描述，并以可直接解析的 JSON 返回。
const promptTemplate = `Generate 5 blog post titles, 5 subtitles, and 3 paragraphs for a blog post on the topic: "%s". Provide them in a structured JSON format with keys: "titles", "subtitles", "descriptions". Make sure the response is valid JSON and directly parsable.`

// jsonFence 匹配模型常见的 markdown 代码围栏包装（```json ... ```）。
var jsonFence = regexp.MustCompile("(?s)```json\n(.*?)\n```")

// Suggest 调用生成 API 并把返回文本解析为 JSON 建议载荷。
// 载荷内容不做 schema 校验，模型产出什么就透传什么。
func (s *SuggestionService) Suggest(ctx context.Context, topic string) (json.RawMessage, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, validationErrorf("Prompt is required for AI generation.")
	}
	raw, err := s.gen.Generate(ctx, fmt.Sprintf(promptTemplate, topic))
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}
	text := NormalizeAIText(raw)
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, &UnparsableError{Raw: text, Cause: err}
	}
	return json.RawMessage(text), nil
}

// NormalizeAIText 从原始模型输出提取结构化文本：
// 若输出被 ```json 围栏包裹，取围栏内部；否则仅去除首尾空白。
// 纯函数，便于脱离 HTTP 调用链单独测试。
func NormalizeAIText(raw string) string {
	if m := jsonFence.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return strings.TrimSpace(raw)
}
