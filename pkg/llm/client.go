// Package llm generates article analyses through an OpenAI-compatible
// chat completion endpoint (Moonshot/Kimi by default). Callers treat any
// error as a signal to fall back to the template generator.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/textutil"
)

// ErrNoAPIKey is returned by New when the configured key variable is unset.
var ErrNoAPIKey = errors.New("llm: API key environment variable is empty")

const promptSummaryLen = 500

const systemPrompt = "你是专业的游戏技术分析师，擅长深度技术文章解析。"

const userPromptFormat = `你是一位资深游戏技术专家。请分析以下技术文章并返回JSON格式：

标题: %s
摘要: %s
领域: %s

返回格式（只返回JSON）：
{
    "chinese_title": "中文标题（专业简洁）",
    "technical_summary": "技术摘要（200字中文）",
    "key_technologies": ["技术1", "技术2", "技术3"],
    "technical_analysis": "深度技术分析（400字中文，包含背景、问题、解决方案）",
    "practical_value": "实用价值（150字中文）",
    "target_audience": "目标读者",
    "difficulty": "简单/中等/困难"
}`

// Client wraps the chat completion API for analysis generation.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// New builds a client from config. It fails fast when the key is
// missing so the pipeline can log once and stay on the template path.
func New(cfg models.LLMConfig) (*Client, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoAPIKey, cfg.APIKeyEnv)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     timeout,
	}, nil
}

// Analyze asks the model for a structured analysis of one article. The
// category display name goes into the prompt, not the raw key. A
// response missing any required field is an error; the caller falls back
// to the template generator either way.
func (c *Client) Analyze(ctx context.Context, article *models.Article, categoryName string) (*models.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf(userPromptFormat,
		article.Title,
		textutil.Truncate(textutil.CleanHTML(article.Summary), promptSummaryLen),
		categoryName,
	)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if !analysis.Complete() {
		return nil, errors.New("analysis response is missing required fields")
	}
	return &analysis, nil
}
