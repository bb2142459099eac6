package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MORS0422/realtime-tech-library/models"
)

func testConfig(baseURL string) models.LLMConfig {
	return models.LLMConfig{
		BaseURL:        baseURL,
		Model:          "kimi-k2.5",
		Temperature:    0.7,
		TimeoutSeconds: 5,
		APIKeyEnv:      "TEST_LLM_KEY",
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("TEST_LLM_KEY", "test-key")
	client, err := New(testConfig(srv.URL + "/v1"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, srv
}

func completionResponse(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv("TEST_LLM_KEY", "")
	_, err := New(testConfig("http://localhost:1/v1"))
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("New() error = %v, want ErrNoAPIKey", err)
	}
}

func TestAnalyze(t *testing.T) {
	analysisJSON := `{
		"chinese_title": "Nanite几何体深度解析",
		"technical_summary": "介绍虚拟化几何体管线。",
		"key_technologies": ["Nanite", "虚幻引擎5"],
		"technical_analysis": "背景、问题与解决方案的展开分析。",
		"practical_value": "可直接用于项目。",
		"target_audience": "引擎开发者",
		"difficulty": "困难"
	}`

	var gotReq map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionResponse(analysisJSON)))
	})

	article := &models.Article{
		Title:    "Nanite Deep Dive",
		Summary:  "<p>Virtualized geometry explained.</p>",
		Category: "ue",
	}
	got, err := client.Analyze(context.Background(), article, "Unreal Engine")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.ChineseTitle != "Nanite几何体深度解析" {
		t.Errorf("ChineseTitle = %q", got.ChineseTitle)
	}
	if !got.Complete() {
		t.Errorf("Analyze() returned incomplete analysis: %+v", got)
	}

	if gotReq["model"] != "kimi-k2.5" {
		t.Errorf("request model = %v, want kimi-k2.5", gotReq["model"])
	}
	rf, _ := gotReq["response_format"].(map[string]any)
	if rf["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", rf)
	}
}

func TestAnalyzeServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	})

	_, err := client.Analyze(context.Background(), &models.Article{Title: "x"}, "技术美术")
	if err == nil {
		t.Fatal("Analyze() expected error on 502 response")
	}
}

func TestAnalyzeMalformedContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionResponse("not json at all")))
	})

	_, err := client.Analyze(context.Background(), &models.Article{Title: "x"}, "技术美术")
	if err == nil {
		t.Fatal("Analyze() expected error on malformed content")
	}
}

func TestAnalyzeIncompleteFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionResponse(`{"chinese_title": "只有标题"}`)))
	})

	_, err := client.Analyze(context.Background(), &models.Article{Title: "x"}, "技术美术")
	if err == nil {
		t.Fatal("Analyze() expected error when required fields are missing")
	}
}
