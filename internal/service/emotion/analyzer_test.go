package emotion

import (
	"context"
	"errors"
	"testing"

	"github.com/amansman77/buddy/internal/model/chat"
	"github.com/amansman77/buddy/internal/service/llm"
)

type stubProvider struct {
	reply string
	err   error
	opts  llm.Options
}

func (s *stubProvider) Generate(_ context.Context, _ string, _ []chat.Message, _ string, opts llm.Options) (string, error) {
	s.opts = opts
	return s.reply, s.err
}

func TestAnalyzeExtractsPrimaryEmotion(t *testing.T) {
	stub := &stubProvider{reply: `{"primaryEmotion":"sad","emotionIntensity":4,"confidence":0.9,"reasoning":"..."}`}

	got := NewAnalyzer(stub).Analyze(context.Background(), "요즘 너무 우울해요")
	if got != "sad" {
		t.Fatalf("expected sad, got %q", got)
	}
	if stub.opts.MaxTokens != 200 || stub.opts.Temperature != 0.3 {
		t.Fatalf("expected short low-temperature call, got %+v", stub.opts)
	}
}

func TestAnalyzeToleratesSurroundingProse(t *testing.T) {
	stub := &stubProvider{reply: "분석 결과입니다:\n{\"primaryEmotion\": \"anxious\"}\n이상입니다."}

	if got := NewAnalyzer(stub).Analyze(context.Background(), "걱정돼요"); got != "anxious" {
		t.Fatalf("expected anxious, got %q", got)
	}
}

func TestAnalyzeFailuresAreRecoverable(t *testing.T) {
	cases := []struct {
		name string
		stub *stubProvider
	}{
		{"call error", &stubProvider{err: errors.New("boom")}},
		{"no json object", &stubProvider{reply: "그냥 텍스트"}},
		{"invalid json", &stubProvider{reply: "{not-json}"}},
		{"empty reply", &stubProvider{reply: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewAnalyzer(tc.stub).Analyze(context.Background(), "hi"); got != "" {
				t.Fatalf("expected empty emotion, got %q", got)
			}
		})
	}
}

func TestAnalyzeNilAnalyzer(t *testing.T) {
	var analyzer *Analyzer
	if got := analyzer.Analyze(context.Background(), "hi"); got != "" {
		t.Fatalf("nil analyzer must return empty emotion")
	}
}
