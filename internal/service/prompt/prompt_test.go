package prompt

import (
	"strings"
	"testing"

	"github.com/amansman77/buddy/internal/model/chat"
)

func TestComposeIsIdempotent(t *testing.T) {
	ctx := Context{
		Service:     "dandani",
		UserEmotion: "sad",
		Practice:    &chat.Practice{Title: "감사 일기", Description: "오늘 감사했던 세 가지 적기", Day: 2, Category: "writing"},
	}

	first := Compose(ctx)
	second := Compose(ctx)
	if first != second {
		t.Fatalf("Compose must be a pure function of its input")
	}
}

func TestComposeServiceBlocks(t *testing.T) {
	cases := []struct {
		service string
		marker  string
	}{
		{"dandani", "단단이 연동 모드"},
		{"timefold", "시간의 봉투 연동 모드"},
		{"tteut", "뜨읏 연동 모드"},
		{"general", "일반 대화 모드"},
		{"no-such-service", "일반 대화 모드"},
		{"", "일반 대화 모드"},
	}

	for _, tc := range cases {
		got := Compose(Context{Service: tc.service})
		if !strings.Contains(got, tc.marker) {
			t.Fatalf("service %q: expected block %q in prompt", tc.service, tc.marker)
		}
		if !strings.Contains(got, "벗(Buddy)") {
			t.Fatalf("service %q: persona block missing", tc.service)
		}
	}
}

func TestComposeInterpolatesPractice(t *testing.T) {
	practice := &chat.Practice{Title: "아침 산책", Description: "10분 걷기"}

	got := Compose(Context{Service: "dandani", Practice: practice})
	if !strings.Contains(got, "오늘의 실천 과제") {
		t.Fatalf("expected practice task header")
	}
	if !strings.Contains(got, "아침 산책 - 10분 걷기") {
		t.Fatalf("expected practice title and description interpolated")
	}

	without := Compose(Context{Service: "dandani"})
	if strings.Contains(without, "오늘의 실천 과제") {
		t.Fatalf("practice header must not appear without a practice record")
	}

	// Other service variants ignore the practice record.
	timefold := Compose(Context{Service: "timefold", Practice: practice})
	if strings.Contains(timefold, "오늘의 실천 과제") {
		t.Fatalf("timefold must not interpolate practice")
	}
}

func TestComposeEmotionBlocks(t *testing.T) {
	known := map[string]string{
		"frustrated": "감정 상태: 좌절감",
		"sad":        "감정 상태: 슬픔",
		"angry":      "감정 상태: 분노",
		"anxious":    "감정 상태: 불안",
		"happy":      "감정 상태: 기쁨",
		"tired":      "감정 상태: 피로",
	}
	for tag, marker := range known {
		got := Compose(Context{UserEmotion: tag})
		if !strings.Contains(got, marker) {
			t.Fatalf("emotion %q: expected block %q", tag, marker)
		}
	}

	// Unknown tags and "neutral" contribute an empty block, not an error.
	for _, tag := range []string{"", "neutral", "bewildered"} {
		got := Compose(Context{UserEmotion: tag})
		if strings.Contains(got, "감정 상태:") {
			t.Fatalf("emotion %q must not produce an emotion block", tag)
		}
	}
}

func TestComposeProfileBlock(t *testing.T) {
	without := Compose(Context{})
	if strings.Contains(without, "사용자 프로필 기반 맞춤 조언") {
		t.Fatalf("profile block must be absent without a profile")
	}

	with := Compose(Context{UserProfile: map[string]any{"name": "민수"}})
	if !strings.Contains(with, "사용자 프로필 기반 맞춤 조언") {
		t.Fatalf("profile block missing")
	}
}

func TestComposeIncludesContextDump(t *testing.T) {
	got := Compose(Context{Service: "tteut", UserEmotion: "happy"})
	if !strings.Contains(got, "현재 컨텍스트") {
		t.Fatalf("context dump header missing")
	}
	if !strings.Contains(got, `"service": "tteut"`) {
		t.Fatalf("context dump must include the service tag")
	}
}

func TestEmotionAnalysisPrompt(t *testing.T) {
	got := EmotionAnalysis("오늘 너무 힘들어요")
	if !strings.Contains(got, "오늘 너무 힘들어요") {
		t.Fatalf("message must be embedded in the prompt")
	}
	if !strings.Contains(got, "primaryEmotion") {
		t.Fatalf("expected JSON response schema in prompt")
	}
}
