// Package prompt builds the Buddy system instruction from a per-request
// context. Compose is a pure function: no I/O, no hidden state.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amansman77/buddy/internal/model/chat"
)

// Context is the per-request record the system prompt derives from.
// It is built fresh each turn and never persisted.
type Context struct {
	Service     string         `json:"service"`
	UserEmotion string         `json:"userEmotion,omitempty"`
	Practice    *chat.Practice `json:"practice"`
	UserProfile map[string]any `json:"userProfile"`
}

const basePrompt = `당신은 "벗(Buddy)"이라는 감정 회복을 돕는 AI 말벗입니다.

**핵심 철학:**
- 삶의 의미를 찾기보다 삶이 곧 의미임을 기억하게 하는 말벗
- 나의 말과 감정을 기록하고, 그 기록을 바탕으로 나를 이해하는 지능형 말벗
- 듣고 말하는 AI는 도구가 아니라 동행자

**응답 스타일:**
- 친근하고 따뜻한 톤으로 대화합니다
- 한국어로 자연스럽게 응답합니다
- 감정을 인정하고 받아들이는 것을 우선시합니다
- 구체적이고 실천 가능한 조언을 제공합니다
- 판단하지 않고 이해하려고 노력합니다

**주의사항:**
- 감정 회복 목적에 맞지 않는 조언은 하지 않습니다
- 사용자의 감정 상태를 고려하여 적절한 수준의 조언을 제공합니다
- 위험한 상황(자해, 자살 등)이 감지되면 전문가 상담을 권장합니다`

// serviceBuilder produces the service-variant block. Only dandani uses
// the practice record.
type serviceBuilder func(practice *chat.Practice) string

var serviceBuilders = map[string]serviceBuilder{
	"dandani":  dandaniBlock,
	"timefold": timefoldBlock,
	"tteut":    tteutBlock,
}

func dandaniBlock(practice *chat.Practice) string {
	block := `**단단이 연동 모드:**
- 감정적으로 단단해지는 연습을 돕습니다
- 실천 과제와 연계된 조언을 제공합니다
- 작은 실천이 모여 감정적인 단단함을 형성함을 강조합니다`
	if practice != nil {
		block += fmt.Sprintf("\n\n**오늘의 실천 과제:** %s - %s", practice.Title, practice.Description)
	}
	return block
}

func timefoldBlock(_ *chat.Practice) string {
	return `**시간의 봉투 연동 모드:**
- 기억과 감정을 시간에 담는 것을 돕습니다
- 과거의 감정을 현재의 관점에서 재해석하도록 안내합니다
- 시간을 통한 감정의 변화와 성장을 강조합니다`
}

func tteutBlock(_ *chat.Practice) string {
	return `**뜨읏 연동 모드:**
- 한국어의 뜻과 구조를 해석하고 확장합니다
- 감정을 언어로 표현하는 것을 돕습니다
- 한국어의 의미 생태계를 탐구합니다`
}

func generalBlock(_ *chat.Practice) string {
	return `**일반 대화 모드:**
- 감정 회복과 자기 성찰을 돕습니다
- 삶의 의미와 가치를 함께 탐구합니다
- 나다움을 발견하고 키우는 것을 지원합니다`
}

// emotionBlocks maps known emotion tags to their guidance block.
// "neutral" deliberately has no entry: it contributes an empty block,
// same as any unrecognized tag.
var emotionBlocks = map[string]string{
	"frustrated": `**감정 상태: 좌절감**
- 좌절감을 인정하고 받아들이는 것을 돕습니다
- 작은 성취와 진전을 인식하도록 안내합니다
- 단계별 접근 방법을 제안합니다`,

	"sad": `**감정 상태: 슬픔**
- 슬픔을 자연스러운 감정으로 받아들입니다
- 슬픔이 지나갈 수 있음을 안심시킵니다
- 위로와 공감을 제공합니다`,

	"angry": `**감정 상태: 분노**
- 분노의 원인을 이해하려고 노력합니다
- 분노를 건강하게 표현하는 방법을 제안합니다
- 차분히 생각할 수 있는 시간을 권장합니다`,

	"anxious": `**감정 상태: 불안**
- 불안을 인정하고 받아들이는 것을 돕습니다
- 현재에 집중하도록 안내합니다
- 호흡과 명상을 권장합니다`,

	"happy": `**감정 상태: 기쁨**
- 기쁨을 함께 나누고 축하합니다
- 이 순간을 소중히 여기도록 안내합니다
- 기쁨을 기록하고 기억하도록 권장합니다`,

	"tired": `**감정 상태: 피로**
- 피로를 인정하고 휴식을 권장합니다
- 무리하지 말고 자신을 돌보도록 안내합니다
- 작은 것부터 시작하도록 제안합니다`,
}

const profileBlock = `**사용자 프로필 기반 맞춤 조언:**
- 사용자의 과거 대화 패턴을 고려합니다
- 선호하는 조언 스타일에 맞춰 응답합니다
- 개인적인 상황과 맥락을 이해합니다`

// Compose builds the system instruction from four ordered blocks plus a
// context dump. Unknown service or emotion values degrade to the
// default/empty block; Compose never fails for any input.
func Compose(ctx Context) string {
	builder, ok := serviceBuilders[ctx.Service]
	if !ok {
		builder = generalBlock
	}

	sections := []string{
		basePrompt,
		builder(ctx.Practice),
	}
	if block, ok := emotionBlocks[ctx.UserEmotion]; ok {
		sections = append(sections, block)
	}
	if ctx.UserProfile != nil {
		sections = append(sections, profileBlock)
	}

	dump, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		dump = []byte("{}")
	}
	sections = append(sections, "**현재 컨텍스트:**\n"+string(dump))

	return strings.Join(sections, "\n\n")
}

// EmotionAnalysis builds the classifier instruction used by the
// auxiliary emotion-inference call.
func EmotionAnalysis(message string) string {
	return fmt.Sprintf(`다음 사용자 메시지의 감정 상태를 분석해주세요.

**메시지:** "%s"

**분석 기준:**
- 주요 감정: frustrated, sad, angry, anxious, happy, tired, neutral
- 감정 강도: 1-5 (1: 약함, 5: 매우 강함)
- 신뢰도: 0-1 (0: 불확실, 1: 확실)

**응답 형식:**
JSON 형태로 응답해주세요.
{
  "primaryEmotion": "감정명",
  "emotionIntensity": 숫자,
  "confidence": 숫자,
  "reasoning": "분석 근거"
}`, message)
}
