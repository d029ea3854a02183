package llm

import (
	"context"
	"math/rand"

	"github.com/amansman77/buddy/internal/model/chat"
)

// MockResponses is the fixed canned set served in mock mode.
var MockResponses = []string{
	`안녕하세요! 👋 벗입니다.
Mock 모드로 실행되고 있습니다.

**감정 회복을 위한 조언:**

지금 이렇게 말로 풀어내는 것만으로도 큰 진전이에요.
때로는 모든 것이 무겁게 느껴질 수 있지만,
그 무거움을 인정하고 받아들이는 것이 첫 번째 단계입니다.

오늘 하루도 수고했어요. 🌟`,

	`좋은 질문이네요! 🤔

**감정 회복의 핵심:**

1. **인정하기**: 지금의 감정을 있는 그대로 받아들이기
2. **이해하기**: 이 감정이 왜 생겼는지 탐구하기
3. **실천하기**: 작은 행동으로 변화 시작하기

어떤 부분에서 도움이 필요하신가요?
더 구체적으로 말씀해주시면 맞춤형 조언을 드릴게요! 💡`,
}

// Mock serves canned replies for development and test determinism.
// It never touches the network.
type Mock struct{}

// NewMock builds the mock responder.
func NewMock() *Mock {
	return &Mock{}
}

// Generate picks uniformly at random from the canned set.
func (m *Mock) Generate(_ context.Context, _ string, _ []chat.Message, _ string, _ Options) (string, error) {
	return MockResponses[rand.Intn(len(MockResponses))], nil
}
