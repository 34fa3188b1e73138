package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Файл unit-тестов fallback-матчера.
//
// Покрываем ключевой контракт:
//   - нормализация входа (trim + lower);
//   - короткий ввод (< 2 символов) -> SetupResponse, отдельный путь;
//   - first-match-wins при пересечении наборов ключевых слов;
//   - «нет совпадения» -> сентинел ("", false), не текст по умолчанию;
//   - по одному репрезентативному входу на каждую группу правил.

// TestReply_ShortInput — ввод длиной 0 и 1 после trim даёт SetupResponse.
func TestReply_ShortInput(t *testing.T) {
	t.Parallel()

	m := NewMatcher()

	for _, in := range []string{"", " ", "\t\n", "a", "  a  "} {
		reply, ok := m.Reply(in)
		require.True(t, ok, "short input %q must be classified, not sentinel", in)
		require.Equal(t, SetupResponse, reply)
	}
}

// TestReply_NoMatch — осмысленный, но нерелевантный ввод даёт сентинел.
func TestReply_NoMatch(t *testing.T) {
	t.Parallel()

	m := NewMatcher()

	reply, ok := m.Reply("xyzzy quux")
	require.False(t, ok)
	require.Equal(t, "", reply)
}

// TestReply_FestivalQuestion — конкретный сценарий: вопрос о дате фестиваля.
func TestReply_FestivalQuestion(t *testing.T) {
	t.Parallel()

	m := NewMatcher()

	reply, ok := m.Reply("When is the festival?")
	require.True(t, ok)
	require.Contains(t, reply, "January 1st")
}

// TestReply_PriorityOrder — при пересечении групп побеждает более ранняя.
func TestReply_PriorityOrder(t *testing.T) {
	t.Parallel()

	m := NewMatcher()

	// «festival event»: группа 1 (фестиваль) и группа 5 (события) — побеждает 1.
	reply, ok := m.Reply("festival event")
	require.True(t, ok)
	require.Contains(t, reply, "January 1st")

	// «news event»: группа 4 (новости) и группа 5 (события) — побеждает 4.
	reply, ok = m.Reply("news event")
	require.True(t, ok)
	require.Contains(t, reply, "latest news")

	// «granite project»: группа 6 (минералы) и группа 11 (проекты) — побеждает 6.
	reply, ok = m.Reply("granite project")
	require.True(t, ok)
	require.Contains(t, reply, "mineral resources")
}

// TestReply_Normalization — регистр и пробелы не влияют на классификацию.
func TestReply_Normalization(t *testing.T) {
	t.Parallel()

	m := NewMatcher()

	upper, okUpper := m.Reply("  WHERE IS IKOHA?  ")
	lower, okLower := m.Reply("where is ikoha?")

	require.True(t, okUpper)
	require.True(t, okLower)
	require.Equal(t, lower, upper)
	require.Contains(t, lower, "Ovia South-West")
}

// TestReply_EveryGroup — репрезентативный вход на каждую группу правил.
func TestReply_EveryGroup(t *testing.T) {
	t.Parallel()

	m := NewMatcher()

	tests := []struct {
		name  string
		input string
		want  string // подстрока ожидаемого ответа
	}{
		{"festival", "tell me about the celebration", "January 1st"},
		{"contact", "how do i send feedback", "asenlucky9@gmail.com"},
		{"location", "what is the address", "Edo State"},
		{"news", "any announcement today", "latest news"},
		{"events", "community meeting schedule", "community calendar"},
		{"minerals", "do you have granite", "mineral resources"},
		{"agriculture", "cocoa farming", "agricultural resources"},
		{"forum", "join discussion", "Forum page"},
		{"gallery", "show me a picture", "Gallery page"},
		{"heroes", "who is the chairman", "Heroes page"},
		{"projects", "ongoing construction", "Projects page"},
		{"businesses", "any opportunities", "Businesses page"},
		{"population", "how many residents", "growing population"},
		{"greeting", "good morning", "Ikoha Community assistant"},
		{"help", "what can you do", SetupResponse},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reply, ok := m.Reply(tc.input)
			require.True(t, ok, "input %q must match group %s", tc.input, tc.name)
			require.Contains(t, reply, tc.want)
		})
	}
}

// TestReply_Deterministic — одинаковый вход даёт одинаковый ответ.
func TestReply_Deterministic(t *testing.T) {
	t.Parallel()

	m := NewMatcher()

	first, ok1 := m.Reply("festival")
	second, ok2 := m.Reply("festival")

	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, first, second)
}

// TestSetupResponse_NotEmpty — страховка от случайного опустошения константы:
// пустой SetupResponse сломал бы различимость путей «короткий ввод» и «нет совпадения».
func TestSetupResponse_NotEmpty(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, strings.TrimSpace(SetupResponse))
	require.NotEmpty(t, strings.TrimSpace(SystemPrompt))
}
