// internal/service/session_messages_test.go
package service

import (
	"strings"
	"testing"

	"go_4_word_learn/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatSessionComplete(t *testing.T) {
	stats := &model.PracticeStats{Correct: 8, Total: 10}
	week := 7

	tests := []struct {
		name      string
		remaining int64
		stats     *model.PracticeStats
		streak    *int
		want      string
	}{
		{name: "正常系: 残りあり", remaining: 59, want: "59 words left"},
		{name: "正常系: 残りありなら統計は出さない", remaining: 3, stats: stats, streak: &week, want: "3 words left"},
		{name: "正常系: 全部終了", remaining: 0, want: "Practiced all words!"},
		{name: "正常系: 全部終了と正解率", remaining: 0, stats: stats, want: "Practiced all words!\n8/10 of words were guessed correctly"},
		{name: "正常系: 回答0件なら正解率なし", remaining: 0, stats: &model.PracticeStats{}, want: "Practiced all words!"},
		{
			name: "正常系: 正解率とストリーク", remaining: 0, stats: stats, streak: &week,
			want: "Practiced all words!\n8/10 of words were guessed correctly\n🔥 Streak: 7 days (Week Warrior)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSessionComplete(tt.remaining, tt.stats, tt.streak))
		})
	}
}

func TestFormatStageTransition(t *testing.T) {
	assert.Equal(t, "Learning (2) → Getting familiar (3)", FormatStageTransition(2, intPtr(3)))
	assert.Equal(t, "Confident (5) → Just learned (1)", FormatStageTransition(5, intPtr(1)))
	assert.Equal(t, "Just learned (1)", FormatStageTransition(1, intPtr(1)))
	assert.Equal(t, "Familiar (4)", FormatStageTransition(4, nil))
}

func TestFormatSessionStats(t *testing.T) {
	summary := &model.SessionSummary{
		Stats: model.PracticeStats{Correct: 1, Total: 2},
		Results: model.SessionResults{
			Correct:   []*model.SessionWordResult{{SourceText: "hond", TargetText: "dog", OldStage: 6, NewStage: intPtr(7)}},
			Incorrect: []*model.SessionWordResult{{SourceText: "kat", TargetText: "cat", OldStage: 3, NewStage: intPtr(1)}},
			Deleted:   []*model.SessionWordResult{{SourceText: "huis", TargetText: "house", OldStage: 0}},
		},
		Insights: []model.Insight{{Emoji: "⭐", Text: "'hond' is now Know by heart!"}},
		Streak:   1,
	}

	want := strings.Join([]string{
		"Practiced all words!",
		"1/2 of words were guessed correctly",
		"",
		"✅ Correct:",
		"• hond → dog: Well known (6) → Know by heart (7)",
		"",
		"❌ Incorrect:",
		"• kat → cat: Getting familiar (3) → Just learned (1)",
		"",
		"🗑️ Deleted:",
		"• huis → house: Unknown (0)",
		"",
		"💡 Practice Insights:",
		"• ⭐ 'hond' is now Know by heart!",
		"🔥 Streak: 1 day",
	}, "\n")
	assert.Equal(t, want, FormatSessionStats(summary))
}

func TestFormatSessionStats_OnlyHeader(t *testing.T) {
	assert.Equal(t, "Practiced all words!", FormatSessionStats(&model.SessionSummary{}))
}
