// internal/service/insights_test.go
package service

import (
	"testing"

	"go_4_word_learn/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func result(kind model.ResultKind, text string, oldStage int, newStage *int) *model.SessionWordResult {
	return &model.SessionWordResult{
		WordID:     uuid.New(),
		Result:     kind,
		OldStage:   oldStage,
		NewStage:   newStage,
		SourceText: text,
		TargetText: text + "-t",
	}
}

func TestGenerateInsights_PerfectRound(t *testing.T) {
	insights := GenerateInsights(InsightInput{
		Stats:          model.PracticeStats{Correct: 10, Total: 10},
		ConfidentCount: 3, PreviousConfidentCount: 3,
	})
	require.Len(t, insights, 1)
	assert.Equal(t, "🎯", insights[0].Emoji)
	assert.Equal(t, "Perfect round! 10/10!", insights[0].Text)

	insights = GenerateInsights(InsightInput{
		Stats:   model.PracticeStats{Correct: 9, Total: 10},
		Results: model.SessionResults{Incorrect: []*model.SessionWordResult{result(model.ResultIncorrect, "kat", 3, intPtr(1))}},
	})
	assert.Empty(t, insights)
}

func TestGenerateInsights_NoAnswersIsNotPerfect(t *testing.T) {
	assert.Empty(t, GenerateInsights(InsightInput{}))
	assert.NotNil(t, GenerateInsights(InsightInput{}))
}

func TestGenerateInsights_KnowByHeart(t *testing.T) {
	results := model.GroupSessionResults([]*model.SessionWordResult{
		result(model.ResultCorrect, "hond", 6, intPtr(7)),
		result(model.ResultCorrect, "kat", 7, intPtr(8)),
		result(model.ResultCorrect, "huis", 2, intPtr(3)),
		result(model.ResultCorrect, "boom", 6, intPtr(7)),
	})
	insights := GenerateInsights(InsightInput{
		Stats:   model.PracticeStats{Correct: 4, Total: 5},
		Results: results,
	})
	require.Len(t, insights, 2)
	assert.Equal(t, model.Insight{Emoji: "⭐", Text: "'hond' is now Know by heart!"}, insights[0])
	assert.Equal(t, model.Insight{Emoji: "⭐", Text: "'boom' is now Know by heart!"}, insights[1])
}

func TestGenerateInsights_Struggling(t *testing.T) {
	twice := result(model.ResultIncorrect, "fiets", 4, intPtr(1))
	once := result(model.ResultIncorrect, "auto", 2, intPtr(1))
	insights := GenerateInsights(InsightInput{
		Stats:               model.PracticeStats{Correct: 0, Total: 2},
		Results:             model.GroupSessionResults([]*model.SessionWordResult{twice, once}),
		ConsecutiveFailures: map[uuid.UUID]int{twice.WordID: 2, once.WordID: 1},
	})
	require.Len(t, insights, 1)
	assert.Equal(t, "💡 'fiets' is still giving you trouble", insights[0].String())
}

func TestGenerateInsights_Milestone(t *testing.T) {
	tests := []struct {
		name     string
		prev     int64
		current  int64
		wantText string
	}{
		{name: "正常系: 99 から 100", prev: 99, current: 100, wantText: "You already have 100 words at Confident level or above!"},
		{name: "正常系: 複数の節目をまたいでも最小の1件だけ", prev: 5, current: 30, wantText: "You already have 10 words at Confident level or above!"},
		{name: "正常系: 101 から 102 は無し", prev: 101, current: 102},
		{name: "境界値: 減少は無し", prev: 100, current: 99},
		{name: "境界値: 既に節目ちょうど", prev: 100, current: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := GenerateInsights(InsightInput{
				Stats:                  model.PracticeStats{Correct: 1, Total: 2},
				ConfidentCount:         tt.current,
				PreviousConfidentCount: tt.prev,
			})
			if tt.wantText == "" {
				assert.Empty(t, insights)
				return
			}
			require.Len(t, insights, 1)
			assert.Equal(t, "🏆", insights[0].Emoji)
			assert.Equal(t, tt.wantText, insights[0].Text)
		})
	}
}

func TestGenerateInsights_Order(t *testing.T) {
	star := result(model.ResultCorrect, "hond", 6, intPtr(7))
	insights := GenerateInsights(InsightInput{
		Stats:                  model.PracticeStats{Correct: 1, Total: 1},
		Results:                model.GroupSessionResults([]*model.SessionWordResult{star}),
		ConfidentCount:         10,
		PreviousConfidentCount: 9,
	})
	require.Len(t, insights, 3)
	assert.Equal(t, []string{"🎯", "⭐", "🏆"}, []string{insights[0].Emoji, insights[1].Emoji, insights[2].Emoji})
}

func TestPreviousConfidentCount(t *testing.T) {
	results := model.GroupSessionResults([]*model.SessionWordResult{
		result(model.ResultCorrect, "a", 4, intPtr(5)),
		result(model.ResultCorrect, "b", 5, intPtr(6)),
		result(model.ResultIncorrect, "c", 6, intPtr(1)),
		result(model.ResultDeleted, "d", 4, nil),
	})
	assert.Equal(t, int64(99), PreviousConfidentCount(100, results))
	assert.Equal(t, int64(0), PreviousConfidentCount(0, results))
}
