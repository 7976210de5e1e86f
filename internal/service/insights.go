// internal/service/insights.go
package service

import (
	"fmt"

	"go_4_word_learn/internal/model"

	"github.com/google/uuid"
)

// confidentMilestones は「自信あり」単語数の節目 (昇順)
var confidentMilestones = []int{10, 25, 50, 100, 200, 300, 400, 500, 750, 1000, 1500, 2000, 3000, 5000}

// minStrugglingFailures 以上連続で間違えた単語を「苦戦中」とする
const minStrugglingFailures = 2

// InsightInput は GenerateInsights の入力
type InsightInput struct {
	Stats                  model.PracticeStats
	Results                model.SessionResults
	ConsecutiveFailures    map[uuid.UUID]int
	ConfidentCount         int64
	PreviousConfidentCount int64
}

// GenerateInsights はセッション結果から表示用のインサイトを順番に組み立てます。
// 該当なしなら空スライスを返します。
func GenerateInsights(in InsightInput) []model.Insight {
	insights := []model.Insight{}

	if in.Stats.Total > 0 && in.Stats.Correct == in.Stats.Total {
		insights = append(insights, model.Insight{
			Emoji: "🎯",
			Text:  fmt.Sprintf("Perfect round! %d/%d!", in.Stats.Correct, in.Stats.Total),
		})
	}

	for _, r := range in.Results.Correct {
		if r.NewStage != nil && *r.NewStage >= model.KnowByHeartStage && r.OldStage < model.KnowByHeartStage {
			insights = append(insights, model.Insight{
				Emoji: "⭐",
				Text:  fmt.Sprintf("'%s' is now %s!", r.SourceText, knowByHeartLabel),
			})
		}
	}

	for _, r := range in.Results.Incorrect {
		if in.ConsecutiveFailures[r.WordID] >= minStrugglingFailures {
			insights = append(insights, model.Insight{
				Emoji: "💡",
				Text:  fmt.Sprintf("'%s' is still giving you trouble", r.SourceText),
			})
		}
	}

	for _, m := range confidentMilestones {
		if in.PreviousConfidentCount < int64(m) && int64(m) <= in.ConfidentCount {
			insights = append(insights, model.Insight{
				Emoji: "🏆",
				Text:  fmt.Sprintf("You already have %d words at Confident level or above!", m),
			})
			break
		}
	}

	return insights
}

// PreviousConfidentCount は今回のセッションで Confident に上がった単語を差し引いた数を返す
func PreviousConfidentCount(current int64, results model.SessionResults) int64 {
	crossed := int64(0)
	for _, r := range results.Correct {
		if r.NewStage != nil && r.OldStage < model.ConfidentStage && *r.NewStage >= model.ConfidentStage {
			crossed++
		}
	}
	prev := current - crossed
	if prev < 0 {
		return 0
	}
	return prev
}
