// internal/service/session_messages.go
package service

import (
	"fmt"
	"strings"

	"go_4_word_learn/internal/model"
)

const allPracticedText = "Practiced all words!"

func accuracyLine(stats *model.PracticeStats) string {
	return fmt.Sprintf("%d/%d of words were guessed correctly", stats.Correct, stats.Total)
}

// FormatSessionComplete はバッチ終了時のメッセージを返します。
// remaining > 0 の場合は stats と streak を表示しません。
func FormatSessionComplete(remaining int64, stats *model.PracticeStats, streak *int) string {
	if remaining > 0 {
		return fmt.Sprintf("%d words left", remaining)
	}
	text := allPracticedText
	if stats != nil && stats.Total > 0 {
		text += "\n" + accuracyLine(stats)
	}
	if streak != nil {
		text += "\n" + FormatStreakLine(*streak)
	}
	return text
}

// FormatStageTransition は "Label (n)" か "Old (o) → New (n)" を返します。
func FormatStageTransition(oldStage int, newStage *int) string {
	old := fmt.Sprintf("%s (%d)", StageLabel(oldStage), oldStage)
	if newStage == nil || *newStage == oldStage {
		return old
	}
	return fmt.Sprintf("%s → %s (%d)", old, StageLabel(*newStage), *newStage)
}

func formatResultSection(lines []string, title string, results []*model.SessionWordResult) []string {
	if len(results) == 0 {
		return lines
	}
	lines = append(lines, "", title)
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("• %s → %s: %s", r.SourceText, r.TargetText, FormatStageTransition(r.OldStage, r.NewStage)))
	}
	return lines
}

// FormatSessionStats は日次プールを終えたときの詳細な統計を返します。
func FormatSessionStats(summary *model.SessionSummary) string {
	lines := []string{allPracticedText}
	if summary.Stats.Total > 0 {
		lines = append(lines, accuracyLine(&summary.Stats))
	}
	lines = formatResultSection(lines, "✅ Correct:", summary.Results.Correct)
	lines = formatResultSection(lines, "❌ Incorrect:", summary.Results.Incorrect)
	lines = formatResultSection(lines, "🗑️ Deleted:", summary.Results.Deleted)

	if len(summary.Insights) > 0 {
		lines = append(lines, "", "💡 Practice Insights:")
		for _, in := range summary.Insights {
			lines = append(lines, "• "+in.String())
		}
	}
	if summary.Streak > 0 {
		lines = append(lines, FormatStreakLine(summary.Streak))
	}
	return strings.Join(lines, "\n")
}
