// internal/service/streaks.go
package service

import (
	"fmt"
	"time"
)

// streakMilestones は連続日数ごとの称号 (昇順)
var streakMilestones = []struct {
	days  int
	label string
}{
	{3, "Warm-Up Run"},
	{7, "Week Warrior"},
	{14, "Fortnight Force"},
	{21, "Habit Locked"},
	{30, "Month Master"},
	{40, "Momentum Maker"},
	{60, "Two-Month Titan"},
	{90, "Seasoned Streak"},
	{120, "Quarter Champion"},
	{180, "Half-Year Hero"},
	{240, "Eight-Month Engine"},
	{300, "Three-Hundred Club"},
	{365, "Year Legend"},
}

// civilDate は時刻を捨てて日付だけを UTC の 0 時として返す
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ComputeStreakUpdate は最終活動日と今日から新しいストリークを計算します。
// 日付は time.Time のカレンダー日付部分だけを見ます。
func ComputeStreakUpdate(lastActive *time.Time, currentStreak int, today time.Time) (int, time.Time) {
	today = civilDate(today)
	if lastActive == nil {
		return 1, today
	}
	last := civilDate(*lastActive)

	switch {
	case last.After(today):
		// 時計のずれでは減らさない
		return max(currentStreak, 1), today
	case last.Equal(today):
		return max(currentStreak, 1), today
	case last.AddDate(0, 0, 1).Equal(today):
		return max(currentStreak, 1) + 1, today
	}
	return 1, today
}

// StreakLabel returns the milestone label for an exact streak value, if any.
func StreakLabel(days int) (string, bool) {
	for _, m := range streakMilestones {
		if m.days == days {
			return m.label, true
		}
	}
	return "", false
}

func FormatStreakLine(days int) string {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	if label, ok := StreakLabel(days); ok {
		return fmt.Sprintf("🔥 Streak: %d %s (%s)", days, unit, label)
	}
	return fmt.Sprintf("🔥 Streak: %d %s", days, unit)
}
