// internal/service/streaks_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStreakUpdate(t *testing.T) {
	today := day(2024, 3, 1)
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name       string
		lastActive *time.Time
		current    int
		wantStreak int
	}{
		{name: "正常系: 初めての活動", lastActive: nil, current: 0, wantStreak: 1},
		{name: "正常系: 前日から連続 (うるう年の月末をまたぐ)", lastActive: ptr(day(2024, 2, 29)), current: 5, wantStreak: 6},
		{name: "正常系: 同じ日の再実行は変わらない", lastActive: ptr(today), current: 5, wantStreak: 5},
		{name: "正常系: 同じ日で streak 0 なら 1", lastActive: ptr(today), current: 0, wantStreak: 1},
		{name: "正常系: 2日空くとリセット", lastActive: ptr(day(2024, 2, 28)), current: 5, wantStreak: 1},
		{name: "正常系: 長い空白もリセット", lastActive: ptr(day(2023, 1, 1)), current: 100, wantStreak: 1},
		{name: "境界値: 未来の日付は維持", lastActive: ptr(day(2024, 3, 5)), current: 4, wantStreak: 4},
		{name: "境界値: 未来の日付で streak 0 なら 1", lastActive: ptr(day(2024, 3, 5)), current: 0, wantStreak: 1},
		{name: "境界値: 前日で streak 0 なら 2", lastActive: ptr(day(2024, 2, 29)), current: 0, wantStreak: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak, last := ComputeStreakUpdate(tt.lastActive, tt.current, today)
			assert.Equal(t, tt.wantStreak, streak)
			assert.Equal(t, today, last)
		})
	}
}

func TestComputeStreakUpdate_IgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	streak, got := ComputeStreakUpdate(&last, 3, time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC))
	assert.Equal(t, 4, streak)
	assert.Equal(t, day(2024, 3, 2), got)
}

func TestFormatStreakLine(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{days: 1, want: "🔥 Streak: 1 day"},
		{days: 2, want: "🔥 Streak: 2 days"},
		{days: 3, want: "🔥 Streak: 3 days (Warm-Up Run)"},
		{days: 7, want: "🔥 Streak: 7 days (Week Warrior)"},
		{days: 8, want: "🔥 Streak: 8 days"},
		{days: 365, want: "🔥 Streak: 365 days (Year Legend)"},
		{days: 0, want: "🔥 Streak: 0 days"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatStreakLine(tt.days))
	}
}

func TestStreakLabel(t *testing.T) {
	label, ok := StreakLabel(30)
	assert.True(t, ok)
	assert.Equal(t, "Month Master", label)

	_, ok = StreakLabel(31)
	assert.False(t, ok)
}
