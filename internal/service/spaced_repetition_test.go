// internal/service/spaced_repetition_test.go
package service

import (
	"testing"
	"time"

	"go_4_word_learn/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom は常に同じ値を返す乱数源 (テスト用)
type fixedRandom struct {
	v int
}

func (r fixedRandom) Intn(n int) int {
	return r.v % n
}

func TestScheduler_DaysUntilReview(t *testing.T) {
	zero := NewScheduler(fixedRandom{v: 0})
	one := NewScheduler(fixedRandom{v: 1})

	tests := []struct {
		name     string
		stage    int
		wantZero int64
		wantOne  int64
	}{
		{name: "正常系: stage 0 は当日", stage: 0, wantZero: 0, wantOne: 0},
		{name: "正常系: stage 1 は乱数なしで1日", stage: 1, wantZero: 1, wantOne: 1},
		{name: "正常系: stage 2", stage: 2, wantZero: 2, wantOne: 3},
		{name: "正常系: stage 3", stage: 3, wantZero: 4, wantOne: 5},
		{name: "正常系: stage 10", stage: 10, wantZero: 512, wantOne: 513},
		{name: "境界値: MaxStage は 2^32 日 (32bit でも桁あふれしない)", stage: model.MaxStage, wantZero: 1 << 32, wantOne: 1<<32 + 1},
		{name: "境界値: 負のステージは0に丸める", stage: -4, wantZero: 0, wantOne: 0},
		{name: "境界値: MaxStage を超えると MaxStage に丸める", stage: 40, wantZero: 1 << 32, wantOne: 1<<32 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantZero, zero.DaysUntilReview(tt.stage))
			assert.Equal(t, tt.wantOne, one.DaysUntilReview(tt.stage))
		})
	}
}

func TestScheduler_DaysUntilReview_PowerOfTwo(t *testing.T) {
	s := NewScheduler(fixedRandom{v: 0})
	for n := 2; n <= model.MaxStage; n++ {
		assert.Equal(t, int64(1)<<(n-1), s.DaysUntilReview(n), "stage %d", n)
	}
}

func TestScheduler_DaysUntilReview_JitterRange(t *testing.T) {
	s := NewScheduler(NewRandomSource(42))
	for i := 0; i < 200; i++ {
		days := s.DaysUntilReview(3)
		assert.Contains(t, []int64{4, 5}, days)
	}
}

func TestScheduler_NextReviewDate(t *testing.T) {
	s := NewScheduler(fixedRandom{v: 0})
	ams, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	base := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	t.Run("正常系: stage 0 は同じ日付の0時", func(t *testing.T) {
		got := s.NextReviewDate(base, 0, nil)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("正常系: stage 1 は翌日", func(t *testing.T) {
		got := s.NextReviewDate(base, 1, nil)
		assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("正常系: 月と年をまたぐ", func(t *testing.T) {
		got := s.NextReviewDate(time.Date(2024, 12, 30, 10, 0, 0, 0, time.UTC), 3, nil)
		assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("正常系: タイムゾーン付きの0時は UTC の0時と別の瞬間で日付は同じ", func(t *testing.T) {
		inAms := s.NextReviewDate(base, 1, ams)
		inUTC := s.NextReviewDate(base, 1, time.UTC)

		assert.False(t, inAms.Equal(inUTC))
		y1, m1, d1 := inAms.Date()
		y2, m2, d2 := inUTC.Date()
		assert.Equal(t, []int{y2, int(m2), d2}, []int{y1, int(m1), d1})
		assert.Equal(t, 0, inAms.Hour())
		assert.Equal(t, ams, inAms.Location())
	})

	t.Run("正常系: 基準日はタイムゾーンの日付で決まる", func(t *testing.T) {
		// UTC 23:30 はアムステルダムでは翌日
		late := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)
		got := s.NextReviewDate(late, 0, ams)
		assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, ams), got)
	})

	t.Run("境界値: 非常に高いステージでも上限日数で止まる", func(t *testing.T) {
		got := s.NextReviewDate(base, model.MaxStage, nil)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, maxReviewDays), got)
	})
}

func TestStageTransitions(t *testing.T) {
	tests := []struct {
		name  string
		stage int
		want  int
	}{
		{name: "正常系: 0 から 1", stage: 0, want: 1},
		{name: "正常系: 5 から 6", stage: 5, want: 6},
		{name: "境界値: MaxStage のまま", stage: model.MaxStage, want: model.MaxStage},
		{name: "境界値: MaxStage 超えは MaxStage", stage: model.MaxStage + 10, want: model.MaxStage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StageAfterCorrect(tt.stage))
		})
	}

	assert.Equal(t, 1, StageAfterIncorrect())
}

func TestClampStage(t *testing.T) {
	got, invalid := ClampStage(7)
	assert.Equal(t, 7, got)
	assert.False(t, invalid)

	got, invalid = ClampStage(-1)
	assert.Equal(t, 0, got)
	assert.True(t, invalid)

	got, invalid = ClampStage(99)
	assert.Equal(t, model.MaxStage, got)
	assert.True(t, invalid)
}

func TestStageLabel(t *testing.T) {
	want := []string{"Unknown", "Just learned", "Learning", "Getting familiar", "Familiar", "Confident", "Well known"}
	for stage, label := range want {
		assert.Equal(t, label, StageLabel(stage))
	}
	assert.Equal(t, "Know by heart", StageLabel(7))
	assert.Equal(t, "Know by heart", StageLabel(model.MaxStage))
	assert.Equal(t, "Unknown", StageLabel(-3))
}
