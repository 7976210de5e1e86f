// internal/service/spaced_repetition.go
package service

import (
	"math/rand"
	"sync"
	"time"

	"go_4_word_learn/internal/model"
)

// maxReviewDays は復習間隔の上限 (約100年)。高ステージでの日付オーバーフローを防ぐ。
const maxReviewDays = 36500

// RandomSource はスケジューリングとプール選択で使う乱数源。
// テストでは固定値を返す実装を渡す。
type RandomSource interface {
	// Intn は [0, n) の整数を返す
	Intn(n int) int
}

type lockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource は goroutine セーフな math/rand ベースの RandomSource を返します。
func NewRandomSource(seed int64) RandomSource {
	return &lockedRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// ClampStage は [0, MaxStage] に収め、範囲外だったかどうかを返します。
func ClampStage(stage int) (int, bool) {
	switch {
	case stage < 0:
		return 0, true
	case stage > model.MaxStage:
		return model.MaxStage, true
	}
	return stage, false
}

// Scheduler は間隔反復の計算を行う
type Scheduler struct {
	rnd RandomSource
}

func NewScheduler(rnd RandomSource) *Scheduler {
	return &Scheduler{rnd: rnd}
}

// DaysUntilReview: stage 0 → 0日, 1 → 1日, n>1 → 2^(n-1) + {0,1}日
// 32bit 環境でも stage 33 で桁あふれしないよう int64 で計算する
func (s *Scheduler) DaysUntilReview(stage int) int64 {
	stage, _ = ClampStage(stage)
	if stage == 0 {
		return 0
	}
	days := int64(1) << (stage - 1)
	if stage > 1 {
		days += int64(s.rnd.Intn(2))
	}
	return days
}

// NextReviewDate は base の日付に DaysUntilReview(stage) 日を足した日の 0 時を返します。
// loc が nil の場合は base の日付をそのまま使い UTC の 0 時を返します。
func (s *Scheduler) NextReviewDate(base time.Time, stage int, loc *time.Location) time.Time {
	days := maxReviewDays
	if d := s.DaysUntilReview(stage); d < maxReviewDays {
		days = int(d)
	}
	if loc == nil {
		y, m, d := base.Date()
		return time.Date(y, m, d+days, 0, 0, 0, 0, time.UTC)
	}
	y, m, d := base.In(loc).Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, loc)
}

func StageAfterCorrect(stage int) int {
	stage, _ = ClampStage(stage)
	if stage >= model.MaxStage {
		return model.MaxStage
	}
	return stage + 1
}

// StageAfterIncorrect は現在のステージに関係なく 1 に戻す
func StageAfterIncorrect() int {
	return 1
}
