// internal/service/practice_service_test.go
package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"go_4_word_learn/internal/model"
	"go_4_word_learn/internal/repository"
	"go_4_word_learn/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func amsterdam(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	return loc
}

// answerAll はセッションが空になるまで同じ結果で回答し、最後の結果を返す
func answerAll(t *testing.T, env *testEnv, chatID int64, outcome model.ResultKind) *model.AnswerResult {
	t.Helper()
	ctx := testCtx()
	var last *model.AnswerResult
	for i := 0; i < 100; i++ {
		pw, err := env.practice.NextPresentedWord(ctx, chatID)
		require.NoError(t, err)
		if pw == nil {
			return last
		}
		last, err = env.practice.Answer(ctx, chatID, pw.WordID, outcome)
		require.NoError(t, err)
	}
	t.Fatal("session did not drain")
	return nil
}

func TestPracticeService_SpacedRepetitionScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	ams := amsterdam(t)
	chatID := int64(100)
	wordID := env.addWords(t, chatID, 1)[0]

	// 1日目: stage 0 → 1、翌日に復習
	size, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	pw, err := env.practice.NextPresentedWord(ctx, chatID)
	require.NoError(t, err)
	require.NotNil(t, pw)
	assert.Equal(t, wordID, pw.WordID)
	assert.Equal(t, "word0", pw.Source)
	assert.Equal(t, "woord0", pw.Target)
	assert.Equal(t, 0, pw.Stage)

	res, err := env.practice.Answer(ctx, chatID, wordID, model.ResultCorrect)
	require.NoError(t, err)
	assert.Equal(t, 0, res.OldStage)
	require.NotNil(t, res.NewStage)
	assert.Equal(t, 1, *res.NewStage)
	assert.True(t, res.SessionEmpty)
	assert.Equal(t, int64(0), res.Remaining)
	require.NotNil(t, res.Summary)
	assert.Equal(t, model.PracticeStats{ChatID: chatID, Correct: 1, Total: 1}, res.Summary.Stats)
	assert.Equal(t, 1, res.Summary.Streak)

	rec := env.record(t, chatID, wordID)
	assert.Equal(t, 1, rec.Stage)
	assert.True(t, time.Date(2024, 3, 16, 0, 0, 0, 0, ams).Equal(rec.NextReviewAt), "got %v", rec.NextReviewAt)

	// 2日目: stage 1 → 2
	env.clock.Advance(24 * time.Hour)
	size, err = env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	require.Equal(t, int64(1), size)
	res, err = env.practice.Answer(ctx, chatID, wordID, model.ResultCorrect)
	require.NoError(t, err)
	assert.Equal(t, 2, *res.NewStage)
	require.NotNil(t, res.Summary)
	assert.Equal(t, 2, res.Summary.Streak)

	// 4日目: stage 2 → 3、4日後か5日後 (乱数0なので4日後)
	env.clock.Advance(48 * time.Hour)
	size, err = env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	require.Equal(t, int64(1), size)
	res, err = env.practice.Answer(ctx, chatID, wordID, model.ResultCorrect)
	require.NoError(t, err)
	assert.Equal(t, 3, *res.NewStage)
	// 1日空いたのでストリークはリセット
	assert.Equal(t, 1, res.Summary.Streak)

	rec = env.record(t, chatID, wordID)
	assert.Equal(t, 3, rec.Stage)
	assert.True(t, time.Date(2024, 3, 22, 0, 0, 0, 0, ams).Equal(rec.NextReviewAt), "got %v", rec.NextReviewAt)

	// stage 5 で不正解 → stage 1、翌日、連続失敗 1
	env.clock.Advance(24 * time.Hour)
	require.NoError(t, env.db.Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id = ?", chatID, wordID).
		Updates(map[string]interface{}{"stage": 5, "next_date": env.clock.Now().Add(-time.Hour)}).Error)

	_, err = env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	res, err = env.practice.Answer(ctx, chatID, wordID, model.ResultIncorrect)
	require.NoError(t, err)
	assert.Equal(t, 5, res.OldStage)
	assert.Equal(t, 1, *res.NewStage)
	assert.Equal(t, model.PracticeStats{ChatID: chatID, Correct: 0, Total: 1}, res.Summary.Stats)

	rec = env.record(t, chatID, wordID)
	assert.Equal(t, 1, rec.Stage)
	assert.Equal(t, 1, rec.ConsecutiveFailures)
	assert.True(t, time.Date(2024, 3, 20, 0, 0, 0, 0, ams).Equal(rec.NextReviewAt), "got %v", rec.NextReviewAt)
}

func TestPracticeService_BatchesAndPoolExhaustion(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(200)
	env.addWords(t, chatID, 25)

	// 1バッチ目
	size, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)
	last := answerAll(t, env, chatID, model.ResultCorrect)
	require.NotNil(t, last)
	assert.True(t, last.SessionEmpty)
	assert.Equal(t, int64(15), last.Remaining)
	assert.Nil(t, last.Summary)
	assert.Equal(t, "15 words left", FormatSessionComplete(last.Remaining, nil, nil))

	// 統計は次のバッチに持ち越される
	stats, err := env.progRep.GetStats(ctx, env.db, chatID)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Total)

	remaining, err := env.practice.CountRemainingDue(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), remaining)

	// 2バッチ目
	size, err = env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)
	last = answerAll(t, env, chatID, model.ResultCorrect)
	assert.Equal(t, int64(5), last.Remaining)

	// 3バッチ目で日次プールが尽きる
	size, err = env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
	last = answerAll(t, env, chatID, model.ResultCorrect)
	require.NotNil(t, last.Summary)
	assert.Equal(t, 25, last.Summary.Stats.Correct)
	assert.Equal(t, 25, last.Summary.Stats.Total)
	assert.Len(t, last.Summary.Results.Correct, 25)
	require.NotEmpty(t, last.Summary.Insights)
	assert.Equal(t, "Perfect round! 25/25!", last.Summary.Insights[0].Text)
	assert.Equal(t, 1, last.Summary.Streak)

	// 締め処理後は統計と結果が消えている
	stats, err = env.progRep.GetStats(ctx, env.db, chatID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	results, err := env.progRep.GetSessionResults(ctx, env.db, chatID)
	require.NoError(t, err)
	assert.Empty(t, results)

	// 同じ日にもう一度始めても練習する単語はない
	size, err = env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
	pw, err := env.practice.NextPresentedWord(ctx, chatID)
	require.NoError(t, err)
	assert.Nil(t, pw)

	streak, err := env.practice.GetStreak(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestPracticeService_EnsureDailyPool(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(300)

	t.Run("正常系: 練習する単語が無ければ空のプール", func(t *testing.T) {
		pool, err := env.practice.EnsureDailyPool(ctx, chatID)
		require.NoError(t, err)
		assert.Empty(t, pool)
	})

	first := env.addWords(t, chatID, 3)

	t.Run("正常系: 同じ日は同じプールを返す", func(t *testing.T) {
		pool, err := env.practice.EnsureDailyPool(ctx, chatID)
		require.NoError(t, err)
		assert.ElementsMatch(t, first, pool)

		more := env.addWords(t, chatID, 2)
		pool, err = env.practice.EnsureDailyPool(ctx, chatID)
		require.NoError(t, err)
		assert.ElementsMatch(t, first, pool)

		// 翌日は新しいプール
		env.clock.Advance(24 * time.Hour)
		pool, err = env.practice.EnsureDailyPool(ctx, chatID)
		require.NoError(t, err)
		assert.ElementsMatch(t, append(append([]uuid.UUID{}, first...), more...), pool)
	})
}

func TestPracticeService_PoolSizeIsBounded(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Practice.PoolMin = 4
	env.cfg.Practice.PoolMax = 6
	ctx := testCtx()
	chatID := int64(301)
	env.addWords(t, chatID, 20)

	// fixedRandom{0} なので PoolMin
	pool, err := env.practice.EnsureDailyPool(ctx, chatID)
	require.NoError(t, err)
	assert.Len(t, pool, 4)

	env.clock.Advance(24 * time.Hour)
	env.practice = NewPracticeService(env.db, env.practRep, env.progRep, env.wordRep, env.cfg, fixedRandom{v: 2}, env.clock.Now)
	pool, err = env.practice.EnsureDailyPool(ctx, chatID)
	require.NoError(t, err)
	assert.Len(t, pool, 6)
}

func TestPracticeService_Answer_NotInSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(400)
	ids := env.addWords(t, chatID, 2)

	_, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)

	t.Run("異常系: 存在しない単語", func(t *testing.T) {
		_, err := env.practice.Answer(ctx, chatID, uuid.New(), model.ResultCorrect)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("異常系: 別のチャットの単語", func(t *testing.T) {
		_, err := env.practice.Answer(ctx, chatID+1, ids[0], model.ResultCorrect)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})

	t.Run("異常系: 二重回答は数えない", func(t *testing.T) {
		_, err := env.practice.Answer(ctx, chatID, ids[0], model.ResultCorrect)
		require.NoError(t, err)
		_, err = env.practice.Answer(ctx, chatID, ids[0], model.ResultCorrect)
		assert.True(t, errors.Is(err, model.ErrNotFound))

		stats, err := env.progRep.GetStats(ctx, env.db, chatID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Total)
		assert.Equal(t, 1, env.record(t, chatID, ids[0]).Stage)
	})

	t.Run("異常系: 不明な回答種別は何も変えない", func(t *testing.T) {
		_, err := env.practice.Answer(ctx, chatID, ids[1], model.ResultKind("maybe"))
		assert.True(t, errors.Is(err, model.ErrInvalidInput))

		count, err := env.practRep.CountSession(ctx, env.db, chatID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, 0, env.record(t, chatID, ids[1]).Stage)
	})
}

func TestPracticeService_Answer_Deleted(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(500)
	ids := env.addWords(t, chatID, 1)

	_, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	res, err := env.practice.Answer(ctx, chatID, ids[0], model.ResultDeleted)
	require.NoError(t, err)
	assert.Nil(t, res.NewStage)
	require.NotNil(t, res.Summary)
	assert.Equal(t, 0, res.Summary.Stats.Total)
	require.Len(t, res.Summary.Results.Deleted, 1)
	assert.Nil(t, res.Summary.Results.Deleted[0].NewStage)
	assert.Equal(t, "woord0", res.Summary.Results.Deleted[0].SourceText)
	assert.Equal(t, "word0", res.Summary.Results.Deleted[0].TargetText)
	assert.Empty(t, res.Summary.Insights)

	rec := env.record(t, chatID, ids[0])
	assert.True(t, rec.Deleted)
	assert.Equal(t, 0, rec.Stage)

	// 削除した単語は今後選ばれない
	env.clock.Advance(24 * time.Hour)
	size, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestPracticeService_StrugglingInsight(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(600)
	ids := env.addWords(t, chatID, 1)

	_, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	res, err := env.practice.Answer(ctx, chatID, ids[0], model.ResultIncorrect)
	require.NoError(t, err)
	assert.Empty(t, res.Summary.Insights)

	env.clock.Advance(24 * time.Hour)
	_, err = env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	res, err = env.practice.Answer(ctx, chatID, ids[0], model.ResultIncorrect)
	require.NoError(t, err)
	require.Len(t, res.Summary.Insights, 1)
	assert.Equal(t, "💡 'woord0' is still giving you trouble", res.Summary.Insights[0].String())
	assert.Equal(t, 2, env.record(t, chatID, ids[0]).ConsecutiveFailures)

	// 正解で連続失敗はリセット
	env.clock.Advance(24 * time.Hour)
	_, err = env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	_, err = env.practice.Answer(ctx, chatID, ids[0], model.ResultCorrect)
	require.NoError(t, err)
	assert.Equal(t, 0, env.record(t, chatID, ids[0]).ConsecutiveFailures)
}

func TestPracticeService_ClampsInvalidStage(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(700)
	ids := env.addWords(t, chatID, 1)
	require.NoError(t, env.db.Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id = ?", chatID, ids[0]).
		Update("stage", model.MaxStage+17).Error)

	_, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	pw, err := env.practice.NextPresentedWord(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, model.MaxStage, pw.Stage)

	res, err := env.practice.Answer(ctx, chatID, ids[0], model.ResultCorrect)
	require.NoError(t, err)
	assert.Equal(t, model.MaxStage, res.OldStage)
	assert.Equal(t, model.MaxStage, *res.NewStage)
	assert.Equal(t, model.MaxStage, env.record(t, chatID, ids[0]).Stage)
}

func TestPracticeService_ResetAndFinalize(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(800)
	ids := env.addWords(t, chatID, 3)

	t.Run("正常系: 回答が無ければ締めない", func(t *testing.T) {
		summary, err := env.practice.FinalizeIfSessionComplete(ctx, chatID)
		require.NoError(t, err)
		assert.Nil(t, summary)
	})

	size, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	require.Equal(t, int64(3), size)
	res, err := env.practice.Answer(ctx, chatID, ids[0], model.ResultCorrect)
	require.NoError(t, err)
	assert.False(t, res.SessionEmpty)

	t.Run("正常系: リセットでセッションと統計が消える", func(t *testing.T) {
		require.NoError(t, env.practice.ResetSession(ctx, chatID))

		count, err := env.practRep.CountSession(ctx, env.db, chatID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
		stats, err := env.progRep.GetStats(ctx, env.db, chatID)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)

		// 学習状態はそのまま
		assert.Equal(t, 1, env.record(t, chatID, ids[0]).Stage)
	})

	t.Run("正常系: プールが残っていれば締めない", func(t *testing.T) {
		summary, err := env.practice.FinalizeIfSessionComplete(ctx, chatID)
		require.NoError(t, err)
		assert.Nil(t, summary)

		remaining, err := env.practice.CountRemainingDue(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), remaining)
	})

	t.Run("正常系: 残りを終えると締める", func(t *testing.T) {
		_, err := env.practice.StartSession(ctx, chatID)
		require.NoError(t, err)
		last := answerAll(t, env, chatID, model.ResultIncorrect)
		require.NotNil(t, last.Summary)
		assert.Equal(t, 2, last.Summary.Stats.Total)
		assert.Equal(t, 0, last.Summary.Stats.Correct)

		// 締めた後は何もしない
		summary, err := env.practice.FinalizeIfSessionComplete(ctx, chatID)
		require.NoError(t, err)
		assert.Nil(t, summary)
	})
}

func TestPracticeService_MilestoneInsight(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(900)
	ids := env.addWords(t, chatID, 10)
	// 9語は既に Confident、1語が今回 Confident に上がる
	require.NoError(t, env.db.Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id IN ?", chatID, ids[1:]).
		Update("stage", model.ConfidentStage).Error)
	require.NoError(t, env.db.Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id = ?", chatID, ids[0]).
		Update("stage", model.ConfidentStage-1).Error)
	require.NoError(t, env.db.Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id IN ?", chatID, ids[1:]).
		Update("next_date", env.clock.Now().AddDate(0, 0, 30)).Error)

	_, err := env.practice.StartSession(ctx, chatID)
	require.NoError(t, err)
	res, err := env.practice.Answer(ctx, chatID, ids[0], model.ResultCorrect)
	require.NoError(t, err)
	require.NotNil(t, res.Summary)

	texts := make([]string, 0, len(res.Summary.Insights))
	for _, in := range res.Summary.Insights {
		texts = append(texts, in.String())
	}
	assert.Equal(t, []string{
		"🎯 Perfect round! 1/1!",
		"🏆 You already have 10 words at Confident level or above!",
	}, texts)
}

func TestPracticeService_RepositoryUnavailable(t *testing.T) {
	db := setupTestDB(t)
	ctx := testCtx()
	mockPractice := mocks.NewPracticeRepository(t)
	mockProgress := mocks.NewProgressRepository(t)
	mockWord := mocks.NewWordRepository(t)
	svc := NewPracticeService(db, mockPractice, mockProgress, mockWord, testConfig(), fixedRandom{}, nil)

	unavailable := fmt.Errorf("gormPracticeRepository.GetOrCreateDailyPool: %w", model.ErrRepositoryUnavailable)
	mockPractice.On("GetOrCreateDailyPool", mock.Anything, mock.Anything, int64(1), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), mock.Anything).
		Return(nil, unavailable).Once()

	_, err := svc.StartSession(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrRepositoryUnavailable))
	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "REPOSITORY_UNAVAILABLE", appErr.Code)
}

func TestPracticeService_Answer_RollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(1000)
	ids := env.addWords(t, chatID, 1)

	mockProgress := mocks.NewProgressRepository(t)
	svc := NewPracticeService(env.db, env.practRep, mockProgress, env.wordRep, env.cfg, fixedRandom{}, env.clock.Now)

	_, err := svc.StartSession(ctx, chatID)
	require.NoError(t, err)

	mockProgress.On("SaveSessionResult", mock.Anything, mock.Anything, mock.AnythingOfType("*model.SessionWordResult")).Return(nil).Once()
	mockProgress.On("IncrementStats", mock.Anything, mock.Anything, chatID, true).
		Return(fmt.Errorf("gormProgressRepository.IncrementStats: %w", model.ErrRepositoryUnavailable)).Once()

	_, err = svc.Answer(ctx, chatID, ids[0], model.ResultCorrect)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrRepositoryUnavailable))

	// 途中までの変更は残らない
	rec := env.record(t, chatID, ids[0])
	assert.Equal(t, 0, rec.Stage)
	count, err := env.practRep.CountSession(ctx, env.db, chatID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

var _ repository.PracticeRepository = (*mocks.PracticeRepository)(nil)

func TestPracticeService_RevealWord(t *testing.T) {
	env := newTestEnv(t)
	ctx := testCtx()
	chatID := int64(1000)
	ids := env.addWords(t, chatID, 2)

	t.Run("正常系: 両方の面を返す", func(t *testing.T) {
		pw, err := env.practice.RevealWord(ctx, chatID, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "word0", pw.Source)
		assert.Equal(t, "woord0", pw.Target)
		assert.Equal(t, 0, pw.Stage)
	})

	t.Run("異常系: 他のチャットの単語", func(t *testing.T) {
		_, err := env.practice.RevealWord(ctx, chatID+1, ids[0])
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 削除済みの単語", func(t *testing.T) {
		require.NoError(t, env.practRep.SoftDeletePracticeRecord(ctx, env.db, chatID, ids[1]))
		_, err := env.practice.RevealWord(ctx, chatID, ids[1])
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
