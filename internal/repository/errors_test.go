// internal/repository/errors_test.go
package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"go_4_word_learn/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("syntax error at or near")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "正常系: nil", err: nil, want: nil},
		{name: "正常系: レコード無し", err: gorm.ErrRecordNotFound, want: model.ErrNotFound},
		{name: "正常系: 重複キー", err: gorm.ErrDuplicatedKey, want: model.ErrConflict},
		{name: "正常系: PG 一意制約違反", err: &pgconn.PgError{Code: "23505"}, want: model.ErrConflict},
		{name: "正常系: PG デッドロック", err: &pgconn.PgError{Code: "40P01"}, want: model.ErrRepositoryUnavailable},
		{name: "正常系: PG 接続断", err: &pgconn.PgError{Code: "08006"}, want: model.ErrRepositoryUnavailable},
		{name: "正常系: タイムアウト", err: context.DeadlineExceeded, want: model.ErrRepositoryUnavailable},
		{name: "正常系: 壊れた接続", err: fmt.Errorf("exec: %w", driver.ErrBadConn), want: model.ErrRepositoryUnavailable},
		{name: "正常系: sqlite ロック", err: errors.New("database is locked"), want: model.ErrRepositoryUnavailable},
		{name: "正常系: 既に変換済み", err: fmt.Errorf("x: %w", model.ErrRepositoryUnavailable), want: model.ErrRepositoryUnavailable},
		{name: "正常系: その他はそのまま", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestWrap(t *testing.T) {
	assert.NoError(t, wrap("op", nil))
	// ErrNotFound は包まずに返す
	assert.Equal(t, model.ErrNotFound, wrap("op", gorm.ErrRecordNotFound))

	err := wrap("gormPracticeRepository.CountDue", context.DeadlineExceeded)
	assert.ErrorIs(t, err, model.ErrRepositoryUnavailable)
	assert.Contains(t, err.Error(), "gormPracticeRepository.CountDue")
}
