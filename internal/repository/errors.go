package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"go_4_word_learn/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// リトライ可能として扱う PostgreSQL の SQLSTATE
var retryablePgCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
	"57014": true, // query_canceled (statement_timeout)
	"57P01": true, // admin_shutdown
}

// translateError はドライバ固有のエラーをアプリケーションのエラーに変換します。
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrRepositoryUnavailable) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", model.ErrConflict, err)
	}
	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", model.ErrRepositoryUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %w", model.ErrConflict, err)
	}
	return err
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08: connection exception
		return retryablePgCodes[pgErr.Code] || strings.HasPrefix(pgErr.Code, "08")
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}

	// sqlite (mattn/go-sqlite3) はロック競合を文字列でしか区別できない
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}

// wrap はメソッド名を付けてエラーを包む
func wrap(op string, err error) error {
	err = translateError(err)
	if err == nil || errors.Is(err, model.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
