package errors

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlUnavailableCodes are server-side codes that mean the database cannot serve the
// request right now (too many connections, lock wait timeout, lost connection).
var mysqlUnavailableCodes = map[uint16]bool{
	1040: true,
	1205: true,
	2002: true,
	2003: true,
	2006: true,
	2013: true,
}

// FromDB translates a persistence error into an AppError. AppErrors pass through,
// record-not-found becomes 404, connection failures 503 and everything else 500.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if IsAppError(err) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("Not Found").WithCause(err)
	}
	if IsUnavailable(err) {
		return NewUnavailableError("데이터베이스에 연결할 수 없습니다.").WithCause(err)
	}
	return NewInternalError("데이터베이스 처리 중 오류가 발생했습니다.").WithCause(err)
}

// IsUnavailable reports connection-level and operational failures.
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return mysqlUnavailableCodes[myErr.Number]
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") || strings.Contains(msg, "bad connection")
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "UNIQUE constraint failed")
}
