package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm sentinel", err: fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), want: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "postgres other", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "sqlite unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: true},
		{name: "sqlite not null", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}
	for _, tt := range tests {
		if got := IsDuplicateKey(tt.err); got != tt.want {
			t.Errorf("%s: IsDuplicateKey=%v want=%v", tt.name, got, tt.want)
		}
	}
}

func TestIsInvalidInput(t *testing.T) {
	if !IsInvalidInput(fmt.Errorf("query: %w", &pgconn.PgError{Code: "22P02"})) {
		t.Fatalf("22P02 must be classified as invalid input")
	}
	if IsInvalidInput(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("23505 is not invalid input")
	}
	if IsInvalidInput(nil) {
		t.Fatalf("nil is not invalid input")
	}
}

func TestSQLiteDSN(t *testing.T) {
	want := "file:/tmp/x.db?_busy_timeout=5000&_foreign_keys=on"
	if got := SQLiteDSN("/tmp/x.db"); got != want {
		t.Fatalf("SQLiteDSN=%q want=%q", got, want)
	}
}
