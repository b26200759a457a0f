package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestStoreErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: "duplicate_key",
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			want: "foreign_key",
		},
		{
			name: "not null violation",
			err:  &pgconn.PgError{Code: "23502"},
			want: "not_null",
		},
		{
			name: "other pg code keeps the code",
			err:  &pgconn.PgError{Code: "42P01"},
			want: "pg_42P01",
		},
		{
			name: "wrapped pg error is unwrapped",
			err:  fmt.Errorf("insert order: %w", &pgconn.PgError{Code: "23505"}),
			want: "duplicate_key",
		},
		{
			name: "connection message sniffed",
			err:  errors.New("failed to establish connection"),
			want: "connection",
		},
		{
			name: "deadline message sniffed",
			err:  errors.New("context deadline exceeded"),
			want: "timeout",
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StoreErrorKind(tt.err); got != tt.want {
				t.Errorf("StoreErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsDuplicateKey(t *testing.T) {
	if !IsDuplicateKey(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation not detected")
	}
	if !IsDuplicateKey(fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"})) {
		t.Error("wrapped unique violation not detected")
	}
	if IsDuplicateKey(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation misclassified")
	}
	if IsDuplicateKey(errors.New("duplicate key value")) {
		t.Error("message sniffing should not apply here")
	}
}
