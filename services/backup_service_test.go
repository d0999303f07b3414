package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSQLLiteral(t *testing.T) {
	ts := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "nil", in: nil, want: "NULL"},
		{name: "true", in: true, want: "TRUE"},
		{name: "false", in: false, want: "FALSE"},
		{name: "int64", in: int64(42), want: "42"},
		{name: "float64", in: float64(99.5), want: "99.5"},
		{name: "plain string", in: "hello", want: "'hello'"},
		{name: "string with quote", in: "O'Brien", want: "'O''Brien'"},
		{name: "bytes", in: []byte("it's"), want: "'it''s'"},
		{name: "timestamp", in: ts, want: "'2026-08-31 14:30:00+00'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlLiteral(tt.in))
		})
	}
}
