package appointment

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"store unavailable sentinel", ErrStoreUnavailable, true},
		{"wrapped store unavailable", fmt.Errorf("op: %w", ErrStoreUnavailable), true},
		{"bad connection", driver.ErrBadConn, true},
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"deadlock detected", &pq.Error{Code: "40P01"}, true},
		{"connection exception class 08", &pq.Error{Code: "08006"}, true},
		{"unique violation is not transient", &pq.Error{Code: "23505"}, false},
		{"duplicate slot is a business outcome", ErrDuplicateSlot, false},
		{"not found", ErrAppointmentNotFound, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "40001"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestClassify(t *testing.T) {
	// Транзиентная ошибка становится ErrStoreUnavailable
	err := classify(&pq.Error{Code: "40001"}, ErrExecQuery, "Create")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	// Остальные — fallback
	err = classify(errors.New("syntax error"), ErrExecQuery, "Create")
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
}
