package pgtest

import (
	"logistics/internal/pkg/ddd"

	"github.com/stretchr/testify/mock"
)

// MockTracker records the aggregates a repository reports as written.
type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) Track(aggregate ddd.AggregateRoot) {
	m.Called(aggregate)
}
