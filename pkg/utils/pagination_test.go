package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-5))
	assert.Equal(t, 1, ClampPage(1))
	assert.Equal(t, 7, ClampPage(7))
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, ClampPageSize(0))
	assert.Equal(t, DefaultPageSize, ClampPageSize(-1))
	assert.Equal(t, 1, ClampPageSize(1))
	assert.Equal(t, 15, ClampPageSize(15))
	assert.Equal(t, MaxPageSize, ClampPageSize(50))
	assert.Equal(t, MaxPageSize, ClampPageSize(100))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 15))
	assert.Equal(t, 1, CalculateTotalPages(1, 15))
	assert.Equal(t, 1, CalculateTotalPages(15, 15))
	assert.Equal(t, 2, CalculateTotalPages(16, 15))
	assert.Equal(t, 7, CalculateTotalPages(100, 15))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 15))
	assert.Equal(t, 15, CalculateOffset(2, 15))
	assert.Equal(t, 135, CalculateOffset(10, 15))
	assert.Equal(t, 0, CalculateOffset(0, 15))
}
