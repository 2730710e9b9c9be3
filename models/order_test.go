package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, IsValidOrderStatus(status), status)
	}

	assert.False(t, IsValidOrderStatus("completed"))
	assert.False(t, IsValidOrderStatus("PENDING"))
	assert.False(t, IsValidOrderStatus(""))
}
