package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashFunc(t *testing.T) {
	assert.Equal(t, HashFunc(`{"order_id":10}`), HashFunc(`{"order_id":10}`))
	assert.NotEqual(t, HashFunc(`{"order_id":10}`), HashFunc(`{"order_id":11}`))
}
