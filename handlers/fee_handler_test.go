package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(fmt.Errorf("create transaction: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isDuplicateKey(gorm.ErrRecordNotFound))
	assert.False(t, isDuplicateKey(errors.New("connection reset")))
	assert.False(t, isDuplicateKey(nil))
}
