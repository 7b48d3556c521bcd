package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountRootDigit(t *testing.T) {
	assert.Equal(t, "1", Account{Code: "1"}.RootDigit())
	assert.Equal(t, "1", Account{Code: "1.1.001"}.RootDigit())
	assert.Equal(t, "4", Account{Code: "4.2"}.RootDigit())
	assert.Equal(t, "", Account{}.RootDigit())
}

func TestAccountCodeDepth(t *testing.T) {
	assert.Equal(t, 0, Account{}.CodeDepth())
	assert.Equal(t, 1, Account{Code: "1"}.CodeDepth())
	assert.Equal(t, 3, Account{Code: "1.1.001"}.CodeDepth())
}
