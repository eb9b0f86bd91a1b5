package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	assert := assert.New(t)
	hash, err := HashPassword("password123")
	assert.NoError(err)
	assert.NotEqual("password123", hash)
	assert.True(CheckPasswordHash("password123", hash))
	assert.False(CheckPasswordHash("wrongpassword", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("password123", "not-a-hash"))
}

func TestIsEmail(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsEmail("user@example.com"))
	assert.True(IsEmail("first.last@sub.example.co"))
	assert.False(IsEmail("not-an-email"))
	assert.False(IsEmail(""))
	assert.False(IsEmail("user@"))
}
