package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("opcode 0x1f", From("opcode 0x%02x", 0x1f))
	assert.Equal("LD r,n", From("%[1]v %[2]v", "LD", "r,n"))
}

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	assert.Error(SetLanguage("not a language tag!"))
	assert.NoError(SetLanguage("en-US"))
}
