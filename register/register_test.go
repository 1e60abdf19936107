package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		index Index
		ok    bool
	}){
		{"A", 0, true},
		{"Z", 25, true},
		{"AB", 0, true},
		{"BC", 1, true},
		{"XYZ", 23, true},
		{"ABCD", 0, true},
		{"ZA", 25, true},
		{"YZAB", 24, true},
		{"zab", 25, true},
		{"", 0, false},
		{"AC", 0, false},
		{"ABCDE", 0, false},
		{"A1", 0, false},
		{"SPC", 0, false},
		{"F3", 0, false},
	}

	for _, entry := range table {
		index, ok := Resolve(entry.name)
		assert.Equal(entry.ok, ok, entry.name)
		assert.Equal(entry.index, index, entry.name)
	}
}

func TestResolveAlias(t *testing.T) {
	assert := assert.New(t)

	za, ok := Resolve("ZA")
	assert.True(ok)
	z, ok := Resolve("Z")
	assert.True(ok)
	assert.Equal(z, za)

	ab, _ := Resolve("AB")
	b, _ := Resolve("B")
	a, _ := Resolve("A")
	assert.NotEqual(b, ab)
	assert.Equal(a, ab)

	// Only wraparound groups alias a group starting at another letter's name.
	for start := range COUNT {
		for width := 1; width <= MAX_WIDTH; width++ {
			index, ok := Resolve(Name(Index(start), width))
			assert.True(ok)
			assert.Equal(Index(start), index)
		}
	}
}

func TestWidth(t *testing.T) {
	assert := assert.New(t)

	width, ok := Width("XYZ")
	assert.True(ok)
	assert.Equal(3, width)

	_, ok = Width("XZ")
	assert.False(ok)
}

func TestResolveFloat(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		index Index
		ok    bool
	}){
		{"F0", 0, true},
		{"F3", 3, true},
		{"F15", 15, true},
		{"FR0", 0, true},
		{"FR12", 12, true},
		{"fr7", 7, true},
		{"F16", 0, false},
		{"FR99", 0, false},
		{"F", 0, false},
		{"FR", 0, false},
		{"F1A", 0, false},
		{"F-1", 0, false},
		{"F+1", 0, false},
		{"F001", 0, false},
		{"G1", 0, false},
	}

	for _, entry := range table {
		index, ok := ResolveFloat(entry.name)
		assert.Equal(entry.ok, ok, entry.name)
		assert.Equal(entry.index, index, entry.name)
	}
}

func TestIsSpecial(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsSpecial("SPC"))
	assert.True(IsSpecial("SPR"))
	assert.True(IsSpecial("ipo"))
	assert.False(IsSpecial("A"))
	assert.False(IsSpecial("SP"))
}

func TestName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("A", Name(0, 1))
	assert.Equal("ZA", Name(25, 2))
	assert.Equal("XYZA", Name(23, 4))
	assert.Equal("", Name(26, 1))
	assert.Equal("", Name(0, 5))
	assert.Equal("", Name(0, 0))

	assert.Equal("F15", FloatName(15))
	assert.Equal("", FloatName(16))
}
