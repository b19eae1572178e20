package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetIf(t *testing.T) {
	assert.Equal(t, SetIf(0x00, 0x04, true), byte(0x04))
	assert.Equal(t, SetIf(0xff, 0x04, false), byte(0xfb))
}
