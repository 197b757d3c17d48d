package dh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestLimitClamps(t *testing.T) {
	c := Config{Min: -1, Max: 1}
	assert.Equal(t, float32(-1), c.Limit(-5))
	assert.Equal(t, float32(1), c.Limit(5))
	assert.Equal(t, float32(0.5), c.Limit(0.5))
}

func TestTransformPureRotation(t *testing.T) {
	c := Config{}
	m := c.Transform(math32.Pi / 2)
	assert.InDelta(t, 0, m[0][0], 1e-5)
	assert.InDelta(t, -1, m[0][1], 1e-5)
}

func TestForwardIdentityTableIsIdentity(t *testing.T) {
	table := Table{{}, {}}
	m := table.Forward([]float32{0, 0})
	assert.InDelta(t, 1, m[0][0], 1e-5)
	assert.InDelta(t, 1, m[1][1], 1e-5)
	assert.InDelta(t, 1, m[2][2], 1e-5)
	assert.InDelta(t, 0, m[0][3], 1e-5)
}

func TestForwardTranslatesAlongR(t *testing.T) {
	table := Table{{R: 5}}
	m := table.Forward([]float32{0})
	assert.InDelta(t, 5, m[0][3], 1e-5)
}
