// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"testing"

	"github.com/katalvlaran/georoute/core"
	"github.com/stretchr/testify/assert"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultStep, cfg.step)
	assert.Equal(t, core.Coord{}, cfg.origin)
	assert.Equal(t, 5.0, cfg.weightFn(core.Coord{}, core.Coord{Lon: 3, Lat: 4}, nil))
}

func TestBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithStep(1), WithStep(2), WithOrigin(1, 2), WithConstantWeight(9))
	assert.Equal(t, 2.0, cfg.step)
	assert.Equal(t, core.Coord{Lon: 5, Lat: 8}, cfg.at(3, 2))
	assert.Equal(t, 9.0, cfg.weightFn(core.Coord{}, core.Coord{Lon: 1}, nil))
}
