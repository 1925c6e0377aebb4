package aci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoredGravityPair(t *testing.T) {
	effects := LoadEffects{
		Dead: LoadEffect{P: 80, M: 6},
		Live: LoadEffect{P: 45, M: 4},
	}

	// 1.2D + 1.6L
	pu, mu := SimplifiedCombinations[1].Factored(effects)
	assert.InDelta(t, 1.2*80+1.6*45, pu, 1e-9)
	assert.InDelta(t, 1.2*6+1.6*4, mu, 1e-9)
}

func TestGoverningSelectsLargestMoment(t *testing.T) {
	effects := LoadEffects{
		Dead: LoadEffect{P: 80, M: 6},
		Live: LoadEffect{P: 45, M: 4},
	}

	pu, mu, governing := Governing(effects, SimplifiedCombinations)
	assert.Equal(t, "2", governing.ID)
	assert.InDelta(t, 168, pu, 1e-9)
	assert.InDelta(t, 13.6, mu, 1e-9)
}

func TestGoverningDeadOnly(t *testing.T) {
	effects := LoadEffects{
		Dead: LoadEffect{P: 100, M: 10},
	}

	_, mu, governing := Governing(effects, SimplifiedCombinations)
	assert.Equal(t, "1", governing.ID)
	assert.InDelta(t, 14, mu, 1e-9)
}

func TestIsZero(t *testing.T) {
	assert.True(t, LoadEffects{}.IsZero())
	assert.False(t, LoadEffects{Wind: LoadEffect{M: 2}}.IsZero())
	assert.False(t, LoadEffects{Live: LoadEffect{P: 1}}.IsZero())
}
