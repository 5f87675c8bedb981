package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("claude-sonnet-4-5")
	require.NotNil(t, c)
	assert.InDelta(t, 3.0+15.0, c.Cost(1_000_000, 1_000_000), 1e-9)

	routed := LookupCost("openai/gpt-4o-mini")
	require.NotNil(t, routed, "OpenRouter IDs price as the upstream model")
	assert.InDelta(t, 0.15, routed.Cost(1_000_000, 0), 1e-9)

	assert.Nil(t, LookupCost("local-ecg-model"))
}
