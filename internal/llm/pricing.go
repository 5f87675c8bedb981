package llm

import "strings"

// ModelCost is a model's list price in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost prices one request's token usage.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	const perToken = 1e-6
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) * perToken
}

// LookupCost returns the price for modelID, or nil when it is not in the
// table. OpenRouter IDs like "openai/gpt-4o" are priced as the upstream
// model.
func LookupCost(modelID string) *ModelCost {
	id := modelID
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	c, ok := modelCosts[id]
	if !ok {
		return nil
	}
	return &c
}

// Vision-capable models only; list prices from models.dev.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5-20251001": {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-sonnet-4-20250514":  {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4-5":         {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-opus-4-1":           {InputPerMTok: 15, OutputPerMTok: 75},

	"gpt-4o-mini":  {InputPerMTok: 0.15, OutputPerMTok: 0.6},
	"gpt-4o":       {InputPerMTok: 2.5, OutputPerMTok: 10},
	"gpt-4.1-mini": {InputPerMTok: 0.4, OutputPerMTok: 1.6},
	"gpt-4.1":      {InputPerMTok: 2, OutputPerMTok: 8},
	"gpt-5-mini":   {InputPerMTok: 0.25, OutputPerMTok: 2},
	"gpt-5":        {InputPerMTok: 1.25, OutputPerMTok: 10},

	"gemini-2.0-flash":      {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.5-flash-lite": {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.5-flash":      {InputPerMTok: 0.3, OutputPerMTok: 2.5},
	"gemini-2.5-pro":        {InputPerMTok: 1.25, OutputPerMTok: 10},
}
