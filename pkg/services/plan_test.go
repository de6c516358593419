package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
)

func TestParsePlanSteps(t *testing.T) {
	t.Run("parses fenced JSON array", func(t *testing.T) {
		reply := "Here is the plan:\n```json\n" +
			`[{"name": "write handler", "capability": "coding", "language": "go", "description": "Add the endpoint"},
			  {"name": "add tests", "capability": "testing", "dependsOn": ["write handler"]}]` +
			"\n```\nLet me know if you want changes."

		steps, err := ParsePlanSteps(reply)
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, "write handler", steps[0].Name)
		assert.Equal(t, "coding", steps[0].Capability)
		assert.Equal(t, "go", steps[0].Language)
		assert.Equal(t, []string{"write handler"}, steps[1].DependsOn)
	})

	t.Run("parses bare array surrounded by prose", func(t *testing.T) {
		reply := `Sure. [{"name": "a", "capability": "coding"}] Done.`
		steps, err := ParsePlanSteps(reply)
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, "a", steps[0].Name)
	})

	t.Run("handles brackets inside string values", func(t *testing.T) {
		reply := `[{"name": "fix [urgent]", "capability": "fixing", "description": "see list: [1, 2]"}]`
		steps, err := ParsePlanSteps(reply)
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, "fix [urgent]", steps[0].Name)
	})

	t.Run("rejects reply with no array", func(t *testing.T) {
		_, err := ParsePlanSteps("I could not produce a plan.")
		require.Error(t, err)
	})

	t.Run("rejects empty array", func(t *testing.T) {
		_, err := ParsePlanSteps("[]")
		require.Error(t, err)
	})

	t.Run("rejects step without name", func(t *testing.T) {
		_, err := ParsePlanSteps(`[{"capability": "coding"}]`)
		require.Error(t, err)
	})

	t.Run("rejects step without capability", func(t *testing.T) {
		_, err := ParsePlanSteps(`[{"name": "x"}]`)
		require.Error(t, err)
	})

	t.Run("keeps unknown capabilities", func(t *testing.T) {
		steps, err := ParsePlanSteps(`[{"name": "x", "capability": "deploying"}]`)
		require.NoError(t, err)
		assert.Equal(t, "deploying", steps[0].Capability)
	})
}

func TestParsePlanDelta(t *testing.T) {
	t.Run("extracts delta from fenced block", func(t *testing.T) {
		reply := "I added a step.\n```json\n" +
			`{"stepsAdded": [{"name": "new step", "capability": "coding"}], "stepsRemoved": ["old step"]}` +
			"\n```"

		delta := ParsePlanDelta(reply)
		require.NotNil(t, delta)
		require.Len(t, delta.StepsAdded, 1)
		assert.Equal(t, "new step", delta.StepsAdded[0].Name)
		assert.Equal(t, []string{"old step"}, delta.StepsRemoved)
		assert.False(t, delta.AnalysisUpdated)
	})

	t.Run("plain prose yields nil", func(t *testing.T) {
		assert.Nil(t, ParsePlanDelta("The plan looks good as-is."))
	})

	t.Run("empty delta object yields nil", func(t *testing.T) {
		assert.Nil(t, ParsePlanDelta(`{"stepsAdded": [], "stepsRemoved": []}`))
	})

	t.Run("analysis-only update is a delta", func(t *testing.T) {
		delta := ParsePlanDelta(`{"analysisUpdated": true}`)
		require.NotNil(t, delta)
		assert.True(t, delta.AnalysisUpdated)
	})
}

func TestStripPlanDelta(t *testing.T) {
	reply := "Before.\n```json\n{\"stepsRemoved\": [\"x\"]}\n```\nAfter."
	assert.Equal(t, "Before.\n\nAfter.", StripPlanDelta(reply))

	assert.Equal(t, "No block here.", StripPlanDelta("  No block here.  "))
}

func planStep(id, name string, wave int, deps ...string) *ent.Step {
	s := &ent.Step{ID: id, Name: name, DependsOn: deps}
	if wave > 0 {
		s.Wave = &wave
	}
	return s
}

func TestLayerWaves(t *testing.T) {
	t.Run("edge-free plan layers sequentially", func(t *testing.T) {
		steps := []*ent.Step{
			planStep("s1", "one", 0),
			planStep("s2", "two", 0),
			planStep("s3", "three", 0),
		}
		waves, err := LayerWaves(steps)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"s1": 1, "s2": 2, "s3": 3}, waves)
	})

	t.Run("diamond DAG layers by longest path", func(t *testing.T) {
		steps := []*ent.Step{
			planStep("a", "base", 0),
			planStep("b", "left", 0, "base"),
			planStep("c", "right", 0, "base"),
			planStep("d", "join", 0, "left", "right"),
		}
		waves, err := LayerWaves(steps)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 2, "d": 3}, waves)
	})

	t.Run("edges resolve by id as well as name", func(t *testing.T) {
		steps := []*ent.Step{
			planStep("a", "base", 0),
			planStep("b", "next", 0, "a"),
		}
		waves, err := LayerWaves(steps)
		require.NoError(t, err)
		assert.Equal(t, 2, waves["b"])
	})

	t.Run("dangling dependencies are dropped", func(t *testing.T) {
		steps := []*ent.Step{
			planStep("a", "one", 0, "nonexistent"),
			planStep("b", "two", 0, "one"),
		}
		waves, err := LayerWaves(steps)
		require.NoError(t, err)
		assert.Equal(t, 1, waves["a"])
		assert.Equal(t, 2, waves["b"])
	})

	t.Run("cycle is an error", func(t *testing.T) {
		steps := []*ent.Step{
			planStep("a", "one", 0, "two"),
			planStep("b", "two", 0, "one"),
		}
		_, err := LayerWaves(steps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("self-dependency is ignored", func(t *testing.T) {
		steps := []*ent.Step{
			planStep("a", "one", 0, "one"),
			planStep("b", "two", 0, "one"),
		}
		waves, err := LayerWaves(steps)
		require.NoError(t, err)
		assert.Equal(t, 1, waves["a"])
		assert.Equal(t, 2, waves["b"])
	})
}

func TestReworkSet(t *testing.T) {
	t.Run("without edges every later-wave step is affected", func(t *testing.T) {
		rejected := planStep("s1", "one", 1)
		all := []*ent.Step{
			rejected,
			planStep("s2", "peer", 1),
			planStep("s3", "later", 2),
			planStep("s4", "latest", 3),
		}
		set := ReworkSet(rejected, all)
		ids := make([]string, 0, len(set))
		for _, s := range set {
			ids = append(ids, s.ID)
		}
		assert.ElementsMatch(t, []string{"s3", "s4"}, ids)
	})

	t.Run("with edges only transitive dependents are affected", func(t *testing.T) {
		rejected := planStep("a", "base", 1)
		all := []*ent.Step{
			rejected,
			planStep("b", "uses base", 2, "base"),
			planStep("c", "uses b", 3, "uses base"),
			planStep("d", "independent", 2, "other root"),
			planStep("e", "other root", 1),
		}
		set := ReworkSet(rejected, all)
		ids := make([]string, 0, len(set))
		for _, s := range set {
			ids = append(ids, s.ID)
		}
		assert.ElementsMatch(t, []string{"b", "c"}, ids)
	})

	t.Run("rejecting a leaf affects nothing", func(t *testing.T) {
		rejected := planStep("c", "leaf", 3, "base")
		all := []*ent.Step{
			planStep("a", "base", 1),
			planStep("b", "mid", 2, "base"),
			rejected,
		}
		assert.Empty(t, ReworkSet(rejected, all))
	})
}
