package artifacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A two-tree ensemble splitting on the peak flag (column 1): peak samples
// average (10+6)/2, off-peak (2+0)/2.
func testForest() *ForestRegressor {
	return &ForestRegressor{
		ModelName: "random_forest",
		NFeatures: 4,
		Trees: []regressionTree{
			{Nodes: []treeNode{
				{Feature: 1, Threshold: 0.5, Left: 1, Right: 2},
				{Feature: -1, Value: 2.0},
				{Feature: -1, Value: 10.0},
			}},
			{Nodes: []treeNode{
				{Feature: 1, Threshold: 0.5, Left: 1, Right: 2},
				{Feature: -1, Value: 0.0},
				{Feature: -1, Value: 6.0},
			}},
		},
	}
}

func TestForestPredict(t *testing.T) {
	f := testForest()
	require.NoError(t, f.validate())

	peak, err := f.Predict([]float64{8, 1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 8.0, peak)

	offPeak, err := f.Predict([]float64{13, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, offPeak)
}

func TestForestPredictRejectsWrongWidth(t *testing.T) {
	f := testForest()

	_, err := f.Predict([]float64{8, 1})
	assert.Error(t, err)
}

func TestForestValidateRejectsCorruptTrees(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ForestRegressor)
	}{
		{"no trees", func(f *ForestRegressor) { f.Trees = nil }},
		{"empty tree", func(f *ForestRegressor) { f.Trees[0].Nodes = nil }},
		{"feature out of range", func(f *ForestRegressor) { f.Trees[0].Nodes[0].Feature = 7 }},
		{"child out of range", func(f *ForestRegressor) { f.Trees[0].Nodes[0].Left = 99 }},
		{"bad feature count", func(f *ForestRegressor) { f.NFeatures = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := testForest()
			c.mutate(f)
			assert.Error(t, f.validate())
		})
	}
}

func TestForestPredictDetectsCycle(t *testing.T) {
	f := &ForestRegressor{
		NFeatures: 4,
		Trees: []regressionTree{
			{Nodes: []treeNode{
				{Feature: 0, Threshold: 100, Left: 0, Right: 0},
			}},
		},
	}

	_, err := f.Predict([]float64{8, 1, 0, 0})
	assert.Error(t, err)
}
