package artifacts

import (
	"errors"
	"fmt"
)

// treeNode is a single decision node. Leaves carry Feature == -1 and a Value;
// internal nodes split on features[Feature] <= Threshold.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

type regressionTree struct {
	Nodes []treeNode `json:"nodes"`
}

// ForestRegressor is the serialized tree ensemble exported by the training
// job. Evaluation averages the per-tree estimates. The structure is read-only
// after load, so Predict is re-entrant without locking.
type ForestRegressor struct {
	ModelName string           `json:"model_name"`
	NFeatures int              `json:"n_features"`
	Trees     []regressionTree `json:"trees"`
}

// validate rejects structurally corrupt ensembles at load time so a bad
// artifact degrades the service to fallback mode instead of failing mid-call.
func (f *ForestRegressor) validate() error {
	if f.NFeatures <= 0 {
		return fmt.Errorf("model: invalid feature count %d", f.NFeatures)
	}
	if len(f.Trees) == 0 {
		return errors.New("model: no trees")
	}

	for ti, t := range f.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("model: tree %d has no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.Feature < 0 {
				continue // leaf
			}
			if n.Feature >= f.NFeatures {
				return fmt.Errorf("model: tree %d node %d splits on feature %d of %d", ti, ni, n.Feature, f.NFeatures)
			}
			if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
				return fmt.Errorf("model: tree %d node %d has child out of range", ti, ni)
			}
		}
	}

	return nil
}

// Predict scores a single sample in training column order.
func (f *ForestRegressor) Predict(features []float64) (float64, error) {
	if len(features) != f.NFeatures {
		return 0, fmt.Errorf("model: got %d features, want %d", len(features), f.NFeatures)
	}

	sum := 0.0
	for ti := range f.Trees {
		v, err := f.Trees[ti].evaluate(features)
		if err != nil {
			return 0, fmt.Errorf("model: tree %d: %w", ti, err)
		}
		sum += v
	}

	return sum / float64(len(f.Trees)), nil
}

func (t *regressionTree) evaluate(features []float64) (float64, error) {
	node := 0
	// A well-formed tree terminates within len(Nodes) steps; the cap turns a
	// cyclic artifact into an error instead of an infinite loop.
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[node]
		if n.Feature < 0 {
			return n.Value, nil
		}
		if features[n.Feature] <= n.Threshold {
			node = n.Left
		} else {
			node = n.Right
		}
	}

	return 0, errors.New("cycle detected during evaluation")
}
