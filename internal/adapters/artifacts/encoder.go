package artifacts

import "errors"

// Encoder is a categorical label encoder exported by the training job:
// classes in code order, so transform(label) = index of label in classes.
type Encoder struct {
	classes []string
	index   map[string]int
}

type encoderFile struct {
	Classes []string `json:"classes"`
}

func newEncoder(classes []string) (*Encoder, error) {
	if len(classes) == 0 {
		return nil, errors.New("encoder: empty vocabulary")
	}

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	return &Encoder{classes: classes, index: index}, nil
}

// Lookup returns the trained code for a label, or ok=false for labels outside
// the vocabulary.
func (e *Encoder) Lookup(label string) (int, bool) {
	code, ok := e.index[label]
	return code, ok
}

// Classes returns the trained vocabulary in code order.
func (e *Encoder) Classes() []string {
	return e.classes
}
