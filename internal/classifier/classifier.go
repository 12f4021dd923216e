package classifier

import "context"

// Prediction is the emotion model's output for one input text.
type Prediction struct {
	// Label is one of the model's fixed emotion vocabulary.
	Label string
	// Confidence is the model's score for Label, in [0,1].
	Confidence float64
}

// Classifier maps free text to an emotion label with a confidence value.
// The production implementation calls an external pretrained model; tests
// substitute a deterministic stub.
type Classifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}
