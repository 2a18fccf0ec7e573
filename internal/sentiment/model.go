package sentiment

import (
	"fmt"

	"go.uber.org/zap"
)

// Model pairs a fitted vectorizer with a trained classifier. It is immutable
// after construction and safe for concurrent use by request handlers.
type Model struct {
	vectorizer *Vectorizer
	classifier Classifier
	labels     []string
}

// NewModel builds a model from already-constructed parts (used by the trainer
// and by tests).
func NewModel(v *Vectorizer, clf Classifier, labels []string) *Model {
	return &Model{vectorizer: v, classifier: clf, labels: labels}
}

// LoadModel reads the two artifact files produced by the trainer. A missing
// or unreadable artifact is a fatal condition for the caller.
func LoadModel(classifierPath, vectorizerPath string, logger *zap.Logger) (*Model, error) {
	vectorizer, err := LoadVectorizer(vectorizerPath)
	if err != nil {
		return nil, fmt.Errorf("load vectorizer: %w", err)
	}
	clf, artifact, err := LoadClassifier(classifierPath)
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	if len(artifact.Labels) == 0 {
		return nil, fmt.Errorf("classifier artifact %s carries no labels", classifierPath)
	}

	logger.Info("Sentiment model loaded",
		zap.String("family", artifact.Family),
		zap.String("run_id", artifact.RunID),
		zap.Float64("accuracy", artifact.Accuracy),
		zap.Int("vocabulary_size", vectorizer.NumFeatures()))

	return NewModel(vectorizer, clf, artifact.Labels), nil
}

// Predict encodes text and returns the best label with the full class
// distribution, ordered as Labels().
func (m *Model) Predict(text string) (string, []float64) {
	vec := m.vectorizer.Transform(text)
	probs := m.classifier.PredictProba(vec)

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return m.labels[best], probs
}

// Labels returns the class ordering used by Predict.
func (m *Model) Labels() []string {
	return m.labels
}
