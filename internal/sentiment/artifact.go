package sentiment

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ClassifierArtifact is the serialized form of a trained classifier, written
// by the offline trainer and loaded read-only by the service. The service
// treats it as opaque beyond decoding.
type ClassifierArtifact struct {
	RunID     string          `json:"run_id"`
	TrainedAt time.Time       `json:"trained_at"`
	Family    string          `json:"family"`
	Labels    []string        `json:"labels"`
	Accuracy  float64         `json:"accuracy"`
	Params    json.RawMessage `json:"params"`
}

// SaveClassifier serializes the classifier with its metadata to path.
func SaveClassifier(path string, artifact ClassifierArtifact, clf Classifier) error {
	params, err := json.Marshal(clf)
	if err != nil {
		return fmt.Errorf("encode classifier params: %w", err)
	}
	artifact.Family = clf.Name()
	artifact.Params = params

	payload, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("encode classifier artifact: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write classifier artifact: %w", err)
	}
	return nil
}

// LoadClassifier reads a classifier artifact from path and reconstructs the
// concrete classifier family.
func LoadClassifier(path string) (Classifier, ClassifierArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ClassifierArtifact{}, fmt.Errorf("read classifier artifact: %w", err)
	}
	var artifact ClassifierArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, ClassifierArtifact{}, fmt.Errorf("decode classifier artifact: %w", err)
	}

	var clf Classifier
	switch artifact.Family {
	case "naive_bayes":
		clf = &NaiveBayes{}
	case "logistic_regression":
		clf = &LogisticRegression{}
	case "linear_svm":
		clf = &LinearSVM{}
	default:
		return nil, artifact, fmt.Errorf("unknown classifier family %q", artifact.Family)
	}
	if err := json.Unmarshal(artifact.Params, clf); err != nil {
		return nil, artifact, fmt.Errorf("decode %s params: %w", artifact.Family, err)
	}
	return clf, artifact, nil
}

// SaveVectorizer serializes the fitted vectorizer to path.
func SaveVectorizer(path string, v *Vectorizer) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vectorizer: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write vectorizer: %w", err)
	}
	return nil
}

// LoadVectorizer reads a fitted vectorizer from path.
func LoadVectorizer(path string) (*Vectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectorizer: %w", err)
	}
	var v Vectorizer
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode vectorizer: %w", err)
	}
	return &v, nil
}
