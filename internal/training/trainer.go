package training

import (
	"errors"
	"time"

	"reviewpulse/internal/models"
	"reviewpulse/internal/sentiment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options controls a training run.
type Options struct {
	Seed         int64
	TestFraction float64
	MaxFeatures  int
}

// DefaultOptions mirrors the reference training setup: fixed seed, 80/20
// split, 2000-term vocabulary.
func DefaultOptions() Options {
	return Options{
		Seed:         42,
		TestFraction: 0.2,
		MaxFeatures:  2000,
	}
}

// FamilyScore is one candidate's held-out accuracy.
type FamilyScore struct {
	Family   string
	Accuracy float64
}

// Report summarizes a completed run.
type Report struct {
	RunID      string
	TrainedAt  time.Time
	TrainSize  int
	TestSize   int
	Scores     []FamilyScore
	BestFamily string
	BestScore  float64
}

// Result carries the winning pair out of a run.
type Result struct {
	Model      *sentiment.Model
	Vectorizer *sentiment.Vectorizer
	Classifier sentiment.Classifier
	Report     Report
}

// Trainer runs the one-shot model selection: fit a shared encoder on the
// training split, train every candidate family on identical features, score
// on held-out accuracy and keep the single best pair.
type Trainer struct {
	opts   Options
	logger *zap.Logger
}

// NewTrainer builds a trainer.
func NewTrainer(opts Options, logger *zap.Logger) *Trainer {
	return &Trainer{opts: opts, logger: logger}
}

// Run trains on docs and returns the winning model with its report.
func (t *Trainer) Run(docs []Document) (*Result, error) {
	report := Report{
		RunID:     uuid.New().String(),
		TrainedAt: time.Now(),
	}

	docs = WithNeutralExamples(docs)
	train, test := StratifiedSplit(docs, t.opts.TestFraction, t.opts.Seed)
	if len(train) == 0 || len(test) == 0 {
		return nil, errors.New("not enough samples to split into train and test sets")
	}
	report.TrainSize = len(train)
	report.TestSize = len(test)

	labels := models.AllSentiments
	labelIndex := make(map[string]int, len(labels))
	for i, label := range labels {
		labelIndex[label] = i
	}

	trainTexts := make([]string, len(train))
	for i, doc := range train {
		trainTexts[i] = doc.Text
	}
	vectorizer := sentiment.NewVectorizer(t.opts.MaxFeatures)
	vectorizer.Fit(trainTexts)

	X := make([]sentiment.Vector, len(train))
	y := make([]int, len(train))
	for i, doc := range train {
		X[i] = vectorizer.Transform(doc.Text)
		y[i] = labelIndex[doc.Label]
	}

	candidates := []sentiment.Classifier{
		sentiment.NewNaiveBayes(),
		sentiment.NewLogisticRegression(),
		sentiment.NewLinearSVM(),
	}

	var best sentiment.Classifier
	for _, clf := range candidates {
		clf.Fit(X, y, len(labels), vectorizer.NumFeatures())
		accuracy := evaluate(clf, vectorizer, test, labelIndex)
		report.Scores = append(report.Scores, FamilyScore{Family: clf.Name(), Accuracy: accuracy})

		t.logger.Info("Candidate evaluated",
			zap.String("family", clf.Name()),
			zap.Float64("accuracy", accuracy))

		if best == nil || accuracy > report.BestScore {
			best = clf
			report.BestFamily = clf.Name()
			report.BestScore = accuracy
		}
	}

	t.logger.Info("Training complete",
		zap.String("run_id", report.RunID),
		zap.String("best_family", report.BestFamily),
		zap.Float64("accuracy", report.BestScore),
		zap.Int("train_size", report.TrainSize),
		zap.Int("test_size", report.TestSize))

	return &Result{
		Model:      sentiment.NewModel(vectorizer, best, labels),
		Vectorizer: vectorizer,
		Classifier: best,
		Report:     report,
	}, nil
}

// SaveArtifacts writes the winning pair to the two artifact paths consumed by
// the service.
func (t *Trainer) SaveArtifacts(classifierPath, vectorizerPath string, result *Result) error {
	artifact := sentiment.ClassifierArtifact{
		RunID:     result.Report.RunID,
		TrainedAt: result.Report.TrainedAt,
		Labels:    models.AllSentiments,
		Accuracy:  result.Report.BestScore,
	}
	if err := sentiment.SaveClassifier(classifierPath, artifact, result.Classifier); err != nil {
		return err
	}
	if err := sentiment.SaveVectorizer(vectorizerPath, result.Vectorizer); err != nil {
		return err
	}

	t.logger.Info("Artifacts written",
		zap.String("classifier", classifierPath),
		zap.String("vectorizer", vectorizerPath))
	return nil
}

func evaluate(clf sentiment.Classifier, vectorizer *sentiment.Vectorizer, test []Document, labelIndex map[string]int) float64 {
	if len(test) == 0 {
		return 0
	}
	correct := 0
	for _, doc := range test {
		probs := clf.PredictProba(vectorizer.Transform(doc.Text))
		best := 0
		for i, p := range probs {
			if p > probs[best] {
				best = i
			}
		}
		if best == labelIndex[doc.Label] {
			correct++
		}
	}
	return float64(correct) / float64(len(test))
}
