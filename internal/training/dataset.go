// Package training implements the offline batch job that fits the candidate
// classifier families over the labeled review dataset and serializes the best
// one for the service to load.
package training

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"reviewpulse/internal/models"
)

// Document is a labeled text sample.
type Document struct {
	Text  string
	Label string
}

// LoadTSV reads the tab-separated review dataset. The expected columns are
// Review and Liked (1/0); the binary label maps to Positive/Negative and
// incomplete rows are dropped.
func LoadTSV(path string) ([]Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var docs []Document
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset line %d: %w", row+1, err)
		}
		row++
		if len(record) < 2 {
			continue
		}
		if row == 1 && looksLikeHeader(record) {
			continue
		}

		text := strings.TrimSpace(record[0])
		liked := strings.TrimSpace(record[1])
		if text == "" {
			continue
		}

		var label string
		switch liked {
		case "1":
			label = models.SentimentPositive
		case "0":
			label = models.SentimentNegative
		default:
			continue
		}
		docs = append(docs, Document{Text: text, Label: label})
	}

	if len(docs) == 0 {
		return nil, errors.New("dataset is empty")
	}
	return docs, nil
}

func looksLikeHeader(record []string) bool {
	left := strings.ToLower(strings.TrimSpace(record[0]))
	right := strings.ToLower(strings.TrimSpace(record[1]))
	return strings.Contains(left, "review") && strings.Contains(right, "liked")
}

// WithNeutralExamples appends the hand-authored Neutral samples that
// introduce the third class.
func WithNeutralExamples(docs []Document) []Document {
	out := make([]Document, 0, len(docs)+len(neutralReviews))
	out = append(out, docs...)
	for _, text := range neutralReviews {
		out = append(out, Document{Text: text, Label: models.SentimentNeutral})
	}
	return out
}

// StratifiedSplit splits docs into train/test keeping per-label proportions,
// using a seeded shuffle so runs are reproducible. The returned train split
// is shuffled across labels.
func StratifiedSplit(docs []Document, testFraction float64, seed int64) (train, test []Document) {
	if testFraction <= 0 || testFraction >= 1 {
		testFraction = 0.2
	}
	rng := rand.New(rand.NewSource(seed))

	byLabel := make(map[string][]Document)
	var labels []string
	for _, doc := range docs {
		if _, ok := byLabel[doc.Label]; !ok {
			labels = append(labels, doc.Label)
		}
		byLabel[doc.Label] = append(byLabel[doc.Label], doc)
	}

	for _, label := range labels {
		group := byLabel[label]
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		testSize := int(float64(len(group)) * testFraction)
		if testSize == 0 && len(group) > 1 {
			testSize = 1
		}
		test = append(test, group[:testSize]...)
		train = append(train, group[testSize:]...)
	}

	// Interleave classes so SGD does not see one label at a time.
	rng.Shuffle(len(train), func(i, j int) {
		train[i], train[j] = train[j], train[i]
	})
	return train, test
}

var neutralReviews = []string{
	"The food was okay, nothing special.",
	"Service was average, not too bad.",
	"It was just fine, not great, not terrible.",
	"The restaurant is okay for a casual visit.",
	"I felt neutral about the whole experience.",
	"The meal was acceptable but forgettable.",
	"Average food, average service, average prices.",
	"Nothing stood out about the dining experience.",
	"The place was fine for a quick meal.",
	"Food arrived on time and tasted ordinary.",
	"It is an okay restaurant if you are nearby.",
	"The menu was standard and the dishes were plain.",
	"Neither impressed nor disappointed by the food.",
	"The buffet had the usual items, nothing more.",
	"Our waiter was polite but the meal was unremarkable.",
	"Decent portions, ordinary taste, fair price.",
	"The curry was neither good nor bad.",
	"An unremarkable dinner, we may or may not return.",
	"The dining room was ordinary and the food matched it.",
	"It was an average meal overall.",
}
