// Package sentiment implements the text feature encoder and the linear
// classifier families behind the review sentiment model. The trained pair is
// serialized as JSON artifacts and loaded read-only at service startup.
package sentiment

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vector is a sparse feature vector keyed by vocabulary index.
type Vector map[int]float64

// Vectorizer is a TF-IDF bag-of-weighted-terms encoder with a bounded
// vocabulary. Fit on the training split only; Transform is read-only and safe
// for concurrent use.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	MaxFeatures int            `json:"max_features"`
}

// NewVectorizer returns an unfitted vectorizer keeping at most maxFeatures
// terms.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{
		Vocabulary:  make(map[string]int),
		MaxFeatures: maxFeatures,
	}
}

// Tokenize lowercases text and splits it on non-alphanumeric runes.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Fit learns the vocabulary and inverse document frequencies from docs. Terms
// are ranked by document frequency; ties break alphabetically so fitting is
// deterministic.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, token := range Tokenize(doc) {
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			df[token]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	total := float64(len(docs))
	for i, term := range terms {
		v.Vocabulary[term] = i
		// Smoothed IDF keeps unseen-term weights finite.
		v.IDF[i] = math.Log((1+total)/(1+float64(df[term]))) + 1
	}
}

// Transform encodes text as an L2-normalized sparse TF-IDF vector. Terms
// outside the fitted vocabulary are ignored.
func (v *Vectorizer) Transform(text string) Vector {
	counts := make(map[int]float64)
	for _, token := range Tokenize(text) {
		if idx, ok := v.Vocabulary[token]; ok {
			counts[idx]++
		}
	}

	vec := make(Vector, len(counts))
	var norm float64
	for idx, tf := range counts {
		w := tf * v.IDF[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// NumFeatures reports the fitted vocabulary size.
func (v *Vectorizer) NumFeatures() int {
	return len(v.Vocabulary)
}
