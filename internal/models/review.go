package models

// Sentiment labels produced by the classifier. The set is fixed: the model
// artifact is trained on exactly these three classes.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// AllSentiments lists every label in reporting order.
var AllSentiments = []string{SentimentPositive, SentimentNegative, SentimentNeutral}

// SentimentMessages maps each label to the canned user-facing message returned
// alongside a classification.
var SentimentMessages = map[string]string{
	SentimentPositive: "Thank you! Your review is positive 👍",
	SentimentNegative: "We're sorry! Your review is negative 👎",
	SentimentNeutral:  "Your review seems neutral 😐",
}

// TimestampLayout is the wire and storage format for review timestamps
// (second precision).
const TimestampLayout = "2006-01-02 15:04:05"

// Review represents a row in the 'reviews' table. Rows are append-only and
// immutable once created.
type Review struct {
	ID         int64   `db:"id" json:"-"`
	Review     string  `db:"review" json:"review"`
	Sentiment  string  `db:"sentiment" json:"sentiment"`
	Confidence float64 `db:"confidence" json:"confidence"`
	Timestamp  string  `db:"timestamp" json:"timestamp"`
}

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	Review string `json:"review"`
}

// PredictResponse is returned for an accepted classification.
type PredictResponse struct {
	Review     string  `json:"review"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
	Timestamp  string  `json:"timestamp"`
}

// Restaurant is a single projected result of the restaurant lookup.
type Restaurant struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
