package main

import (
	"flag"

	"reviewpulse/internal/training"

	"go.uber.org/zap"
)

func main() {
	datasetPath := flag.String("dataset", "Restaurant_Reviews.tsv", "Path to the tab-separated Review/Liked dataset")
	classifierPath := flag.String("model-out", "sentiment_model.json", "Output path for the classifier artifact")
	vectorizerPath := flag.String("vectorizer-out", "vectorizer.json", "Output path for the vectorizer artifact")
	seed := flag.Int64("seed", 42, "Random seed for the train/test split")
	testFraction := flag.Float64("test-fraction", 0.2, "Held-out fraction used for model selection")
	maxFeatures := flag.Int("max-features", 2000, "Vocabulary size limit for the TF-IDF encoder")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	docs, err := training.LoadTSV(*datasetPath)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}
	logger.Info("Dataset loaded", zap.String("path", *datasetPath), zap.Int("rows", len(docs)))

	trainer := training.NewTrainer(training.Options{
		Seed:         *seed,
		TestFraction: *testFraction,
		MaxFeatures:  *maxFeatures,
	}, logger)

	result, err := trainer.Run(docs)
	if err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}

	if err := trainer.SaveArtifacts(*classifierPath, *vectorizerPath, result); err != nil {
		logger.Fatal("Failed to write artifacts", zap.Error(err))
	}
}
