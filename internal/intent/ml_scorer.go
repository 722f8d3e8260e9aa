package intent

import (
	"github.com/aramlabs/aram-assistant/pkg/logging"
)

// marginFloor is the absolute decision-margin floor below which the
// model's prediction is rejected outright.
const marginFloor = 0.3

// MLScorer wraps the trained classifier and normalizes its output into
// the same (intent, confidence) shape the rule scorer produces.
type MLScorer struct {
	model   Model
	catalog *Catalog
	logger  *logging.Logger
}

// NewMLScorer creates the statistical scorer. A nil model is accepted
// and degrades every call to (nil, 0): an untrained deployment keeps
// running rule-only.
func NewMLScorer(model Model, catalog *Catalog, logger *logging.Logger) *MLScorer {
	if catalog == nil {
		panic("intent: catalog cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MLScorer{model: model, catalog: catalog, logger: logger}
}

// Available reports whether a trained model is loaded.
func (s *MLScorer) Available() bool {
	return s.model != nil
}

// Score returns the model's predicted intent with a normalized
// confidence in [0,1], or (nil, 0) when the model is absent, errors,
// predicts below the margin floor, has no positive margin anywhere, or
// names a label missing from the catalog. Failures never propagate.
func (s *MLScorer) Score(text string) (*Intent, float64) {
	if s.model == nil {
		return nil, 0.0
	}

	label, margins, err := s.model.Predict(text)
	if err != nil {
		s.logger.Warn("ml scorer: prediction failed", "error", err)
		return nil, 0.0
	}

	confidence, ok := margins[label]
	if !ok || confidence < marginFloor {
		return nil, 0.0
	}

	// Normalize by the maximum positive margin across all classes. No
	// positive margin means the model is not confident about anything.
	maxPositive := 0.0
	for _, m := range margins {
		if m > maxPositive {
			maxPositive = m
		}
	}
	if maxPositive <= 0 {
		return nil, 0.0
	}
	normalized := confidence / maxPositive

	in, ok := s.catalog.Get(label)
	if !ok {
		s.logger.Warn("ml scorer: predicted label not in catalog", "label", label)
		return nil, 0.0
	}

	s.logger.Debug("ml scorer: prediction",
		"label", label,
		"raw_margin", confidence,
		"normalized", normalized,
	)
	return in, normalized
}
