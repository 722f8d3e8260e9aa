package intent

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/aramlabs/aram-assistant/internal/textutil"
)

// Model is the narrow interface over a trained text classifier. The
// arbiter only ever sees a predicted label and per-class decision
// margins, so the concrete classifier is swappable.
type Model interface {
	Predict(text string) (label string, margins map[string]float64, err error)
}

// LinearModel scores text with a bag-of-n-grams TF-IDF featurizer and
// one-vs-rest linear decision boundaries, loaded from an exported JSON
// artifact. Immutable after load; safe for concurrent use.
type LinearModel struct {
	classes    []string
	vocabulary map[string]int
	idf        []float64
	coef       [][]float64
	intercept  []float64
	ngramMin   int
	ngramMax   int
}

type linearModelFile struct {
	Classes      []string       `json:"classes"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Coefficients [][]float64    `json:"coefficients"`
	Intercepts   []float64      `json:"intercepts"`
	NgramMin     int            `json:"ngram_min"`
	NgramMax     int            `json:"ngram_max"`
}

// LoadLinearModel reads and validates a model artifact. Callers treat a
// missing file as a degraded mode, not an error worth failing startup
// over; see NewMLScorer.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("intent: failed to read model artifact %s: %w", path, err)
	}
	var file linearModelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("intent: failed to parse model artifact %s: %w", path, err)
	}

	featureCount := len(file.Vocabulary)
	if len(file.Classes) == 0 || featureCount == 0 {
		return nil, fmt.Errorf("intent: model artifact %s has no classes or vocabulary", path)
	}
	if len(file.IDF) != featureCount {
		return nil, fmt.Errorf("intent: model artifact idf length %d does not match vocabulary size %d", len(file.IDF), featureCount)
	}
	if len(file.Coefficients) != len(file.Classes) || len(file.Intercepts) != len(file.Classes) {
		return nil, fmt.Errorf("intent: model artifact weight rows do not match class count %d", len(file.Classes))
	}
	for i, row := range file.Coefficients {
		if len(row) != featureCount {
			return nil, fmt.Errorf("intent: coefficient row %d has %d features, want %d", i, len(row), featureCount)
		}
	}
	if file.NgramMin <= 0 {
		file.NgramMin = 1
	}
	if file.NgramMax < file.NgramMin {
		file.NgramMax = file.NgramMin
	}

	return &LinearModel{
		classes:    file.Classes,
		vocabulary: file.Vocabulary,
		idf:        file.IDF,
		coef:       file.Coefficients,
		intercept:  file.Intercepts,
		ngramMin:   file.NgramMin,
		ngramMax:   file.NgramMax,
	}, nil
}

// Classes returns the model's class labels.
func (m *LinearModel) Classes() []string {
	return m.classes
}

// Predict featurizes the text and returns the top-margin label with the
// full per-class margin map.
func (m *LinearModel) Predict(text string) (string, map[string]float64, error) {
	features := m.featurize(text)

	margins := make(map[string]float64, len(m.classes))
	best := ""
	bestMargin := math.Inf(-1)
	for i, class := range m.classes {
		margin := m.intercept[i]
		for idx, val := range features {
			margin += m.coef[i][idx] * val
		}
		margins[class] = margin
		if margin > bestMargin {
			bestMargin = margin
			best = class
		}
	}
	return best, margins, nil
}

// featurize builds an L2-normalized TF-IDF vector, sparse by feature index.
func (m *LinearModel) featurize(text string) map[int]float64 {
	tokens := textutil.Tokens(text)
	counts := make(map[int]float64)
	for n := m.ngramMin; n <= m.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			term := strings.Join(tokens[i:i+n], " ")
			if idx, ok := m.vocabulary[term]; ok {
				counts[idx]++
			}
		}
	}
	if len(counts) == 0 {
		return counts
	}

	var norm float64
	for idx := range counts {
		counts[idx] *= m.idf[idx]
		norm += counts[idx] * counts[idx]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for idx := range counts {
			counts[idx] /= norm
		}
	}
	return counts
}
