package intent

import (
	"strings"

	"github.com/aramlabs/aram-assistant/internal/textutil"
	"github.com/aramlabs/aram-assistant/pkg/logging"
)

// DefaultConfidenceThreshold is the weak-rule-match floor used when no
// override is configured.
const DefaultConfidenceThreshold = 0.15

// Source labels which branch of the decision cascade produced the
// final intent; it feeds logs and metrics.
type Source string

const (
	SourceGreeting    Source = "greeting"
	SourceRuleStrong  Source = "rule_strong"
	SourceMLStrong    Source = "ml_strong"
	SourceHybridAgree Source = "hybrid_agree"
	SourceHybridRule  Source = "hybrid_rule"
	SourceHybridML    Source = "hybrid_ml"
	SourceRuleWeak    Source = "rule_weak"
	SourceFallback    Source = "fallback"
	SourceTamil       Source = "tamil"
)

// greetingWords trigger the greeting short-circuit. Containment is only
// allowed for short inputs; longer inputs must equal a phrase exactly.
var greetingWords = []string{
	"hello", "hi", "hey", "hai", "hii", "helo",
	"namaste", "vanakkam", "vanakam", "vannakam",
	"good morning", "good evening", "good afternoon",
	"good night", "morning", "evening", "afternoon",
	"greetings", "howdy", "vanakkom", "aram",
}

// Decision is the arbiter's outcome for one utterance.
type Decision struct {
	Intent       *Intent
	Source       Source
	RuleScore    float64
	MLConfidence float64
}

// Arbiter merges the rule and statistical signals into one final
// intent. Rule matches are precise but brittle; the model generalizes
// but can be confidently wrong on short input. The cascade prefers a
// high-confidence signal from either source, requires agreement in the
// moderate band, and only trusts the model alone at a high bar.
type Arbiter struct {
	catalog   *Catalog
	rules     *RuleScorer
	ml        *MLScorer
	threshold float64
	logger    *logging.Logger
}

// NewArbiter wires the decision core. threshold <= 0 selects the default
// weak-rule floor.
func NewArbiter(catalog *Catalog, rules *RuleScorer, ml *MLScorer, threshold float64, logger *logging.Logger) *Arbiter {
	if catalog == nil {
		panic("intent: catalog cannot be nil")
	}
	if rules == nil {
		panic("intent: rule scorer cannot be nil")
	}
	if ml == nil {
		panic("intent: ml scorer cannot be nil")
	}
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Arbiter{catalog: catalog, rules: rules, ml: ml, threshold: threshold, logger: logger}
}

// Resolve runs the strict priority cascade. The order is load-bearing:
// reordering the branches changes which intent wins on ambiguous input.
//
//  1. greeting short-circuit
//  2. rule score >= 0.5            -> rule intent
//  3. ml confidence >= 0.75        -> ml intent
//  4. both exist and rule >= 0.15:
//     agreement -> rule intent; rule >= 0.2 -> rule; ml >= 0.6 -> ml
//  5. rule >= configured threshold -> rule intent
//  6. reserved unknown intent
func (a *Arbiter) Resolve(text string) Decision {
	if a.isGreeting(text) {
		return Decision{Intent: a.catalog.Greeting(), Source: SourceGreeting}
	}

	ruleIntent, ruleScore := a.rules.Score(text)
	if ruleScore >= 0.5 {
		a.logger.Debug("arbiter: strong rule match", "intent", ruleIntent.ID, "score", ruleScore)
		return Decision{Intent: ruleIntent, Source: SourceRuleStrong, RuleScore: ruleScore}
	}

	mlIntent, mlConfidence := a.ml.Score(text)
	if mlConfidence >= 0.75 {
		a.logger.Debug("arbiter: strong ml match", "intent", mlIntent.ID, "confidence", mlConfidence)
		return Decision{Intent: mlIntent, Source: SourceMLStrong, RuleScore: ruleScore, MLConfidence: mlConfidence}
	}

	if ruleIntent != nil && mlIntent != nil && ruleScore >= 0.15 {
		if ruleIntent.ID == mlIntent.ID {
			return Decision{Intent: ruleIntent, Source: SourceHybridAgree, RuleScore: ruleScore, MLConfidence: mlConfidence}
		}
		if ruleScore >= 0.2 {
			return Decision{Intent: ruleIntent, Source: SourceHybridRule, RuleScore: ruleScore, MLConfidence: mlConfidence}
		}
		if mlConfidence >= 0.6 {
			return Decision{Intent: mlIntent, Source: SourceHybridML, RuleScore: ruleScore, MLConfidence: mlConfidence}
		}
	}

	if ruleIntent != nil && ruleScore >= a.threshold {
		a.logger.Debug("arbiter: weak rule match", "intent", ruleIntent.ID, "score", ruleScore)
		return Decision{Intent: ruleIntent, Source: SourceRuleWeak, RuleScore: ruleScore, MLConfidence: mlConfidence}
	}

	return Decision{Intent: a.catalog.Unknown(), Source: SourceFallback, RuleScore: ruleScore, MLConfidence: mlConfidence}
}

// isGreeting applies the greeting pre-check: inputs of at most three
// tokens may merely contain a greeting word; anything longer must equal
// one exactly after normalization.
func (a *Arbiter) isGreeting(text string) bool {
	normalized := textutil.Normalize(text)
	if normalized == "" {
		return false
	}
	if len(strings.Fields(normalized)) <= 3 {
		for _, word := range greetingWords {
			if strings.Contains(normalized, word) {
				return true
			}
		}
		return false
	}
	for _, word := range greetingWords {
		if normalized == word {
			return true
		}
	}
	return false
}
