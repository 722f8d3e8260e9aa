package intent

import (
	"github.com/aramlabs/aram-assistant/internal/language"
	"github.com/aramlabs/aram-assistant/pkg/logging"
)

// Resolution is the outcome of running the full detection pipeline over
// one utterance that passed the conversation filters.
type Resolution struct {
	Intent       *Intent
	Language     language.Language
	Source       Source
	RuleScore    float64
	MLConfidence float64
	// TamilBody is the complete pre-written Tamil reply, set only for
	// Tamil-script input; empty on the English and Tanglish paths.
	TamilBody string
}

// Detector routes an utterance by language and resolves its intent:
// Tamil script goes through the Tamil keyword matcher, Tanglish is
// transliterated before the hybrid arbiter, English goes straight to
// the arbiter.
type Detector struct {
	catalog *Catalog
	tamil   *TamilCatalog
	arbiter *Arbiter
	logger  *logging.Logger
}

// NewDetector wires the pipeline entry point.
func NewDetector(catalog *Catalog, tamil *TamilCatalog, arbiter *Arbiter, logger *logging.Logger) *Detector {
	if catalog == nil {
		panic("intent: catalog cannot be nil")
	}
	if tamil == nil {
		panic("intent: tamil catalog cannot be nil")
	}
	if arbiter == nil {
		panic("intent: arbiter cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Detector{catalog: catalog, tamil: tamil, arbiter: arbiter, logger: logger}
}

// Detect resolves the intent for text. It is synchronous, stateless and
// never fails: every degenerate case lands on the reserved unknown
// intent.
func (d *Detector) Detect(text string) Resolution {
	lang := language.Detect(text)

	switch lang {
	case language.Tamil:
		if id, ok := d.tamil.Match(text); ok {
			d.logger.Debug("detector: tamil keyword match", "intent", id)
			return Resolution{
				Intent:    d.catalog.GetOrUnknown(id),
				Language:  lang,
				Source:    SourceTamil,
				TamilBody: d.tamil.Response(id),
			}
		}
		// No curated keyword hit: run the full arbiter on the raw text
		// and answer from the Tamil response catalog.
		dec := d.arbiter.Resolve(text)
		return Resolution{
			Intent:       dec.Intent,
			Language:     lang,
			Source:       dec.Source,
			RuleScore:    dec.RuleScore,
			MLConfidence: dec.MLConfidence,
			TamilBody:    d.tamil.Response(dec.Intent.ID),
		}

	case language.Tanglish:
		// Curated keywords pick the intent, but the reply stays in
		// English: the user typed Latin script. Tamil bodies are
		// reserved for Tamil-script input.
		if id, ok := d.tamil.Match(text); ok {
			d.logger.Debug("detector: tanglish keyword match", "intent", id)
			return Resolution{
				Intent:   d.catalog.GetOrUnknown(id),
				Language: lang,
				Source:   SourceTamil,
			}
		}
		converted := language.Transliterate(text)
		dec := d.arbiter.Resolve(converted)
		return Resolution{
			Intent:       dec.Intent,
			Language:     lang,
			Source:       dec.Source,
			RuleScore:    dec.RuleScore,
			MLConfidence: dec.MLConfidence,
		}

	default:
		dec := d.arbiter.Resolve(text)
		return Resolution{
			Intent:       dec.Intent,
			Language:     lang,
			Source:       dec.Source,
			RuleScore:    dec.RuleScore,
			MLConfidence: dec.MLConfidence,
		}
	}
}
