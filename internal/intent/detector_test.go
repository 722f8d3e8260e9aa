package intent

import (
	"testing"

	"github.com/aramlabs/aram-assistant/internal/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(t *testing.T, model Model) *Detector {
	t.Helper()
	catalog := newTestCatalog(t)
	tamil := newTestTamilCatalog(t, catalog)
	arb := NewArbiter(catalog, NewRuleScorer(catalog), NewMLScorer(model, catalog, nil), 0, nil)
	return NewDetector(catalog, tamil, arb, nil)
}

func TestDetectorTamilCuratedMatch(t *testing.T) {
	d := newTestDetector(t, nil)

	res := d.Detect("என் கணக்கு hack ஆனது")
	require.NotNil(t, res.Intent)
	assert.Equal(t, "IT004", res.Intent.ID)
	assert.Equal(t, language.Tamil, res.Language)
	assert.Equal(t, SourceTamil, res.Source)
	assert.Contains(t, res.TamilBody, "கணக்கு")
}

func TestDetectorTamilWithoutCuratedMatch(t *testing.T) {
	d := newTestDetector(t, nil)

	// No curated keyword and no English tokens either: the arbiter
	// lands on unknown, and the reply still comes in Tamil.
	res := d.Detect("இது என்ன நடக்கிறது")
	require.NotNil(t, res.Intent)
	assert.Equal(t, UnknownIntentID, res.Intent.ID)
	assert.Equal(t, language.Tamil, res.Language)
	assert.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.TamilBody)
}

func TestDetectorTanglishCuratedMatch(t *testing.T) {
	d := newTestDetector(t, nil)

	// The curated keyword picks the intent, but Latin-script input
	// gets the English render, never the Tamil body.
	res := d.Detect("panam thirumba kudukala")
	require.NotNil(t, res.Intent)
	assert.Equal(t, "CP001", res.Intent.ID)
	assert.Equal(t, language.Tanglish, res.Language)
	assert.Equal(t, SourceTamil, res.Source)
	assert.Empty(t, res.TamilBody)
}

func TestDetectorTanglishTransliterationPath(t *testing.T) {
	d := newTestDetector(t, nil)

	// "hack pannittaan" is not in the curated Tanglish keywords, so the
	// text is glossed to "account hacked did it" and scored in English.
	res := d.Detect("account hack pannittaan")
	require.NotNil(t, res.Intent)
	assert.Equal(t, "IT004", res.Intent.ID)
	assert.Equal(t, language.Tanglish, res.Language)
	assert.Equal(t, SourceRuleStrong, res.Source)
	assert.InDelta(t, 0.75, res.RuleScore, 1e-9)
	assert.Empty(t, res.TamilBody)
}

func TestDetectorEnglishPath(t *testing.T) {
	d := newTestDetector(t, nil)

	res := d.Detect("i never received my refund money")
	require.NotNil(t, res.Intent)
	assert.Equal(t, "CP001", res.Intent.ID)
	assert.Equal(t, language.English, res.Language)
	assert.Equal(t, SourceRuleWeak, res.Source)
	assert.Empty(t, res.TamilBody)
}

func TestDetectorEnglishGreeting(t *testing.T) {
	d := newTestDetector(t, nil)

	res := d.Detect("hello")
	require.NotNil(t, res.Intent)
	assert.Equal(t, GreetingIntentID, res.Intent.ID)
	assert.Equal(t, language.English, res.Language)
	assert.Equal(t, SourceGreeting, res.Source)
}

func TestDetectorEnglishHybridWithModel(t *testing.T) {
	d := newTestDetector(t, &fakeModel{
		label:   "CP001",
		margins: map[string]float64{"CP001": 0.5, "IT001": 1.0},
	})

	res := d.Detect("i never received my refund money")
	require.NotNil(t, res.Intent)
	assert.Equal(t, "CP001", res.Intent.ID)
	assert.Equal(t, SourceHybridAgree, res.Source)
	assert.InDelta(t, 0.5, res.MLConfidence, 1e-9)
}

func TestDetectorNeverReturnsNilIntent(t *testing.T) {
	d := newTestDetector(t, nil)

	for _, input := range []string{"", "   ", "zzz qqq", "தமிழ்"} {
		res := d.Detect(input)
		require.NotNil(t, res.Intent, "input %q", input)
	}
}
