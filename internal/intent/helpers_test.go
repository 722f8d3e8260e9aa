package intent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestCatalog builds a small but realistic catalog in catalog order.
func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog([]*Intent{
		{
			ID:                GreetingIntentID,
			Description:       "Greeting",
			Severity:          SeverityNone,
			ResponseTemplates: Templates{"Hello! I'm ARAM."},
		},
		{
			ID:                "CP001",
			Description:       "Refund not received",
			Keywords:          []string{"refund", "money", "repayment", "money back", "not refunded"},
			Severity:          SeverityMedium,
			MappedLaw:         "Consumer Protection Act, 2019",
			Explanation:       "You have the right to claim a refund for defective goods or services.",
			RecommendedSteps:  []string{"Collect receipts", "Send a written demand", "File at consumerhelpline.gov.in"},
			ResponseTemplates: Templates{"It sounds like you are waiting for a refund."},
		},
		{
			ID:                "CP002",
			Description:       "Defective product",
			Keywords:          []string{"defective", "broken", "damaged", "faulty", "not working"},
			Severity:          SeverityMedium,
			MappedLaw:         "Consumer Protection Act, 2019",
			ResponseTemplates: Templates{"It sounds like your product arrived defective."},
		},
		{
			ID:                "IT001",
			Description:       "Cyber fraud",
			Keywords:          []string{"fraud", "scam", "otp", "upi", "cyber fraud"},
			Severity:          SeverityHigh,
			MappedLaw:         "Information Technology Act, 2000",
			ResponseTemplates: Templates{"It sounds like you faced online fraud."},
		},
		{
			ID:                "IT004",
			Description:       "Account hacking",
			Keywords:          []string{"hacked", "hack", "account", "password", "account hacked"},
			Severity:          SeverityHigh,
			MappedLaw:         "Information Technology Act, 2000",
			ResponseTemplates: Templates{"It sounds like your account was compromised."},
		},
		{
			ID:                "BNS002",
			Description:       "Criminal intimidation",
			Keywords:          []string{"threatening", "threat", "intimidation", "blackmail"},
			Severity:          SeverityHigh,
			MappedLaw:         "Bharatiya Nyaya Sanhita, 2023",
			ResponseTemplates: Templates{"It sounds like someone is threatening you."},
		},
		{
			ID:                UnknownIntentID,
			Description:       "Unknown",
			Severity:          SeverityNone,
			ResponseTemplates: Templates{"I'm not sure I understood that."},
		},
	})
	require.NoError(t, err)
	return catalog
}

// newTestTamilCatalog pairs with newTestCatalog.
func newTestTamilCatalog(t *testing.T, primary *Catalog) *TamilCatalog {
	t.Helper()
	tamil, err := NewTamilCatalog([]*TamilIntent{
		{
			ID:               "CP001",
			TamilKeywords:    []string{"பணம் திரும்ப"},
			TanglishKeywords: []string{"panam thirumba kudukala"},
			Response:         "உங்கள் நிலை புரிகிறது — பணம் திரும்ப கிடைக்கவில்லை.",
		},
		{
			ID:               "IT004",
			TamilKeywords:    []string{"கணக்கு", "ஹேக்"},
			TanglishKeywords: []string{"hack aana"},
			Response:         "உங்கள் கணக்கு hack ஆனது என்று தெரிகிறது.",
		},
		{
			ID:       UnknownIntentID,
			Response: "மன்னிக்கவும், உங்கள் கேள்வி சரியாக புரியவில்லை.",
		},
	}, primary)
	require.NoError(t, err)
	return tamil
}

// fakeModel is a scripted Model for arbiter and scorer tests.
type fakeModel struct {
	label   string
	margins map[string]float64
	err     error
}

func (m *fakeModel) Predict(string) (string, map[string]float64, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	return m.label, m.margins, nil
}

var errModelDown = errors.New("model backend unavailable")
