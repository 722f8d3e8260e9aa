package language

import "strings"

// substitution is one Tanglish token and its English gloss.
type substitution struct {
	From string
	To   string
}

// tanglishTable maps romanized Tamil tokens to English glosses. The table
// is an ordered list, not a map: Transliterate applies entries in this
// exact order, so overlapping keys ("hack" before "hacking") resolve the
// same way on every run. The gloss is lossy; it only needs to preserve
// the keywords the rule and statistical scorers look for.
var tanglishTable = []substitution{
	{"vanakkam", "hello"}, {"vanakam", "hello"},
	{"hai", "hello"}, {"helo", "hello"},
	{"panam", "money"}, {"thirumba", "return"},
	{"thirupa", "refund"}, {"porul", "product"},
	{"kedu", "defective"}, {"keduthal", "damaged"},
	{"vaanginen", "purchased"}, {"kudukala", "not given"},
	{"hackku", "hacked"}, {"hack", "hacked"},
	{"fraud", "fraud"}, {"kavardu", "stolen"},
	{"emaandhu", "cheated"}, {"emattinaan", "cheated"},
	{"emaathitanga", "cheated"}, {"poi", "false"},
	{"poiyaa", "fake"}, {"thondara", "harassment"},
	{"thondaravu", "harassment"}, {"pidutham", "harassment"},
	{"bayamurutural", "threatening"}, {"mirattal", "threatening"},
	{"mirattukiraan", "threatening"}, {"mirattukiranga", "threatening"},
	{"udhavi", "help"}, {"problem", "problem"},
	{"complaint", "complaint"}, {"pannittaan", "did it"},
	{"pannittaanga", "they did"}, {"account", "account"},
	{"password", "password"}, {"panam pochu", "money gone"},
	{"otp kuduthen", "gave otp"}, {"bank fraud", "bank fraud"},
	{"mosadi", "fraud"}, {"pramandam", "fraud"},
	{"azhuthal", "pressure"}, {"bayamaruku", "threatening"},
	{"bayam", "fear threat"}, {"hacking", "hacked"},
	{"hack aana", "hacked"}, {"in tamil", "tamil"},
	{"kastam", "trouble"},
}

// Transliterate rewrites Tanglish tokens in the lowercased input to
// their English glosses, applying the table greedily left-to-right in
// declaration order.
func Transliterate(text string) string {
	lower := strings.ToLower(text)
	for _, sub := range tanglishTable {
		lower = strings.ReplaceAll(lower, sub.From, sub.To)
	}
	return lower
}
