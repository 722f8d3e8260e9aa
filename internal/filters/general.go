package filters

import "strings"

// generalPattern pairs a phrase with its conversation category.
type generalPattern struct {
	Phrase   string
	Category string
}

// tamilRequestPhrases are matched against the whole trimmed input, not
// as substrings, so "in tamil" cannot fire inside a longer legal query.
var tamilRequestPhrases = []string{
	"in tamil", "tamil la", "tamil la sollu", "tamil la solu",
}

const categoryTamilRequest = "tamil_request"

// generalPatterns is the ordered phrase→category list for small talk in
// English, Tamil script and Tanglish. Matching is substring membership
// over the lowercased, trimmed input; the first entry in declaration
// order wins, which keeps the matcher deterministic.
var generalPatterns = []generalPattern{
	// Greetings with name
	{"hi aram", "greet_aram"},
	{"hello aram", "greet_aram"},
	{"hey aram", "greet_aram"},
	{"hai aram", "greet_aram"},
	{"vanakkam aram", "greet_aram"},
	{"வணக்கம் aram", "greet_aram"},
	{"வணக்கம் அறம்", "greet_aram"},
	{"ஹலோ aram", "greet_aram"},
	{"ஹலோ", "greet_aram"},
	{"ஹலோ அறம்", "greet_aram"},

	// Short responses seen in logs
	{"sorry", "general_sorry"},
	{"mm", "general_ok"},
	{"no", "general_ok"},
	{"nope", "general_ok"},
	{"yes", "general_ok"},
	{"yeah", "general_ok"},
	{"ok bye", "general_bye"},
	{"tata", "general_bye"},
	{"ta ta", "general_bye"},
	{"illai", "general_ok"},
	{"illa", "general_ok"},

	// Who are you variants seen in logs
	{"who are u", "general_identity"},
	{"who r u", "general_identity"},
	{"wat r u", "general_identity"},

	// Laws questions seen in logs
	{"mm enna laws use pandra", "general_law_info"},
	{"enna laws use pandra", "general_law_info"},
	{"what laws do you use", "general_law_info"},
	{"which laws", "general_law_info"},

	// Tamil casual seen in logs
	{"என்ன பண்ற", "general_tamil_howru"},
	{"enna pandra", "general_tamil_howru"},
	{"enna pandra aram", "general_tamil_howru"},

	// How are you, English
	{"how are you", "general_howru"},
	{"how r u", "general_howru"},
	{"how are u", "general_howru"},
	{"hows it going", "general_howru"},
	{"how's it going", "general_howru"},
	{"how do you do", "general_howru"},
	{"hi how are you", "general_howru"},
	{"hello how are you", "general_howru"},
	{"hey how are you", "general_howru"},
	{"hi, how are you", "general_howru"},
	{"hello, how are you", "general_howru"},
	{"whats up", "general_howru"},
	{"what's up", "general_howru"},
	{"sup", "general_howru"},
	{"wassup", "general_howru"},

	// How are you, Tamil/Tanglish
	{"epdi irukkinga", "general_tamil_howru"},
	{"epdi iruka", "general_tamil_howru"},
	{"eppadi irukkingal", "general_tamil_howru"},
	{"neenga epdi irukkinga", "general_tamil_howru"},
	{"enna panra", "general_tamil_howru"},
	{"enna pannureenga", "general_tamil_howru"},
	{"என்ன பண்றீங்க", "general_tamil_howru"},
	{"எப்படி இருக்கீங்க", "general_tamil_howru"},
	{"எப்படி இருக்க", "general_tamil_howru"},
	{"நலமா", "general_tamil_howru"},
	{"சுகமா", "general_tamil_howru"},

	// Tamil casual food chat
	{"saaptiya", "general_tamil_casual"},
	{"saptiya", "general_tamil_casual"},
	{"saptu", "general_tamil_casual"},
	{"saapadu", "general_tamil_casual"},
	{"enna saapta", "general_tamil_casual"},
	{"சாப்பிட்டீங்களா", "general_tamil_casual"},
	{"சாப்பிட்டியா", "general_tamil_casual"},

	// Who are you, English
	{"who are you", "general_identity"},
	{"what are you", "general_identity"},
	{"what is aram", "general_identity"},
	{"who is aram", "general_identity"},
	{"tell me about yourself", "general_identity"},
	{"introduce yourself", "general_identity"},
	{"are you a bot", "general_identity"},
	{"are you ai", "general_identity"},
	{"are you robot", "general_identity"},
	{"are you human", "general_identity"},

	// Who are you, Tamil/Tanglish
	{"neenga yaar", "general_tamil_identity"},
	{"neega yaar", "general_tamil_identity"},
	{"nee yaar", "general_tamil_identity"},
	{"aram yaar", "general_tamil_identity"},
	{"நீங்க யாரு", "general_tamil_identity"},
	{"நீ யாரு", "general_tamil_identity"},
	{"உங்களை பத்தி சொல்லுங்க", "general_tamil_identity"},

	// What can you do
	{"what can you do", "general_capability"},
	{"what do you do", "general_capability"},
	{"how can you help", "general_capability"},
	{"what can you help with", "general_capability"},
	{"what topics", "general_capability"},
	{"enna help pannuvenga", "general_capability"},
	{"enna seyya mudiyum", "general_capability"},
	{"என்ன உதவி செய்வீங்க", "general_capability"},

	// Compliments, English
	{"you are good", "general_compliment"},
	{"you are great", "general_compliment"},
	{"i like you", "general_compliment"},
	{"i love you", "general_compliment"},
	{"you are helpful", "general_compliment"},
	{"you are amazing", "general_compliment"},
	{"you are awesome", "general_compliment"},
	{"well done", "general_compliment"},
	{"good job", "general_compliment"},
	{"nice", "general_compliment"},
	{"excellent", "general_compliment"},
	{"brilliant", "general_compliment"},
	{"perfect", "general_compliment"},

	// Compliments, Tamil/Tanglish
	{"romba nalla iruka", "general_compliment"},
	{"super aram", "general_compliment"},
	{"nalla iruka", "general_compliment"},
	{"romba thanks", "general_compliment"},
	{"உங்களுக்கு நன்றி", "general_compliment"},
	{"நல்லா இருக்கீங்க", "general_compliment"},

	// Thanks, English
	{"thank you", "general_thanks"},
	{"thanks", "general_thanks"},
	{"thank u", "general_thanks"},
	{"thanks a lot", "general_thanks"},
	{"many thanks", "general_thanks"},
	{"much appreciated", "general_thanks"},
	{"appreciate it", "general_thanks"},

	// Thanks, Tamil/Tanglish
	{"nandri", "general_thanks"},
	{"romba nandri", "general_thanks"},
	{"thanks da", "general_thanks"},
	{"நன்றி", "general_thanks"},
	{"மிக்க நன்றி", "general_thanks"},

	// OK / understood
	{"ok", "general_ok"},
	{"okay", "general_ok"},
	{"alright", "general_ok"},
	{"got it", "general_ok"},
	{"understood", "general_ok"},
	{"i see", "general_ok"},
	{"noted", "general_ok"},
	{"seri", "general_ok"},
	{"seri da", "general_ok"},
	{"சரி", "general_ok"},
	{"புரிஞ்சது", "general_ok"},

	// Bye, English
	{"bye", "general_bye"},
	{"goodbye", "general_bye"},
	{"good bye", "general_bye"},
	{"see you", "general_bye"},
	{"see ya", "general_bye"},
	{"take care", "general_bye"},
	{"ttyl", "general_bye"},
	{"talk later", "general_bye"},

	// Bye, Tamil/Tanglish
	{"bye aram", "general_bye"},
	{"poren", "general_bye"},
	{"poga poren", "general_bye"},
	{"seri poren", "general_bye"},
	{"போறேன்", "general_bye"},
	{"வருகிறேன்", "general_bye"},

	// Asking about laws
	{"what is consumer protection", "general_law_info"},
	{"tell me about consumer protection", "general_law_info"},
	{"what is it act", "general_law_info"},
	{"tell me about it act", "general_law_info"},
	{"what is bns", "general_law_info"},
	{"tell me about bns", "general_law_info"},
	{"what laws does india have", "general_law_info"},
	{"indian laws", "general_law_info"},
	{"consumer rights india", "general_law_info"},
}

// MatchGeneral checks the input against the small-talk patterns and
// returns the matched category. Exact tamil-request phrases are tested
// first, then the ordered substring list.
func MatchGeneral(text string) (string, bool) {
	lower := strings.TrimSpace(strings.ToLower(text))
	if lower == "" {
		return "", false
	}
	for _, phrase := range tamilRequestPhrases {
		if lower == phrase {
			return categoryTamilRequest, true
		}
	}
	for _, p := range generalPatterns {
		if strings.Contains(lower, p.Phrase) {
			return p.Category, true
		}
	}
	return "", false
}
