package filters

// offensiveWords is the curated offensive-language list: English
// insults plus Tamil/Tanglish profanity observed in production logs.
var offensiveWords = []string{
	// English
	"idiot", "stupid", "fool", "moron", "dumb", "shut up",
	"useless", "hate you", "damn", "bastard", "bloody hell",
	"garbage", "trash", "worthless", "pathetic",
	// Tamil/Tanglish
	"poda", "podi", "loosu", "naaye", "kazhuthai",
	"thevdiya", "otha", "omala", "koothi", "punda",
	"mairu", "poolu", "poda maadu", "poda otha",
	"sunni", "baadu", "thayoli", "myir", "sootha",
}

// offensiveResponses de-escalate rather than scold.
var offensiveResponses = []string{
	"I understand you might be feeling frustrated right now. I'm here to help you calmly. Please share your legal concern and I'll do my best to guide you.",
	"It seems like you're going through a difficult time. I'm here to help — please describe your situation and I'll guide you properly.",
	"நீங்கள் கோபமாக இருக்கிறீர்கள் என்று தெரிகிறது. நான் உங்களுக்கு உதவ இங்கே இருக்கிறேன். தயவுசெய்து உங்கள் பிரச்சினையை சொல்லுங்கள்.",
	"I'm here to help you, not judge you. Whatever you're going through, please share your concern and I'll guide you to the right solution.",
}
