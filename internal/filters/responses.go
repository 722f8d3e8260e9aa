package filters

// generalResponses holds the canned pools per small-talk category.
var generalResponses = map[string][]string{
	"greet_aram": {
		"வணக்கம்! நான் அறம், உங்கள் சட்ட விழிப்புணர்வு உதவியாளர். என்ன உதவி வேண்டும்?",
		"Hello! I'm ARAM — your legal awareness assistant. How can I help you today?",
		"Hi! Great to connect with you. I'm ARAM — here to help you understand your legal rights. What's on your mind?",
		"வணக்கம்! சட்ட விழிப்புணர்வுக்கு நான் எப்போதும் தயார். என்ன பிரச்சினை?",
		"Hey there! ARAM here — your legal guide. Tell me what's going on and I'll help you navigate it!",
	},

	"general_howru": {
		"Hello! I'm doing well, thank you for asking! 😊 I'm ARAM — always ready to help. What's on your mind?",
		"Hi there! Functioning well and happy to help! What legal concern can I assist you with today?",
		"Hey! Thank you for asking — I'm great! As your legal awareness assistant, I'm ready. What would you like to know?",
		"I'm doing well, thanks! More importantly — how can I help YOU today?",
		"All good here! I'm ARAM, your legal awareness companion. What's your concern today?",
		"Doing great! Ready to help you understand your rights. What happened?",
		"I'm always ready to help! Tell me your situation and I'll guide you through it. 😊",
	},

	"general_tamil_howru": {
		"நான் நலமாக இருக்கிறேன், நன்றி! 😊 உங்களுக்கு சட்ட உதவி தேவையா? சொல்லுங்கள்!",
		"நன்றாக இருக்கிறேன்! உங்கள் சட்ட கேள்விகளுக்கு உதவ தயாராக இருக்கிறேன். என்ன பிரச்சினை?",
		"நலமாக இருக்கிறேன்! நீங்கள் எப்படி இருக்கிறீர்கள்? ஏதாவது சட்ட உதவி தேவையா?",
		"நன்றாக இருக்கிறேன்! என்ன விஷயம் — என்னால் என்ன உதவி செய்யலாம்?",
		"நலம்! உங்கள் பிரச்சினை என்னவென்று சொல்லுங்கள் — நான் வழிகாட்டுகிறேன்! 😊",
	},

	"general_tamil_casual": {
		"நான் சாப்பிட மாட்டேன் — ஆனால் உங்கள் சட்ட கேள்விகளுக்கு நிச்சயம் உதவுவேன்! என்ன விஷயம்? 😄",
		"அது கேட்கவே நல்லாயிருக்கு! நான் ஒரு AI — சாப்பாடு தேவையில்லை. உங்கள் பிரச்சினை சொல்லுங்கள்!",
		"என்னால் சாப்பிட முடியாது — ஆனால் உங்களுக்கு சட்ட உதவி தர முடியும்! என்ன தேவை? 😊",
		"நான் AI — சாப்பாடு வேண்டாம்! ஆனால் உங்கள் பிரச்சினை கேட்கணும். சொல்லுங்க! 😄",
		"ஹா! நான் சாப்பிடுவதில்லை — உதவுவதே என் வேலை! என்ன நடந்தது? 😊",
	},

	"general_identity": {
		"I am ARAM — Legal Awareness Assistant. I help Indian citizens understand their rights under Consumer Protection Act, IT Act, and BNS. I provide calm guidance — not legal advice.",
		"I'm ARAM, an AI-powered legal awareness assistant built for everyday Indian citizens. Consumer issues, cyber crimes, general legal concerns — I've got you covered!",
		"Great question! I'm ARAM — your legal awareness companion. I make Indian law accessible in English, Tamil, and Tanglish!",
		"I'm ARAM! Think of me as your friendly legal guide — I won't represent you in court, but I'll help you understand what's happening and what to do next.",
		"ARAM here! I'm an AI trained to help you navigate Indian legal situations calmly. Describe your problem and I'll point you in the right direction.",
	},

	"general_tamil_identity": {
		"நான் அறம் — சட்ட விழிப்புணர்வு உதவியாளர். நுகர்வோர் பாதுகாப்பு, இணைய சட்டம், BNS ஆகியவற்றில் வழிகாட்டுகிறேன்.",
		"நான் அறம்! தமிழ், ஆங்கிலம், தங்கிலிஷ் மூன்றிலும் பேசுவேன். இந்திய சட்டங்களை எளிமையாக புரிந்துகொள்ள உதவுகிறேன்.",
		"அறம் என்பது நான் — உங்கள் சட்ட வழிகாட்டி! என்ன பிரச்சினை என்று சொல்லுங்கள், நான் சரியான வழி காட்டுகிறேன்.",
		"நான் அறம் — AI சட்ட உதவியாளர். வழக்கறிஞர் அல்ல, ஆனால் உங்கள் உரிமைகளை புரிந்துகொள்ள உதவுவேன்!",
	},

	"general_capability": {
		"I can help you with:\n\n• 🛒 Consumer complaints — refunds, defective products, online shopping fraud\n• 💻 Cyber issues — fraud, hacking, identity theft, harassment\n• ⚖️ General legal — cheating, threats, harassment\n• 📋 Complaint guidance — where and how to file\n\nI support English, Tamil, and Tanglish! Just describe your situation.",
		"Here's what I can do:\n\n• Explain your legal rights in simple language\n• Tell you which law applies to your situation\n• Guide you through the complaint filing process\n• Give step-by-step practical actions\n\nJust tell me what happened!",
		"I specialize in:\n\n• 🛒 Consumer rights — shopping, refunds, services\n• 💻 Cyber law — fraud, hacking, online harassment\n• ⚖️ Criminal law — cheating, threats, intimidation\n\nDescribe your situation and I'll guide you!",
	},

	"general_compliment": {
		"Thank you so much! I'm glad I could help. 😊 Anything else you'd like to know?",
		"That's very kind of you! I'm here whenever you need legal guidance. Feel free to ask anything!",
		"நன்றி! உங்கள் வார்த்தைகள் மகிழ்ச்சி தருகின்றன. 😊 வேறு ஏதாவது கேள்வி இருந்தால் கேளுங்கள்!",
		"Thank you! That means a lot. My purpose is to make legal awareness accessible to everyone.",
		"Aww, thank you! 😊 That motivates me to keep helping. What else can I do for you?",
		"So glad to hear that! Remember — knowing your rights is the first step to protecting them. 💪",
	},

	"general_thanks": {
		"You're welcome! Stay informed about your legal rights. Take care! 😊",
		"Happy to help! Remember — knowing your rights is the first step to protecting them.",
		"நன்றி சொல்லியதற்கு நன்றி! உங்கள் உரிமைகளை அறிந்து கொள்வது மிக முக்கியம். 😊",
		"Anytime! That's exactly what I'm here for. Come back whenever you need guidance.",
		"My pleasure! Stay safe and know your rights. 😊",
		"Always happy to help! Don't hesitate to return if you need more guidance.",
		"Of course! Take care of yourself and stay informed. 💪",
	},

	"general_sorry": {
		"No worries at all! I'm here to help whenever you're ready. What's on your mind?",
		"That's perfectly fine! Take your time. How can I help you today?",
		"No need to apologize! I'm here whenever you're ready. What happened?",
		"Don't worry about it! Just tell me what's going on and I'll guide you.",
		"All good! We can start fresh. What would you like to know? 😊",
	},

	"general_ok": {
		"Alright! Feel free to ask if you need any legal guidance.",
		"Great! Is there anything else I can help you with?",
		"சரி! வேறு ஏதாவது தேவையா? நான் இங்கே இருக்கிறேன்.",
		"Got it! Let me know if anything comes up.",
		"Sure! I'm here whenever you need help. 😊",
		"No problem! Feel free to come back anytime.",
		"Understood! Anything else on your mind?",
		"புரிஞ்சது! வேறு கேள்வி இருந்தால் கேளுங்கள். 😊",
	},

	"general_bye": {
		"Goodbye! Stay safe and always know your rights. Take care! 👋",
		"Take care! Remember — ARAM is here whenever you need legal awareness guidance. 😊",
		"போய் வாருங்கள்! உங்கள் உரிமைகளை மறவாதீர்கள். 👋",
		"See you! Stay informed and stay protected. Goodbye! 😊",
		"Bye! Come back anytime you need help. Stay safe! 👋",
		"Take care of yourself! Remember your rights and stay protected. 😊",
		"Goodbye! It was great helping you today. Come back anytime! 👋",
		"வருகிறேன் என்று சொல்லுங்கள்! 😊 உங்கள் உரிமைகளை பாதுகாத்துக்கொள்ளுங்கள்!",
		"Bye bye! Stay safe, stay informed, stay protected! 💪",
		"See you soon! The law is on your side — always remember that. 👋",
	},

	"general_law_info": {
		"Great that you want to learn about Indian laws! Here's a quick overview:\n\n📋 Consumer Protection Act 2019 — Protects buyers of goods and services\n💻 IT Act 2000 — Covers cyber crimes and digital offences\n⚖️ BNS 2023 — Replaced IPC, covers criminal offences\n\nWant to know more about any specific law?",
		"Learning about your legal rights is the first step to protecting them! ARAM covers:\n\n• Consumer Protection Act — for shopping, refund, service issues\n• IT Act — for cyber fraud, hacking, online harassment\n• BNS — for cheating, threats, and harassment\n\nTell me your situation and I'll guide you to the right law!",
	},

	categoryTamilRequest: {
		"நான் தமிழிலும் பேசுவேன்! உங்கள் கேள்வியை தமிழில் கேளுங்கள். 😊",
	},
}

// irrelevantTopics flags clearly off-topic queries.
var irrelevantTopics = []string{
	"weather", "cricket", "movie", "film", "actor", "actress",
	"food", "recipe", "cook", "restaurant", "hotel booking",
	"sports", "football", "music", "song", "dance",
	"love", "relationship", "boyfriend", "girlfriend",
	"homework", "study", "exam", "school", "college",
	"investment", "stock market", "crypto", "bitcoin",
	"health tips", "diet", "exercise", "gym",
	"astrology", "horoscope", "religion", "god",
	"politics", "election", "party", "vote",
	"joke", "comedy", "funny", "meme",
	"game", "gaming", "pubg", "freefire",
	"padham", "padam", "cinema", "serials",
}

// irrelevantResponses politely redirect back to legal topics.
var irrelevantResponses = []string{
	"That's outside my area of expertise! I specialize in legal awareness for Indian citizens. Could you tell me about a legal concern you have?",
	"I'm specifically designed to help with legal awareness — consumer issues, cyber crimes, and general legal rights. How can I help you with a legal matter?",
	"I'd love to help but that topic is outside what I cover. I'm best at guiding you through legal situations. Do you have a legal concern I can help with?",
	"அது என்னுடைய தொழில் இல்லை! நான் சட்ட விழிப்புணர்வுக்கு மட்டுமே உதவுகிறேன். சட்ட பிரச்சினை ஏதாவது இருந்தால் சொல்லுங்கள்.",
}
