// Package response turns a resolved intent into the assistant's final
// reply text. Replies are plain unicode blocks meant to read well in a
// chat bubble or a terminal alike.
package response

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/aramlabs/aram-assistant/internal/intent"
	"github.com/aramlabs/aram-assistant/pkg/logging"
)

const separator = "────────────────────────────────────────────────────────────"

const disclaimer = "\n⚖️  Disclaimer: This is legal awareness guidance only, " +
	"not legal advice.\n" +
	"   For legal representation, please consult a qualified lawyer."

// severityNotes explain what each severity level means for the user.
var severityNotes = map[intent.Severity]string{
	intent.SeverityLow:    "This situation can likely be resolved through communication.",
	intent.SeverityMedium: "This situation may require formal complaint filing.",
	intent.SeverityHigh:   "This situation needs prompt attention and official reporting.",
}

var severityEmoji = map[intent.Severity]string{
	intent.SeverityLow:    "🟡",
	intent.SeverityMedium: "🟠",
	intent.SeverityHigh:   "🔴",
}

var greetingOpeners = []string{
	"Hello! I am ARAM, your legal awareness assistant. How can I help you today?",
	"Hi there! I'm ARAM, here to help you understand your legal rights calmly and clearly. What's on your mind?",
	"Welcome! I'm ARAM, your legal awareness guide. Please describe your situation and I'll do my best to help.",
	"Hello! Great to have you here. I'm ARAM, I help Indian citizens understand their legal rights. How can I assist you?",
	"Hi! I'm ARAM, your legal awareness companion. I'm here to guide you through consumer issues, cyber concerns, and general legal matters. What would you like to know?",
}

var unknownOpeners = []string{
	"I'm not sure I understood that. Could you describe your situation in a little more detail?",
	"I want to help but need a bit more context. Could you tell me more about what happened?",
	"I didn't quite catch that. Please describe your situation and I'll guide you to the right information.",
	"Could you explain your situation a little differently? I want to make sure I give you the right guidance.",
	"I'm here to help with legal awareness. Could you share more details about your concern?",
}

// Renderer formats replies. Safe for concurrent use; the random source
// behind template variation is mutex-guarded.
type Renderer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *logging.Logger
}

// NewRenderer creates a renderer. A nil rng gets a time-seeded source;
// tests pass a fixed seed for stable output.
func NewRenderer(rng *rand.Rand, logger *logging.Logger) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Renderer{rng: rng, logger: logger}
}

// Render builds the complete reply for a resolved intent. lawContext
// and complaintChannels are the optional statute excerpts; empty strings
// omit their sections.
func (r *Renderer) Render(in *intent.Intent, lawContext, complaintChannels string) string {
	if in == nil {
		return "I'm sorry, I could not process your request. Please try again."
	}

	switch in.ID {
	case intent.GreetingIntentID:
		return r.renderGreeting()
	case intent.UnknownIntentID:
		return r.renderUnknown()
	default:
		return r.renderLegal(in, lawContext, complaintChannels)
	}
}

func (r *Renderer) renderGreeting() string {
	var b strings.Builder
	b.WriteString("\n" + separator + "\n")
	b.WriteString("👋  " + r.pick(greetingOpeners) + "\n\n")
	b.WriteString("    I can help you with:\n")
	b.WriteString("    • Consumer complaints (refunds, defective products, online shopping)\n")
	b.WriteString("    • Cyber issues (fraud, hacking, harassment, identity theft)\n")
	b.WriteString("    • General legal concerns (cheating, threats, harassment)\n")
	b.WriteString("    • Complaint guidance (where and how to file)\n\n")
	b.WriteString("    Supported languages: English | Tamil | Tanglish\n")
	b.WriteString(separator + "\n")
	return b.String()
}

func (r *Renderer) renderUnknown() string {
	var b strings.Builder
	b.WriteString("\n" + separator + "\n")
	b.WriteString("🤔  " + r.pick(unknownOpeners) + "\n\n")
	b.WriteString("    I can currently help you with:\n")
	b.WriteString("    • Consumer complaints (refunds, defective products, online shopping)\n")
	b.WriteString("    • Cyber issues (fraud, hacking, harassment, identity theft)\n")
	b.WriteString("    • General legal concerns (cheating, threats, harassment)\n")
	b.WriteString("    • Complaint filing guidance\n\n")
	b.WriteString("    💡 Tip: Describe what happened to you and I'll find\n")
	b.WriteString("    the right legal information for your situation.\n")
	b.WriteString(separator + "\n")
	return b.String()
}

func (r *Renderer) renderLegal(in *intent.Intent, lawContext, complaintChannels string) string {
	severity := in.Severity
	if severity == "" {
		severity = intent.SeverityLow
	}

	var b strings.Builder
	b.WriteString("\n" + separator + "\n")
	b.WriteString("📋  SITUATION UNDERSTOOD\n")
	b.WriteString("    " + r.template(in) + "\n\n")

	b.WriteString("⚖️  APPLICABLE LAW\n")
	b.WriteString("    " + in.MappedLaw + "\n\n")

	// Intents with no urgency tier skip the severity block entirely.
	if severity != intent.SeverityNone {
		emoji, ok := severityEmoji[severity]
		if !ok {
			emoji = "🟡"
		}
		fmt.Fprintf(&b, "%s  SEVERITY: %s\n", emoji, strings.ToUpper(string(severity)))
		b.WriteString("    " + severityNotes[severity] + "\n\n")
	}

	b.WriteString("💡  WHAT THIS MEANS FOR YOU\n")
	b.WriteString("    " + in.Explanation + "\n")

	if lawContext != "" {
		b.WriteString("\n📖  LEGAL DETAILS\n")
		b.WriteString("    " + indentBlock(lawContext) + "\n")
	}

	b.WriteString("\n✅  YOUR NEXT STEPS\n")
	for i, step := range in.RecommendedSteps {
		fmt.Fprintf(&b, "    %d. %s\n", i+1, step)
	}

	if complaintChannels != "" {
		b.WriteString("\n🏛️  WHERE TO FILE COMPLAINT\n")
		b.WriteString("    " + indentBlock(complaintChannels) + "\n")
	}

	b.WriteString(disclaimer + "\n")
	b.WriteString(separator + "\n")
	return b.String()
}

// template picks one response template at random; variation keeps the
// assistant from sounding canned on repeat queries.
func (r *Renderer) template(in *intent.Intent) string {
	if len(in.ResponseTemplates) == 0 {
		return in.Description
	}
	return r.pick(in.ResponseTemplates)
}

func (r *Renderer) pick(pool []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pool[r.rng.Intn(len(pool))]
}

// indentBlock keeps multi-line statute excerpts aligned with their
// section heading.
func indentBlock(text string) string {
	return strings.ReplaceAll(text, "\n", "\n    ")
}
