// Package chat orchestrates one conversation turn: conversation
// filters, language routing, intent resolution, statute enrichment,
// reply rendering and logging.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/aramlabs/aram-assistant/internal/chatlog"
	"github.com/aramlabs/aram-assistant/internal/filters"
	"github.com/aramlabs/aram-assistant/internal/intent"
	"github.com/aramlabs/aram-assistant/internal/lawref"
	"github.com/aramlabs/aram-assistant/internal/observability/metrics"
	"github.com/aramlabs/aram-assistant/internal/response"
	"github.com/aramlabs/aram-assistant/pkg/logging"
)

const emptyInputPrompt = "Please type something so I can help you."

// saveTimeout bounds the background log write; the reply has already
// been sent by then.
const saveTimeout = 5 * time.Second

// Reply is the assistant's answer for one user message.
type Reply struct {
	Response string `json:"response"`
	Intent   string `json:"intent_id,omitempty"`
	Language string `json:"language,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Deps carries the service's collaborators.
type Deps struct {
	Filters  *filters.Chain
	Detector *intent.Detector
	Laws     *lawref.Library
	Renderer *response.Renderer
	Store    chatlog.Store
	Metrics  *metrics.ChatMetrics
	Logger   *logging.Logger
	// ResponseMax caps the logged reply length; zero keeps the default.
	ResponseMax int
}

// Service answers chat messages. Stateless per request and safe for
// concurrent use.
type Service struct {
	filters     *filters.Chain
	detector    *intent.Detector
	laws        *lawref.Library
	renderer    *response.Renderer
	store       chatlog.Store
	metrics     *metrics.ChatMetrics
	logger      *logging.Logger
	responseMax int
}

// NewService wires the chat pipeline.
func NewService(d Deps) *Service {
	if d.Filters == nil {
		panic("chat: filter chain cannot be nil")
	}
	if d.Detector == nil {
		panic("chat: detector cannot be nil")
	}
	if d.Laws == nil {
		panic("chat: law library cannot be nil")
	}
	if d.Renderer == nil {
		panic("chat: renderer cannot be nil")
	}
	if d.Store == nil {
		d.Store = chatlog.NewMemoryStore()
	}
	if d.Logger == nil {
		d.Logger = logging.Default()
	}
	return &Service{
		filters:     d.Filters,
		detector:    d.Detector,
		laws:        d.Laws,
		renderer:    d.Renderer,
		store:       d.Store,
		metrics:     d.Metrics,
		logger:      d.Logger,
		responseMax: d.ResponseMax,
	}
}

// Reply answers one user message. It never returns an error to the
// caller; every degenerate case produces a usable reply.
func (s *Service) Reply(ctx context.Context, message string) Reply {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{Response: emptyInputPrompt}
	}

	if hit, ok := s.filters.Apply(message); ok {
		s.metrics.ObserveFiltered(strings.ToLower(string(hit.Tag)))
		s.saveAsync(message, string(hit.Tag), "", "filter", hit.Response)
		return Reply{Response: hit.Response, Intent: string(hit.Tag)}
	}

	start := time.Now()
	res := s.detector.Detect(message)
	s.metrics.ObserveDetectLatency(string(res.Language), time.Since(start).Seconds())

	var reply string
	if res.TamilBody != "" {
		reply = res.TamilBody
	} else {
		var lawContext, complaintChannels string
		if res.Intent.ID != intent.GreetingIntentID && res.Intent.ID != intent.UnknownIntentID {
			lawContext = s.laws.Context(res.Intent.ID)
			complaintChannels = s.laws.ComplaintChannels(res.Intent.ID)
		}
		reply = s.renderer.Render(res.Intent, lawContext, complaintChannels)
	}

	s.metrics.ObserveResolved(res.Intent.ID, string(res.Source), string(res.Language))
	s.logger.Info("chat: resolved",
		"intent", res.Intent.ID,
		"language", res.Language,
		"source", res.Source,
		"rule_score", res.RuleScore,
		"ml_confidence", res.MLConfidence,
	)
	s.saveAsync(message, res.Intent.ID, string(res.Language), string(res.Source), reply)

	return Reply{
		Response: reply,
		Intent:   res.Intent.ID,
		Language: string(res.Language),
		Source:   string(res.Source),
	}
}

// Summary exposes the conversation log aggregates.
func (s *Service) Summary(ctx context.Context) (*chatlog.Summary, error) {
	return s.store.Summarize(ctx)
}

// saveAsync writes the log entry off the request path. A failed write
// is logged and counted, never surfaced to the user.
func (s *Service) saveAsync(message, intentID, lang, source, reply string) {
	entry := chatlog.NewEntry(message, intentID, lang, source, reply, s.responseMax)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		err := s.store.Save(ctx, entry)
		s.metrics.ObserveLogSave(storeBackend(s.store), err)
		if err != nil {
			s.logger.Warn("chat: log save failed", "error", err)
		}
	}()
}

func storeBackend(store chatlog.Store) string {
	switch store.(type) {
	case *chatlog.PostgresStore:
		return "postgres"
	case *chatlog.RedisStore:
		return "redis"
	default:
		return "memory"
	}
}
