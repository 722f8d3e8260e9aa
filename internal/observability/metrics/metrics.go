package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat pipeline.
type ChatMetrics struct {
	resolvedTotal *prometheus.CounterVec
	filteredTotal *prometheus.CounterVec
	logSaveTotal  *prometheus.CounterVec
	detectLatency *prometheus.HistogramVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		resolvedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aram",
			Subsystem: "chat",
			Name:      "resolved_total",
			Help:      "Total resolved intents",
		}, []string{"intent", "source", "language"}),
		filteredTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aram",
			Subsystem: "chat",
			Name:      "filtered_total",
			Help:      "Total messages answered by conversation filters",
		}, []string{"filter"}),
		logSaveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aram",
			Subsystem: "chat",
			Name:      "log_save_total",
			Help:      "Total conversation log writes",
		}, []string{"backend", "status"}),
		detectLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aram",
			Subsystem: "chat",
			Name:      "detect_latency_seconds",
			Help:      "Latency of intent detection",
			Buckets:   prometheus.DefBuckets,
		}, []string{"language"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.resolvedTotal, m.filteredTotal, m.logSaveTotal, m.detectLatency)
	return m
}

func (m *ChatMetrics) ObserveResolved(intentID, source, language string) {
	if m == nil {
		return
	}
	m.resolvedTotal.WithLabelValues(intentID, source, language).Inc()
}

func (m *ChatMetrics) ObserveFiltered(filter string) {
	if m == nil {
		return
	}
	m.filteredTotal.WithLabelValues(filter).Inc()
}

func (m *ChatMetrics) ObserveLogSave(backend string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.logSaveTotal.WithLabelValues(backend, status).Inc()
}

func (m *ChatMetrics) ObserveDetectLatency(language string, seconds float64) {
	if m == nil {
		return
	}
	m.detectLatency.WithLabelValues(language).Observe(seconds)
}
