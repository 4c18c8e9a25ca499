package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	MonitorCycles         prometheus.Counter
	MonitorCycleDurations prometheus.Histogram

	ProbeAttempts  *prometheus.CounterVec
	ProbeErrors    *prometheus.CounterVec
	ProbeDurations *prometheus.HistogramVec

	AnnouncementsSent       *prometheus.CounterVec
	AnnouncementsSuppressed *prometheus.CounterVec
	AnnouncementErrors      prometheus.Counter

	ServerOnline  prometheus.Gauge
	ServerPlayers prometheus.Gauge
	ServerLatency prometheus.Gauge
	MonitorStreak prometheus.Gauge

	ObservationRepositorySize  prometheus.Gauge
	AnnouncementRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		MonitorCycles: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "monitor_cycles_total",
			Help: "The total number of completed check cycles",
		}),
		MonitorCycleDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name: "monitor_cycle_duration_seconds",
			Help: "Duration of check cycles",
		}),
		ProbeAttempts: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "probe_attempts_total",
			Help: "The total number of performed probes",
		}, []string{"edition"}),
		ProbeErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "probe_errors_total",
			Help: "The total number of failed probes",
		}, []string{"edition"}),
		ProbeDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "probe_duration_seconds",
			Help: "Duration of probes",
		}, []string{"edition"}),
		AnnouncementsSent: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "announcements_sent_total",
			Help: "The total number of delivered status announcements",
		}, []string{"classification"}),
		AnnouncementsSuppressed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "announcements_suppressed_total",
			Help: "The total number of suppressed status announcements",
		}, []string{"reason"}),
		AnnouncementErrors: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "announcement_errors_total",
			Help: "The total number of failed announcement deliveries",
		}),
		ServerOnline: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "server_online",
			Help: "Whether the monitored server was last seen online",
		}),
		ServerPlayers: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "server_players",
			Help: "The number of players last seen online",
		}),
		ServerLatency: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "server_latency_seconds",
			Help: "The latency of the last successful probe",
		}),
		MonitorStreak: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "monitor_streak",
			Help: "The length of the current agreement streak",
		}),
		ObservationRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_observations_size",
			Help: "The number of observations stored in the repository",
		}),
		AnnouncementRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_announcements_size",
			Help: "The number of announcements stored in the repository",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

// Observer projects state that is not updated inline, such as repository
// sizes, onto collector gauges. Observers are polled by the observer
// component on its own schedule.
type Observer interface {
	Observe(ctx context.Context, metrics *Collector)
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	for _, observer := range c.observers {
		go observer.Observe(ctx, c)
	}
}
