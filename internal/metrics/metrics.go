package metrics

import (
	"sync"
	"time"

	"fruitstock-telegram-bot/internal/database"
	"fruitstock-telegram-bot/internal/tracker"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
)

const (
	namespace = "fruitstock"
	subsystem = "telegram_bot"
)

type BotMetrics struct {
	CommandsProcessed prometheus.Counter
	MessagesHandled   prometheus.Counter
	Ticks             *prometheus.CounterVec
	PublishActions    *prometheus.CounterVec
	LastSuccess       prometheus.Gauge
	Mutex             sync.Mutex
}

func NewBotMetrics(reg prometheus.Registerer) *BotMetrics {
	metrics := &BotMetrics{
		CommandsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commands_processed",
			Help:      "The total number of processed commands",
		}),
		MessagesHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "messages_handled",
			Help:      "The total number of handled messages",
		}),
		Ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ticks_total",
				Help:      "Stock tracker ticks by trigger and outcome",
			},
			[]string{"trigger", "status"},
		),
		PublishActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "publish_actions_total",
				Help:      "Stock message sends, edits and re-sends",
			},
			[]string{"action"},
		),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last tick that fetched data successfully",
		}),
	}

	reg.MustRegister(
		metrics.CommandsProcessed,
		metrics.MessagesHandled,
		metrics.Ticks,
		metrics.PublishActions,
		metrics.LastSuccess,
	)

	return metrics
}

// Observe records a tracker result. It satisfies tracker.Observer.
func (m *BotMetrics) Observe(res tracker.Result) {
	m.Mutex.Lock()
	defer m.Mutex.Unlock()

	if res.Trigger == tracker.TriggerCountdown && res.Status == tracker.Unchanged {
		return
	}

	m.Ticks.WithLabelValues(string(res.Trigger), string(res.Status)).Inc()
	if res.Action != tracker.ActionNone && res.Action != "" {
		m.PublishActions.WithLabelValues(string(res.Action)).Inc()
	}
	if res.Trigger == tracker.TriggerPoll && res.Status != tracker.FetchFailed {
		m.LastSuccess.Set(float64(time.Now().Unix()))
	}
}

// LoadFromDB restores counters saved by a previous run.
func (m *BotMetrics) LoadFromDB() {
	m.Mutex.Lock()
	defer m.Mutex.Unlock()

	commandsProcessed, _ := database.GetMetric("commands_processed")
	messagesHandled, _ := database.GetMetric("messages_handled")

	m.CommandsProcessed.Add(commandsProcessed)
	m.MessagesHandled.Add(messagesHandled)

	loadLabeledMetrics("ticks_total", func(trigger, status string, value float64) {
		m.Ticks.WithLabelValues(trigger, status).Add(value)
	})

	loadLabeledMetrics("publish_actions_total", func(_, action string, value float64) {
		m.PublishActions.WithLabelValues(action).Add(value)
	})

	log.Info("Metrics loaded from database.")
}

func loadLabeledMetrics(metricName string, callback func(labelKey, labelValue string, value float64)) {
	metricsWithLabels, err := database.GetMetricsWithLabels(metricName)
	if err != nil {
		log.Errorf("Failed to load %s: %v", metricName, err)
		return
	}
	for labelKey, labelValues := range metricsWithLabels {
		for labelValue, value := range labelValues {
			callback(labelKey, labelValue, value)
		}
	}
}

// SaveToDB persists the counters so they survive restarts.
func (m *BotMetrics) SaveToDB() {
	m.Mutex.Lock()
	defer m.Mutex.Unlock()

	saveOrLog(database.SaveMetric("commands_processed", GetMetricValue(m.CommandsProcessed)))
	saveOrLog(database.SaveMetric("messages_handled", GetMetricValue(m.MessagesHandled)))

	collectLabeled(m.Ticks, func(labels map[string]string, value float64) {
		saveOrLog(database.SaveMetricWithLabels("ticks_total", labels["trigger"], labels["status"], value))
	})

	collectLabeled(m.PublishActions, func(labels map[string]string, value float64) {
		saveOrLog(database.SaveMetricWithLabels("publish_actions_total", "action", labels["action"], value))
	})

	log.Info("Metrics saved to database.")
}

func saveOrLog(err error) {
	if err != nil {
		log.Errorf("Failed to save metric: %v", err)
	}
}

func collectLabeled(vec *prometheus.CounterVec, callback func(labels map[string]string, value float64)) {
	metricChan := make(chan prometheus.Metric)
	go func() {
		vec.Collect(metricChan)
		close(metricChan)
	}()

	for metric := range metricChan {
		metricProto := &dto.Metric{}
		if err := metric.Write(metricProto); err != nil {
			log.Errorf("Failed to read labeled metric: %v", err)
			continue
		}
		labels := make(map[string]string, len(metricProto.Label))
		for _, label := range metricProto.Label {
			labels[label.GetName()] = label.GetValue()
		}
		callback(labels, metricProto.Counter.GetValue())
	}
}

func GetMetricValue(metric prometheus.Collector) float64 {
	var metricValue float64
	metricChan := make(chan prometheus.Metric, 1)
	metric.Collect(metricChan)
	close(metricChan)

	metricProto := &dto.Metric{}
	if err := (<-metricChan).Write(metricProto); err != nil {
		log.Errorf("Failed to read metric value: %v", err)
		return 0
	}

	if metricProto.Counter != nil {
		metricValue = metricProto.Counter.GetValue()
	} else if metricProto.Gauge != nil {
		metricValue = metricProto.Gauge.GetValue()
	}
	return metricValue
}
