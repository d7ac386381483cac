package prometheus

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const prefixKey = "prefix"
const defaultPrefix = "global"

var supportedLevels = []logrus.Level{logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}

// LogrusCollector is a logrus hook counting log entries by level and prefix.
type LogrusCollector struct {
	counterVec *prometheus.CounterVec
}

// NewLogrusCollector registers the log counter with reg and returns the hook
// feeding it. Registering twice with the same registerer fails.
func NewLogrusCollector(reg prometheus.Registerer) (*LogrusCollector, error) {
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "log_entries_total",
		Help: "Total number of log messages.",
	}, []string{"level", "prefix"})
	if err := reg.Register(counterVec); err != nil {
		return nil, err
	}
	return &LogrusCollector{counterVec: counterVec}, nil
}

// Fire is called on every log call.
func (hook *LogrusCollector) Fire(entry *logrus.Entry) error {
	prefix := defaultPrefix
	if prefixValue, ok := entry.Data[prefixKey]; ok {
		prefix, ok = prefixValue.(string)
		if !ok {
			return errors.New("prefix is not a string")
		}
	}
	hook.counterVec.WithLabelValues(entry.Level.String(), prefix).Inc()
	return nil
}

// Levels return a slice of levels supported by this hook.
func (*LogrusCollector) Levels() []logrus.Level {
	return supportedLevels
}
