package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/automaton/shared/testutil/assert"
	"github.com/prysmaticlabs/automaton/shared/testutil/require"
	"github.com/sirupsen/logrus"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

func TestLogrusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewLogrusCollector(reg)
	require.NoError(t, err)

	logger, _ := logTest.NewNullLogger()
	logger.AddHook(collector)

	tests := []struct {
		name   string
		count  int
		prefix string
		level  logrus.Level
	}{
		{"info message with empty prefix", 3, "", logrus.InfoLevel},
		{"warn message with empty prefix", 2, "", logrus.WarnLevel},
		{"error message with prefix", 1, "automaton", logrus.ErrorLevel},
		{"info message with prefix", 4, "automaton", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix := defaultPrefix
			entry := logrus.NewEntry(logger)
			if tt.prefix != "" {
				prefix = tt.prefix
				entry = entry.WithField(prefixKey, tt.prefix)
			}
			for i := 0; i < tt.count; i++ {
				entry.Log(tt.level, "message")
			}
			got := testutil.ToFloat64(collector.counterVec.WithLabelValues(tt.level.String(), prefix))
			assert.Equal(t, float64(tt.count), got)
		})
	}
}

func TestLogrusCollector_DebugIgnored(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewLogrusCollector(reg)
	require.NoError(t, err)
	logger, _ := logTest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	logger.AddHook(collector)

	logger.Debug("Advanced generation")
	assert.Equal(t, 0, testutil.CollectAndCount(collector.counterVec))
}

func TestLogrusCollector_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewLogrusCollector(reg)
	require.NoError(t, err)
	_, err = NewLogrusCollector(reg)
	assert.NotNil(t, err)
}
