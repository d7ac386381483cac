package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	joonix "github.com/joonix/log"
	"github.com/prysmaticlabs/automaton/shared/testutil/assert"
	"github.com/prysmaticlabs/automaton/shared/testutil/require"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter(FormatText)
	require.NoError(t, err)
	_, ok := f.(*prefixed.TextFormatter)
	assert.Equal(t, true, ok, "text format should use the prefixed formatter")

	f, err = NewFormatter(FormatJSON)
	require.NoError(t, err)
	_, ok = f.(*logrus.JSONFormatter)
	assert.Equal(t, true, ok)

	f, err = NewFormatter(FormatFluentd)
	require.NoError(t, err)
	_, ok = f.(*joonix.Formatter)
	assert.Equal(t, true, ok)

	_, err = NewFormatter("xml")
	assert.ErrorContains(t, "unknown log format xml", err)
}

func TestConfigure(t *testing.T) {
	prevLevel, prevFormatter := logrus.GetLevel(), logrus.StandardLogger().Formatter
	defer func() {
		logrus.SetLevel(prevLevel)
		logrus.SetFormatter(prevFormatter)
	}()

	require.NoError(t, Configure("debug", FormatJSON))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.ErrorContains(t, "could not parse verbosity", Configure("loud", FormatText))
}

func TestConfigurePersistentLogging(t *testing.T) {
	prevOut := logrus.StandardLogger().Out
	defer logrus.SetOutput(prevOut)

	logFileName := filepath.Join(t.TempDir(), "automaton.log")
	require.NoError(t, ConfigurePersistentLogging(logFileName))
	logrus.Info("Advanced generation")

	content, err := os.ReadFile(logFileName)
	require.NoError(t, err)
	assert.Equal(t, true, strings.Contains(string(content), "Advanced generation"))

	// Missing parent directory.
	err = ConfigurePersistentLogging(filepath.Join(t.TempDir(), "missing", "automaton.log"))
	assert.NotNil(t, err)
}
