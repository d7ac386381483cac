// Package logs configures the process wide logrus logger: output format,
// verbosity and an optional persistent copy of everything written to stdout.
package logs

import (
	"io"
	"os"

	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const logFilePermissions = 0600

// Supported log formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatFluentd = "fluentd"
)

// Configure applies the verbosity and format to the standard logger.
func Configure(verbosity, format string) error {
	level, err := logrus.ParseLevel(verbosity)
	if err != nil {
		return errors.Wrap(err, "could not parse verbosity")
	}
	logrus.SetLevel(level)

	formatter, err := NewFormatter(format)
	if err != nil {
		return err
	}
	logrus.SetFormatter(formatter)
	return nil
}

// NewFormatter returns the logrus formatter registered for format.
func NewFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case FormatText, "":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		return formatter, nil
	case FormatFluentd:
		return joonix.NewFormatter(), nil
	case FormatJSON:
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, errors.Errorf("unknown log format %v", format)
	}
}

func addLogWriter(w io.Writer) {
	mw := io.MultiWriter(logrus.StandardLogger().Out, w)
	logrus.SetOutput(mw)
}

// ConfigurePersistentLogging adds a log-to-file writer. File content is identical to stdout.
func ConfigurePersistentLogging(logFileName string) error {
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec G304
	if err != nil {
		return err
	}

	addLogWriter(f)

	logrus.Info("File logging initialized")
	return nil
}
