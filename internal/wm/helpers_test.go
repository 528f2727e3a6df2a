package wm

import (
	"io"

	"github.com/sirupsen/logrus"
)

// testLogger returns a logrus.Logger with output discarded, so tests don't
// spam the console but still exercise every WithError/WithField call site.
func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
