// Package testlog routes test logging through the test profile.
package testlog

import (
	"testing"

	"github.com/danmuck/labkit/internal/logging"
)

// Start configures the test profile and brackets the test in the log.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logging.Infof("test=%s", t.Name())
	t.Cleanup(func() {
		if t.Failed() {
			logging.Warnf("test=%s result=fail", t.Name())
			return
		}
		logging.Debugf("test=%s result=pass", t.Name())
	})
}
