package dllpack

import "github.com/sirupsen/logrus"

// log is the package-wide logger. Callers can reconfigure level/output via
// SetLogger.
var log = logrus.New()

// SetLogger replaces the package's logger. Passing nil is a no-op.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
