// Package logrus adapts a logrus.Entry to the encryptconfig Logger
// interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	encryptconfig "github.com/kingwingfly/encrypt-config"
)

type Logger struct{ E *logrus.Entry }

var _ encryptconfig.Logger = Logger{}

func (l Logger) Debug(msg string, f encryptconfig.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f encryptconfig.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l Logger) Warn(msg string, f encryptconfig.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l Logger) Error(msg string, f encryptconfig.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
