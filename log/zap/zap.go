// Package zap adapts a zap.Logger to the encryptconfig Logger interface.
package zap

import (
	"go.uber.org/zap"

	encryptconfig "github.com/kingwingfly/encrypt-config"
)

type Logger struct{ L *zap.Logger }

var _ encryptconfig.Logger = Logger{}

func (z Logger) Debug(msg string, f encryptconfig.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f encryptconfig.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f encryptconfig.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f encryptconfig.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f encryptconfig.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
