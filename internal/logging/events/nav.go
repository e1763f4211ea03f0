package events

import (
	"github.com/floatkit/floatnav/internal/logging"
	"go.uber.org/zap"
)

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Index(popup string, index int, active bool, key string) {
	logging.Trace("nav.index",
		zap.String("popup", popup),
		zap.Int("index", index),
		zap.Bool("active", active),
		zap.String("key", key),
	)
}

func (NavTracer) Open(popup, key string) {
	logging.Trace("nav.open", zap.String("popup", popup), zap.String("key", key))
}

func (NavTracer) Close(popup string) {
	logging.Trace("nav.close", zap.String("popup", popup))
}

func (NavTracer) ConfigWarning(popup, detail string) {
	logging.Warn("nav.config", zap.String("popup", popup), zap.String("detail", detail))
}
