package events

import (
	"github.com/floatkit/floatnav/internal/logging"
	"go.uber.org/zap"
)

type FocusTracer struct{}

var Focus = FocusTracer{}

func (FocusTracer) Scheduled(popup string, index int) {
	logging.Trace("focus.schedule", zap.String("popup", popup), zap.Int("index", index))
}

func (FocusTracer) Applied(popup string, index int, virtual bool) {
	logging.Trace("focus.apply",
		zap.String("popup", popup),
		zap.Int("index", index),
		zap.Bool("virtual", virtual),
	)
}

func (FocusTracer) Canceled(popup string) {
	logging.Trace("focus.cancel", zap.String("popup", popup))
}

func (FocusTracer) Parent(popup, parent string) {
	logging.Trace("focus.parent", zap.String("popup", popup), zap.String("parent", parent))
}
