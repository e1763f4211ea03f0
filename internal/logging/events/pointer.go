package events

import (
	"github.com/floatkit/floatnav/internal/logging"
	"go.uber.org/zap"
)

type PointerTracer struct{}

var Pointer = PointerTracer{}

func (PointerTracer) Hover(popup string, index int) {
	logging.Trace("pointer.hover", zap.String("popup", popup), zap.Int("index", index))
}

func (PointerTracer) Leave(popup string) {
	logging.Trace("pointer.leave", zap.String("popup", popup))
}

func (PointerTracer) Suppress(popup string, on bool) {
	logging.Trace("pointer.suppress", zap.String("popup", popup), zap.Bool("on", on))
}
