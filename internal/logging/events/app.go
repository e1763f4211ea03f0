package events

import (
	"github.com/floatkit/floatnav/internal/logging"
	"go.uber.org/zap"
)

type AppTracer struct{}

type PopupTracer struct{}

var (
	App   = AppTracer{}
	Popup = PopupTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", zap.Any("payload", payload))
}

func (AppTracer) Exit(err error) {
	if err == nil {
		logging.Trace("app.exit")
		return
	}
	logging.Trace("app.exit", zap.String("error", err.Error()))
}

func (PopupTracer) Opened(id, parent string) {
	logging.Trace("popup.open", zap.String("popup", id), zap.String("parent", parent))
}

func (PopupTracer) Closed(id string) {
	logging.Trace("popup.close", zap.String("popup", id))
}

func (PopupTracer) ItemsChanged(id string, count int) {
	logging.Trace("popup.items", zap.String("popup", id), zap.Int("count", count))
}
