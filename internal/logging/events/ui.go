package events

import (
	"github.com/floatkit/floatnav/internal/logging"
	"go.uber.org/zap"
)

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

type ActionTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
	Action  = ActionTracer{}
)

func (UITracer) MenuEnter(level, itemID, label, filter string) {
	logging.Trace("ui.enter",
		zap.String("level", level),
		zap.String("item", itemID),
		zap.String("label", label),
		zap.String("filter", filter),
	)
}

func (UITracer) MenuPush(level, parent string) {
	logging.Trace("ui.push", zap.String("level", level), zap.String("parent", parent))
}

func (UITracer) MenuPop(level string) {
	logging.Trace("ui.pop", zap.String("level", level))
}

func (FilterTracer) Append(level, filter string) {
	logging.Trace("filter.append", zap.String("level", level), zap.String("filter", filter))
}

func (FilterTracer) Backspace(level, filter string) {
	logging.Trace("filter.backspace", zap.String("level", level), zap.String("filter", filter))
}

func (FilterTracer) WordBackspace(level, filter string) {
	logging.Trace("filter.word_backspace", zap.String("level", level), zap.String("filter", filter))
}

func (FilterTracer) Cleared(level string) {
	logging.Trace("filter.clear", zap.String("level", level))
}

func (FilterTracer) Cursor(level string, pos int) {
	logging.Trace("filter.cursor", zap.String("level", level), zap.Int("pos", pos))
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", zap.String("id", id), zap.String("label", label))
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", zap.String("id", id), zap.String("label", label))
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", zap.String("id", id), zap.String("label", label))
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result",
		zap.String("id", id),
		zap.String("label", label),
		zap.String("msg", msgType),
	)
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", zap.String("info", info))
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", zap.String("error", err.Error()))
}
