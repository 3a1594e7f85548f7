package events

import "github.com/atomicstack/menu-launcher/internal/logging"

type AppTracer struct{}

type MenuTracer struct{}

var (
	App  = AppTracer{}
	Menu = MenuTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(depth int) {
	logging.Trace("app.exit", map[string]interface{}{"depth": depth})
}

func (MenuTracer) Loaded(source string, entries int) {
	logging.Trace("menu.loaded", map[string]interface{}{"source": source, "entries": entries})
}

func (MenuTracer) Failed(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.failed", map[string]interface{}{"source": source, "error": err.Error()})
}
