package events

import "github.com/atomicstack/menu-launcher/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Start(label string, argv []string, dir string) {
	logging.Trace("launch.start", map[string]interface{}{"label": label, "argv": argv, "dir": dir})
}

func (LaunchTracer) Finish(label string) {
	logging.Trace("launch.finish", map[string]interface{}{"label": label})
}

func (LaunchTracer) Error(label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.error", map[string]interface{}{"label": label, "error": err.Error()})
}
