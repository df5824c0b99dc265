// Package engine runs the discrete-event loop.
package engine

import (
	"github.com/hashicorp/go-hclog"

	"github.com/weirsim/weir-go/internal/sim/config"
	"github.com/weirsim/weir-go/pkg/simtime"
)

// Scheduler is the surface collaborators use to enqueue simulated work.
type Scheduler interface {
	Schedule(at simtime.Time, fn func()) error
}

// ScenarioLoader is implemented by the XML scenario subsystem. Paths are
// consumed in order; order determines scenario merge order.
type ScenarioLoader interface {
	Load(paths []string) error
}

// Workload is a runnable piece of simulated traffic, either a loaded plugin
// or one of the built-in examples.
type Workload interface {
	Name() string
	Bootstrap(s Scheduler) error
}

// exampleWorkload stands in for the plugin loader's built-in examples until
// the plugin subsystem attaches. Bootstrap schedules a single start event.
type exampleWorkload struct {
	name  string
	start simtime.Time
	log   hclog.Logger
}

func (w *exampleWorkload) Name() string { return w.name }

func (w *exampleWorkload) Bootstrap(s Scheduler) error {
	return s.Schedule(w.start, func() {
		w.log.Info("example workload started", "name", w.name)
	})
}

// Builtin returns the example workloads selected on the command line, in the
// fixed ping/echo/file order.
func Builtin(cfg *config.Config, log hclog.Logger) []Workload {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	var workloads []Workload
	for _, name := range cfg.SelectedExamples() {
		workloads = append(workloads, &exampleWorkload{
			name:  name,
			start: simtime.Second,
			log:   log,
		})
	}
	return workloads
}
