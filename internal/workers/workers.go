package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates ws so they can be started together.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
