package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/api/metrics"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes project views to a fixed set of workers using consistent
// hashing on the project id, so the views of one project are counted in order
// by a single worker.
type Dispatcher struct {
	workers []chan ports.ViewInput
	service ports.ViewService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ViewInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ViewInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a view to the worker responsible for its project. A full
// worker drops the view instead of blocking the request.
func (d *Dispatcher) Enqueue(view ports.ViewInput) bool {
	idx := d.shardIndex(view.ProjectID)
	select {
	case d.workers[idx] <- view:
		metrics.ViewsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return true
	default:
		d.log.Warn().Str("project_id", view.ProjectID).Int("worker_id", idx).Msg("view queue full, dropping view")
		return false
	}
}

// shardIndex maps a project id deterministically to a worker index.
func (d *Dispatcher) shardIndex(projectID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(projectID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ViewInput) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-ch:
			if !ok {
				return
			}
			metrics.ViewsQueueDepth.WithLabelValues(label).Set(float64(len(ch)))

			start := time.Now()
			err := d.service.Process(ctx, view)
			metrics.ViewProcessingDuration.Observe(time.Since(start).Seconds())

			if err != nil {
				metrics.ViewsProcessedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("project_id", view.ProjectID).
					Int("worker_id", id).
					Msg("view processing failed")
				continue
			}
			metrics.ViewsProcessedTotal.WithLabelValues("ok").Inc()
		}
	}
}
