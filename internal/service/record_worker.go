package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"marketing-performance-service/internal/model"
	"marketing-performance-service/internal/repository"
)

// BatchRecordWorker buffers accepted measurements and flushes them to the
// store in batches.
type BatchRecordWorker interface {
	Enqueue(rec model.AnalyticsRecord)
	Shutdown()
}

type batchRecordWorker struct {
	repo          repository.AnalyticsRepository
	log           *logrus.Logger
	queue         chan model.AnalyticsRecord
	batchSize     int
	flushInterval time.Duration
	wg            sync.WaitGroup
}

const flushTimeout = 5 * time.Second

// NewBatchRecordWorker starts a background worker that flushes when the
// batch fills or the interval elapses, whichever comes first.
func NewBatchRecordWorker(repo repository.AnalyticsRepository, log *logrus.Logger, bufferSize, batchSize int, interval time.Duration) *batchRecordWorker {
	worker := &batchRecordWorker{
		repo:          repo,
		log:           log,
		queue:         make(chan model.AnalyticsRecord, bufferSize),
		batchSize:     batchSize,
		flushInterval: interval,
	}
	worker.wg.Add(1)
	go worker.startLoop()
	return worker
}

// Enqueue hands a record to the background loop. Blocks when the buffer is
// full.
func (w *batchRecordWorker) Enqueue(rec model.AnalyticsRecord) {
	w.queue <- rec
}

// Shutdown closes the queue, flushes what remains, and waits for the loop to
// exit.
func (w *batchRecordWorker) Shutdown() {
	close(w.queue)
	w.wg.Wait()
	w.log.Info("record worker stopped")
}

func (w *batchRecordWorker) startLoop() {
	defer w.wg.Done()

	var batch []model.AnalyticsRecord
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case rec, ok := <-w.queue:
			if !ok {
				if len(batch) > 0 {
					w.flush(batch)
				}
				return
			}

			batch = append(batch, rec)
			if len(batch) >= w.batchSize {
				w.flush(batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(batch)
				batch = nil
			}
		}
	}
}

func (w *batchRecordWorker) flush(records []model.AnalyticsRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := w.repo.InsertRecords(ctx, records); err != nil {
		w.log.WithError(err).WithField("count", len(records)).Error("batch insert failed")
		return
	}
	w.log.WithField("count", len(records)).Debug("records flushed")
}
