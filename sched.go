// sched.go — cooperative scheduling of deferred units of work.
//
// The facade's write path does not mutate inline: each write becomes its
// own unit of work on a Scheduler. A Scheduler runs units one at a time on
// a single worker, in strict FIFO submission order — that ordering is part
// of the contract, not an implementation accident. There are no locks
// around the backing store itself: the single worker is the isolation.
package array

import "sync"

// Scheduler executes queued units of work sequentially, FIFO.
type Scheduler struct {
	units chan func()
	wg    sync.WaitGroup
	once  sync.Once
	done  chan struct{}
}

// NewScheduler starts the worker and returns a ready Scheduler.
func NewScheduler() *Scheduler {
	s := &Scheduler{
		units: make(chan func(), 64),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Scheduler) run() {
	for unit := range s.units {
		unit()
		s.wg.Done()
	}
	close(s.done)
}

// Go enqueues a unit of work. It returns as soon as the unit is queued; the
// unit runs later, after every unit queued before it. Calling Go after
// Close is a programming error and panics.
func (s *Scheduler) Go(unit func()) {
	s.wg.Add(1)
	s.units <- unit
}

// Drain blocks until every unit queued so far has finished. It is the
// yield point tests and embedders use before reading state touched by
// deferred writes.
func (s *Scheduler) Drain() {
	s.wg.Wait()
}

// Close stops accepting units, waits for the queue to empty, and shuts the
// worker down. Idempotent.
func (s *Scheduler) Close() {
	s.once.Do(func() { close(s.units) })
	<-s.done
}
