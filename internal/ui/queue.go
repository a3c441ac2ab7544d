package ui

import "sync"

const defaultQueueSize = 64

// Queue executes posted tasks one at a time on a single goroutine
type Queue struct {
	tasks   chan func()
	stopped chan struct{}
	once    sync.Once
}

func NewQueue() *Queue {
	q := &Queue{
		tasks:   make(chan func(), defaultQueueSize),
		stopped: make(chan struct{}),
	}
	go q.loop()
	return q
}

func (q *Queue) loop() {
	for {
		select {
		case task := <-q.tasks:
			task()
		case <-q.stopped:
			return
		}
	}
}

// Post schedules task for execution, false is returned if queue is already stopped
func (q *Queue) Post(task func()) bool {
	select {
	case <-q.stopped:
		return false
	default:
	}

	select {
	case q.tasks <- task:
		return true
	case <-q.stopped:
		return false
	}
}

func (q *Queue) Stopped() <-chan struct{} {
	return q.stopped
}

// Stop stops queue, tasks which are not started yet are dropped
func (q *Queue) Stop() {
	q.once.Do(func() {
		close(q.stopped)
	})
}
