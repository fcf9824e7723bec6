package queue

import (
	"context"
	"sync"

	"github.com/ItsNotGoodName/x-collage/internal/core"
)

// Task is a unit of work. It must call done once it has finished, possibly
// after returning. Later calls to done are ignored.
type Task func(done func())

// Queue runs tasks one at a time in the order they were enqueued.
type Queue struct {
	name string

	mu    sync.Mutex
	tasks []Task

	wakeC chan struct{}
}

func New(name string) *Queue {
	return &Queue{
		name:  name,
		wakeC: make(chan struct{}, 1),
	}
}

func (q *Queue) String() string {
	return "queue.Queue(" + q.name + ")"
}

// Enqueue appends task without waiting for it to run.
func (q *Queue) Enqueue(task Task) {
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()

	core.FlagChannel(q.wakeC)
}

// Len returns the number of tasks that have not started.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Serve runs tasks until ctx is done. Tasks that have not started stay queued.
func (q *Queue) Serve(ctx context.Context) error {
	for {
		task, ok := q.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-q.wakeC:
				continue
			}
		}

		doneC := make(chan struct{})
		task(sync.OnceFunc(func() { close(doneC) }))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-doneC:
		}
	}
}

// Sync waits until every task enqueued before it has finished.
func (q *Queue) Sync(ctx context.Context) error {
	syncC := make(chan struct{})
	q.Enqueue(func(done func()) {
		close(syncC)
		done()
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-syncC:
		return nil
	}
}

func (q *Queue) pop() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return nil, false
	}

	task := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return task, true
}
