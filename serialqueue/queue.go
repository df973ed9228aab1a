package serialqueue

// Task is an asynchronous unit of work. The task signals that it has
// finished by calling complete, exactly once. Calling it a second time is
// tolerated as a no-op.
type Task func(complete func())

// Queue runs Tasks one at a time in enqueue order. A new Queue is stopped
// and empty; nothing runs until Start is called. Not safe for concurrent
// use; see the package documentation for the ownership contract.
type Queue struct {
	pending []Task
	busy    bool
	stopped bool
	closed  bool
}

// New returns a stopped, empty queue.
func New() *Queue {
	return &Queue{stopped: true}
}

// Enqueue appends t to the pending tasks. If the queue is running and
// idle, t starts immediately. Enqueueing while stopped or while another
// task is in flight is fine; t runs when its turn comes.
func (q *Queue) Enqueue(t Task) {
	if t == nil || q.closed {
		return
	}
	q.pending = append(q.pending, t)
	q.maybeStartNext()
}

// Start clears the stopped flag and starts the next pending task, if any.
func (q *Queue) Start() {
	q.stopped = false
	q.maybeStartNext()
}

// Stop prevents further tasks from starting. An in-flight task is not
// interrupted; it simply has no successor until Start is called again.
func (q *Queue) Stop() {
	q.stopped = true
}

// Flush discards every pending task. An in-flight task is unaffected and
// its completion still advances the (now possibly empty) queue.
func (q *Queue) Flush() {
	q.pending = nil
}

// Close flushes the queue and detaches it: an in-flight task's completion
// becomes a no-op instead of advancing a dead queue.
func (q *Queue) Close() {
	q.closed = true
	q.stopped = true
	q.pending = nil
	q.busy = false
}

// IsEmpty reports whether no pending tasks remain. An in-flight task does
// not count as pending.
func (q *Queue) IsEmpty() bool {
	return len(q.pending) == 0
}

// IsStopped reports whether Stop was called more recently than Start.
func (q *Queue) IsStopped() bool {
	return q.stopped
}

// IsBusy reports whether a task has started but not yet completed.
func (q *Queue) IsBusy() bool {
	return q.busy
}

func (q *Queue) maybeStartNext() {
	if q.stopped || q.busy || len(q.pending) == 0 {
		return
	}
	task := q.pending[0]
	q.pending = q.pending[1:]
	q.busy = true

	completed := false
	task(func() {
		// Guard against double completion and against completions that
		// arrive after Close.
		if completed || q.closed {
			return
		}
		completed = true
		q.busy = false
		q.maybeStartNext()
	})
}
