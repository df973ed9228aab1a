package serialqueue

import (
	"testing"
)

func TestNewIsStoppedAndEmpty(t *testing.T) {
	q := New()
	if !q.IsStopped() {
		t.Error("new queue should be stopped")
	}
	if !q.IsEmpty() {
		t.Error("new queue should be empty")
	}
	if q.IsBusy() {
		t.Error("new queue should not be busy")
	}
}

func TestEnqueueWhileStoppedDoesNotRun(t *testing.T) {
	q := New()
	ran := false
	q.Enqueue(func(complete func()) {
		ran = true
		complete()
	})
	q.Enqueue(func(complete func()) {
		ran = true
		complete()
	})

	if q.IsEmpty() {
		t.Error("queue should not be empty after enqueue")
	}
	if ran {
		t.Error("no task should run while the queue is stopped")
	}
}

func TestStartRunsTasksInFIFOOrder(t *testing.T) {
	q := New()
	var order []string
	completions := make(map[string]func())

	for _, name := range []string{"a", "b", "c"} {
		name := name
		q.Enqueue(func(complete func()) {
			order = append(order, name)
			completions[name] = complete
		})
	}

	q.Start()
	if got := len(order); got != 1 {
		t.Fatalf("after Start, %d tasks started, want 1", got)
	}
	if order[0] != "a" {
		t.Fatalf("first task = %q, want %q", order[0], "a")
	}

	// b only starts once a completes; c once b completes.
	completions["a"]()
	completions["b"]()
	completions["c"]()

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("ran %d tasks, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestOneInFlightAtATime(t *testing.T) {
	q := New()
	inFlight := 0
	maxInFlight := 0
	var completions []func()

	for i := 0; i < 5; i++ {
		q.Enqueue(func(complete func()) {
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			completions = append(completions, func() {
				inFlight--
				complete()
			})
		})
	}

	q.Start()
	for len(completions) > 0 {
		c := completions[0]
		completions = completions[1:]
		c()
	}

	if maxInFlight != 1 {
		t.Errorf("max in-flight = %d, want 1", maxInFlight)
	}
}

func TestSynchronousCompletionsChain(t *testing.T) {
	q := New()
	ran := 0
	for i := 0; i < 100; i++ {
		q.Enqueue(func(complete func()) {
			ran++
			complete()
		})
	}

	q.Start()
	if ran != 100 {
		t.Errorf("ran %d tasks, want 100", ran)
	}
	if !q.IsEmpty() {
		t.Error("queue should be empty after all tasks complete")
	}
	if q.IsBusy() {
		t.Error("queue should be idle after all tasks complete")
	}
}

func TestEnqueueWhileRunningAndIdleStartsImmediately(t *testing.T) {
	q := New()
	q.Start()

	ran := false
	q.Enqueue(func(complete func()) {
		ran = true
		complete()
	})
	if !ran {
		t.Error("task enqueued on a running, idle queue should start immediately")
	}
}

func TestEnqueueDuringExecutionRunsAfterCurrent(t *testing.T) {
	q := New()
	q.Start()

	var order []string
	var completeA func()
	q.Enqueue(func(complete func()) {
		order = append(order, "a")
		completeA = complete
	})

	// a is in flight; b must wait for it.
	q.Enqueue(func(complete func()) {
		order = append(order, "b")
		complete()
	})
	if len(order) != 1 {
		t.Fatalf("b started while a was in flight; order = %v", order)
	}

	completeA()
	if len(order) != 2 || order[1] != "b" {
		t.Fatalf("b did not run after a completed; order = %v", order)
	}
}

func TestStopPreventsNextTask(t *testing.T) {
	q := New()
	q.Start()

	var completeA func()
	aRan, bRan := false, false
	q.Enqueue(func(complete func()) {
		aRan = true
		completeA = complete
	})
	q.Enqueue(func(complete func()) {
		bRan = true
		complete()
	})

	q.Stop()
	completeA()

	if !aRan {
		t.Fatal("a should have run")
	}
	if bRan {
		t.Error("b must not start while the queue is stopped")
	}
	if q.IsEmpty() {
		t.Error("b should still be pending")
	}

	q.Start()
	if !bRan {
		t.Error("b should run once the queue is restarted")
	}
}

func TestFlushDiscardsPendingOnly(t *testing.T) {
	q := New()
	q.Start()

	var completeA func()
	bRan := false
	q.Enqueue(func(complete func()) {
		completeA = complete
	})
	q.Enqueue(func(complete func()) {
		bRan = true
		complete()
	})

	q.Flush()
	if !q.IsEmpty() {
		t.Error("queue should be empty after flush")
	}
	if !q.IsBusy() {
		t.Error("flush must not affect the in-flight task")
	}

	completeA()
	if bRan {
		t.Error("flushed task must never run")
	}
	if q.IsBusy() {
		t.Error("queue should be idle after the in-flight task completes")
	}
}

func TestFlushOnStoppedQueue(t *testing.T) {
	q := New()
	q.Enqueue(func(complete func()) { complete() })
	q.Enqueue(func(complete func()) { complete() })

	q.Flush()
	if !q.IsEmpty() {
		t.Error("queue should be empty after flush")
	}

	ran := false
	q.Start()
	q.Enqueue(func(complete func()) {
		ran = true
		complete()
	})
	if !ran {
		t.Error("queue should still work after a flush")
	}
}

func TestDoubleCompletionIsNoOp(t *testing.T) {
	q := New()
	q.Start()

	var completeA func()
	bStarts := 0
	q.Enqueue(func(complete func()) {
		completeA = complete
	})
	q.Enqueue(func(complete func()) {
		bStarts++
		// b never completes, so a double completion of a would be the
		// only way for anything else to start.
	})
	q.Enqueue(func(complete func()) {
		t.Error("c must not start; b never completed")
		complete()
	})

	completeA()
	completeA()
	completeA()

	if bStarts != 1 {
		t.Errorf("b started %d times, want 1", bStarts)
	}
}

func TestCompletionAfterCloseIsNoOp(t *testing.T) {
	q := New()
	q.Start()

	var completeA func()
	q.Enqueue(func(complete func()) {
		completeA = complete
	})
	q.Enqueue(func(complete func()) {
		t.Error("no task may start after Close")
		complete()
	})

	q.Close()
	completeA() // must not panic or start anything

	if !q.IsEmpty() {
		t.Error("closed queue should be empty")
	}
	if q.IsBusy() {
		t.Error("closed queue should not report busy")
	}
}

func TestEnqueueAfterCloseIsNoOp(t *testing.T) {
	q := New()
	q.Close()
	q.Enqueue(func(complete func()) {
		t.Error("task must not run on a closed queue")
		complete()
	})
	q.Start()
	if !q.IsEmpty() {
		t.Error("closed queue should stay empty")
	}
}

func TestEnqueueNilIsNoOp(t *testing.T) {
	q := New()
	q.Enqueue(nil)
	if !q.IsEmpty() {
		t.Error("enqueueing nil should leave the queue empty")
	}
}

func TestStopDuringFlightThenRestart(t *testing.T) {
	// Stop while a task is in flight, then restart: start, enqueue a
	// (in flight), stop, complete a, verify idle, restart and drain.
	q := New()
	q.Start()

	var completeA func()
	q.Enqueue(func(complete func()) {
		completeA = complete
	})
	q.Stop()

	bRan := false
	q.Enqueue(func(complete func()) {
		bRan = true
		complete()
	})

	completeA()
	if bRan {
		t.Fatal("b must not run while stopped")
	}
	if q.IsBusy() {
		t.Fatal("queue should be idle after a completed")
	}
	if q.IsEmpty() {
		t.Fatal("b should still be pending")
	}

	q.Start()
	if !bRan {
		t.Error("b should run after restart")
	}
	if !q.IsEmpty() {
		t.Error("queue should be empty after draining")
	}
}
