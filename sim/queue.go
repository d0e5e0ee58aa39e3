// Implements the ReadyQueue, which holds processes that have arrived and
// are waiting for their next turn on the CPU.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of processes waiting for CPU time. Round
// robin rotates through it: the head runs for one quantum, newly
// arrived processes are admitted, and a preempted process re-enters at
// the tail.
type ReadyQueue struct {
	queue []*Process // FIFO queue of processes
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	head := rq.queue[0]
	rq.queue = rq.queue[1:]
	return head
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(fmt.Sprintf("P%d", p.PID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
