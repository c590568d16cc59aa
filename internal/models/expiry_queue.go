package models

import (
	"container/heap"
	"sync"
	"time"
)

// Expiry marks the instant a toast leaves the store.
type Expiry struct {
	At      time.Time
	ToastID int64
}

// ExpiryQueue is a priority queue of toast expiries, ordered soonest first.
type ExpiryQueue struct {
	entries []*Expiry
	mutex   sync.Mutex
}

// expiryHeap implements heap.Interface and holds Expiries
type expiryHeap []*Expiry

func (h expiryHeap) Len() int           { return len(h) }
func (h expiryHeap) Less(i, j int) bool { return h[i].At.Before(h[j].At) }
func (h expiryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *expiryHeap) Push(x interface{}) {
	*h = append(*h, x.(*Expiry))
}

func (h *expiryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// NewExpiryQueue creates a new ExpiryQueue
func NewExpiryQueue() *ExpiryQueue {
	return &ExpiryQueue{entries: make([]*Expiry, 0)}
}

// Enqueue adds an expiry to the queue
func (eq *ExpiryQueue) Enqueue(e *Expiry) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	heap.Push((*expiryHeap)(&eq.entries), e)
}

// Peek returns the earliest expiry without removing it
func (eq *ExpiryQueue) Peek() *Expiry {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.entries) == 0 {
		return nil
	}
	return eq.entries[0]
}

// PopDue removes and returns every expiry at or before now.
func (eq *ExpiryQueue) PopDue(now time.Time) []*Expiry {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	due := make([]*Expiry, 0)
	for len(eq.entries) > 0 && !eq.entries[0].At.After(now) {
		due = append(due, heap.Pop((*expiryHeap)(&eq.entries)).(*Expiry))
	}
	return due
}

// Len returns the number of pending expiries
func (eq *ExpiryQueue) Len() int {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.entries)
}
