package platform

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/younwookim/scenekit/internal/domain/event"
)

// eventQueue holds the physical events collected during one ebiten update, in arrival order
type eventQueue struct {
	q *linkedlistqueue.Queue
}

func newEventQueue() *eventQueue {
	return &eventQueue{q: linkedlistqueue.New()}
}

func (e *eventQueue) push(events ...event.Event) {
	for _, ev := range events {
		e.q.Enqueue(ev)
	}
}

func (e *eventQueue) pop() (event.Event, bool) {
	v, ok := e.q.Dequeue()
	if !ok {
		return event.Event{}, false
	}
	return v.(event.Event), true
}

func (e *eventQueue) len() int {
	return e.q.Size()
}
