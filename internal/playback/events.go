package playback

import (
	"log"
	"sort"

	"github.com/avolodin/sortlab/internal/step"
)

// Event names the controller's notification points.
type Event string

const (
	EventStateChanged     Event = "state-changed"
	EventStepComplete     Event = "step-complete"
	EventPlaybackComplete Event = "playback-complete"
	EventReset            Event = "reset"
)

// Notification carries the payload for one event. Only the fields
// relevant to the event are populated: State for state-changed, Step
// and Index for step-complete, Metrics for playback-complete.
type Notification struct {
	Event   Event
	State   State
	Step    *step.Step
	Index   int
	Metrics Metrics
}

// Handler receives notifications. Handlers are invoked synchronously on
// the controller's scheduling path and must not call back into the
// controller; hand the notification to a channel instead.
type Handler func(Notification)

// dispatcher is an observer registry keyed by event name. Notification
// iterates a snapshot of the subscriber set, so handlers may subscribe
// or unsubscribe during delivery without corrupting iteration, and a
// panicking handler never blocks the rest.
type dispatcher struct {
	nextID   int
	handlers map[Event]map[int]Handler
}

func newDispatcher() *dispatcher {
	return &dispatcher{handlers: make(map[Event]map[int]Handler)}
}

func (d *dispatcher) subscribe(e Event, h Handler) (cancel func()) {
	if d.handlers[e] == nil {
		d.handlers[e] = make(map[int]Handler)
	}
	id := d.nextID
	d.nextID++
	d.handlers[e][id] = h
	return func() { delete(d.handlers[e], id) }
}

func (d *dispatcher) notify(n Notification) {
	subs := d.handlers[n.Event]
	if len(subs) == 0 {
		return
	}
	ids := make([]int, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	snapshot := make([]Handler, 0, len(ids))
	for _, id := range ids {
		snapshot = append(snapshot, subs[id])
	}
	for _, h := range snapshot {
		safeNotify(h, n)
	}
}

func safeNotify(h Handler, n Notification) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("playback: %s handler panic: %v", n.Event, r)
		}
	}()
	h(n)
}
