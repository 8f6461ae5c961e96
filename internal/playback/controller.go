package playback

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/avolodin/sortlab/internal/step"
)

const (
	// DefaultDelay is the inter-step delay used until SetDelay is called.
	DefaultDelay = 200 * time.Millisecond
	// MinDelay floors arbitrary delays so a runaway loop cannot spin.
	MinDelay = time.Millisecond
)

// ErrNilResult is returned when a producer returns no result and no error.
var ErrNilResult = errors.New("playback: producer returned nil result")

// Producer materializes the full step list for an input. Algorithm
// sort functions satisfy this signature.
type Producer func(input []int) (*step.Result, error)

// Renderer paints one step. It is called synchronously after the step's
// counters are applied; panics are caught at the call boundary and
// logged, never propagated into the state machine.
type Renderer interface {
	Render(s step.Step)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(s step.Step)

func (f RenderFunc) Render(s step.Step) { f(s) }

// Controller is the playback state machine. It owns the cursor into the
// materialized step list and the timer that drives automatic playback.
//
// Scheduling is cooperative: a single cancellable deferred callback
// advances the cursor by one step, then reschedules itself while the
// state is Playing. Cancellation bumps a generation token, so a
// callback that already fired off the timer can never mutate state
// after a pause or reset.
type Controller struct {
	mu sync.Mutex

	producer Producer
	source   func() []int
	renderer Renderer
	events   *dispatcher

	input   []int
	steps   []step.Step
	cursor  int
	state   State
	metrics Metrics
	result  *step.Result

	delay time.Duration
	timer *time.Timer
	gen   uint64
}

// NewController assembles a controller around a producer, an input
// source (called once now and again on every reset to regenerate the
// display state) and a renderer. renderer may be nil.
func NewController(producer Producer, source func() []int, renderer Renderer) *Controller {
	c := &Controller{
		producer: producer,
		source:   source,
		renderer: renderer,
		events:   newDispatcher(),
		state:    Idle,
		delay:    DefaultDelay,
	}
	if source != nil {
		c.input = source()
	}
	c.renderInitialLocked()
	return c
}

// Subscribe registers a handler for an event and returns a cancel func.
// Multiple independent subscribers per event are supported. The cancel
// func takes the controller lock, so it may race freely with the timer.
func (c *Controller) Subscribe(e Event, h Handler) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	remove := c.events.subscribe(e, h)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		remove()
	}
}

// Start begins (or resumes) automatic playback. Starting from Idle or
// Completed materializes a fresh step list first; a producer error
// aborts before any state transition. Starting while already Playing is
// a no-op; starting from Paused resumes.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Playing:
		return nil
	case Paused:
		c.setStateLocked(Playing)
		c.scheduleLocked()
		return nil
	default:
		if err := c.materializeLocked(); err != nil {
			return err
		}
		c.setStateLocked(Playing)
		c.scheduleLocked()
		return nil
	}
}

// Pause suspends automatic playback, preserving the cursor exactly.
// No-op unless Playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.CanPause() {
		return
	}
	c.cancelTimerLocked()
	c.setStateLocked(Paused)
}

// Resume continues playback from the preserved cursor. No-op unless
// Paused.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.CanResume() {
		return
	}
	c.setStateLocked(Playing)
	c.scheduleLocked()
}

// StepOnce executes exactly one step and leaves the machine Paused,
// even when it was Playing. From Idle it materializes the step list
// first; when Completed it does nothing.
func (c *Controller) StepOnce() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Completed {
		return nil
	}
	if c.state == Idle {
		if err := c.materializeLocked(); err != nil {
			return err
		}
	}
	c.cancelTimerLocked()
	c.executeNextLocked()
	if c.state != Completed {
		c.setStateLocked(Paused)
	}
	return nil
}

// Reset cancels any pending timer, discards the step list and metrics,
// returns to Idle, regenerates the initial array from the source and
// renders it. Safe to call from any state, any number of times.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked(true)
}

func (c *Controller) resetLocked(regenerate bool) {
	c.cancelTimerLocked()
	c.steps = nil
	c.result = nil
	c.cursor = 0
	c.metrics.Reset()
	c.setStateLocked(Idle)
	if regenerate && c.source != nil {
		c.input = c.source()
	}
	c.events.notify(Notification{Event: EventReset})
	c.renderInitialLocked()
}

// SetProducer selects a different algorithm. Any cycle in progress is
// abandoned and the machine returns to Idle with the current input kept.
func (c *Controller) SetProducer(p Producer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.producer = p
	c.resetLocked(false)
}

// SetSource replaces the input source and resets.
func (c *Controller) SetSource(source func() []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = source
	c.resetLocked(true)
}

// SetDelay changes the inter-step delay, floored at MinDelay. When
// playing, the pending callback is cancelled and rescheduled with the
// new delay immediately.
func (c *Controller) SetDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < MinDelay {
		d = MinDelay
	}
	c.delay = d
	if c.state == Playing {
		c.cancelTimerLocked()
		c.scheduleLocked()
	}
}

func (c *Controller) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delay
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// Cursor returns the index of the next step to execute.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// StepCount returns the length of the materialized step list (zero when
// Idle).
func (c *Controller) StepCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.steps)
}

// Input returns a copy of the current initial array.
func (c *Controller) Input() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return step.Snapshot(c.input)
}

// Result returns the materialized result of the current cycle, or nil
// when Idle.
func (c *Controller) Result() *step.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

func (c *Controller) materializeLocked() error {
	res, err := c.producer(c.input)
	if err != nil {
		return fmt.Errorf("playback: generate steps: %w", err)
	}
	if res == nil {
		return ErrNilResult
	}
	c.result = res
	c.steps = res.Steps
	c.cursor = 0
	c.metrics.Reset()
	c.metrics.StartTime = time.Now()
	return nil
}

func (c *Controller) executeNextLocked() {
	if c.cursor >= len(c.steps) {
		c.finalizeLocked()
		return
	}
	s := c.steps[c.cursor]
	c.metrics.apply(s)
	c.renderStep(s)
	c.metrics.StepsExecuted++
	c.events.notify(Notification{Event: EventStepComplete, Step: &s, Index: c.cursor})
	c.cursor++
}

func (c *Controller) finalizeLocked() {
	c.cancelTimerLocked()
	c.metrics.EndTime = time.Now()
	c.setStateLocked(Completed)
	c.events.notify(Notification{Event: EventPlaybackComplete, Metrics: c.metrics})
}

// scheduleLocked arms the single-shot timer for the next step. The
// generation token is captured at arming time; tick discards the
// callback when the token has moved on.
func (c *Controller) scheduleLocked() {
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.delay, func() { c.tick(gen) })
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.state != Playing {
		return
	}
	c.executeNextLocked()
	if c.state == Playing {
		c.scheduleLocked()
	}
}

// cancelTimerLocked is idempotent: it stops any pending callback and
// invalidates one that may already be in flight.
func (c *Controller) cancelTimerLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) setStateLocked(s State) {
	if c.state == s {
		return
	}
	c.state = s
	c.events.notify(Notification{Event: EventStateChanged, State: s})
}

func (c *Controller) renderStep(s step.Step) {
	if c.renderer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("playback: renderer panic on %s step: %v", s.Action, r)
		}
	}()
	c.renderer.Render(s)
}

// renderInitialLocked paints the untouched input as a bare snapshot
// with no marks, so the display is populated before the first cycle and
// after every reset.
func (c *Controller) renderInitialLocked() {
	c.renderStep(step.Step{
		Action: step.ClearMarks,
		Data:   step.StepData{Array: step.Snapshot(c.input), Pivot: -1},
	})
}
