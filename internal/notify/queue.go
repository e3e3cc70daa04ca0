package notify

import (
	"container/list"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options configures a Queue
type Options struct {
	MaxNotifications int
	Lifetime         time.Duration
	BaseFontSize     int
	FontSizeStep     int
	MinFontSize      int
	AlphaStep        float64
}

// DefaultOptions returns the stock toast settings
func DefaultOptions() Options {
	return Options{
		MaxNotifications: 5,
		Lifetime:         5 * time.Second,
		BaseFontSize:     32,
		FontSizeStep:     4,
		MinFontSize:      16,
		AlphaStep:        0.15,
	}
}

// Reason describes which mutation produced a Change
type Reason int

const (
	ReasonAdded Reason = iota
	ReasonExpired
	ReasonRemoved
	ReasonCleared
)

// String returns the string representation of the reason
func (r Reason) String() string {
	switch r {
	case ReasonAdded:
		return "added"
	case ReasonExpired:
		return "expired"
	case ReasonRemoved:
		return "removed"
	case ReasonCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Change is delivered to observers after every successful mutation
type Change struct {
	Reason  Reason
	Text    string
	Count   int
	Evicted []string
}

// entry pairs an item with its expiry timer
type entry struct {
	item      Item
	remaining time.Duration
}

// Queue is a bounded, insertion-ordered set of notifications.
// Each item expires independently; the oldest item is evicted when the
// queue is over capacity. Queue is not safe for concurrent use: it is
// advanced from a single frame loop.
type Queue struct {
	opts Options

	order *list.List
	index map[string]*list.Element

	now   func() time.Time
	newID func() string

	text      string
	observers []func(Change)
}

// NewQueue creates an empty queue
func NewQueue(opts Options) *Queue {
	if opts.MaxNotifications <= 0 {
		opts.MaxNotifications = DefaultOptions().MaxNotifications
	}
	return &Queue{
		opts:  opts,
		order: list.New(),
		index: make(map[string]*list.Element),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// SetClock overrides the timestamp source
func (q *Queue) SetClock(now func() time.Time) {
	q.now = now
}

// Options returns the queue configuration
func (q *Queue) Options() Options {
	return q.opts
}

// SetLifetime changes the lifetime applied to items enqueued from now on
func (q *Queue) SetLifetime(d time.Duration) {
	q.opts.Lifetime = d
}

// OnChange registers an observer called once per mutation
func (q *Queue) OnChange(fn func(Change)) {
	q.observers = append(q.observers, fn)
}

// Enqueue adds an info notification. Blank messages are ignored.
func (q *Queue) Enqueue(message string) (string, bool) {
	return q.EnqueueLevel(LevelInfo, message)
}

// EnqueueLevel adds a notification with the given level.
// It returns the new item's id, or false if message is blank.
func (q *Queue) EnqueueLevel(level Level, message string) (string, bool) {
	if strings.TrimSpace(message) == "" {
		return "", false
	}

	item := Item{
		ID:        q.newID(),
		Level:     level,
		Message:   message,
		CreatedAt: q.now(),
	}
	q.index[item.ID] = q.order.PushBack(&entry{item: item, remaining: q.opts.Lifetime})

	var evicted []string
	for q.order.Len() > q.opts.MaxNotifications {
		front := q.order.Front()
		e := q.order.Remove(front).(*entry)
		delete(q.index, e.item.ID)
		evicted = append(evicted, e.item.ID)
	}

	q.changed(Change{Reason: ReasonAdded, Evicted: evicted})
	return item.ID, true
}

// Remove drops the notification with id. Removing an absent id is a no-op.
func (q *Queue) Remove(id string) bool {
	if !q.drop(id) {
		return false
	}
	q.changed(Change{Reason: ReasonRemoved})
	return true
}

// Clear drops every notification
func (q *Queue) Clear() {
	if q.order.Len() == 0 {
		return
	}
	q.order.Init()
	q.index = make(map[string]*list.Element)
	q.changed(Change{Reason: ReasonCleared})
}

// Update advances every expiry timer by dt and removes expired items
func (q *Queue) Update(dt time.Duration) {
	var expired []string
	for el := q.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry)
		e.remaining -= dt
		if e.remaining <= 0 {
			expired = append(expired, e.item.ID)
		}
	}

	for _, id := range expired {
		if q.drop(id) {
			q.changed(Change{Reason: ReasonExpired})
		}
	}
}

// Len returns the number of live notifications
func (q *Queue) Len() int {
	return q.order.Len()
}

// Contains reports whether id is still queued
func (q *Queue) Contains(id string) bool {
	_, ok := q.index[id]
	return ok
}

// Items returns the live items oldest first
func (q *Queue) Items() []Item {
	items := make([]Item, 0, q.order.Len())
	for el := q.order.Front(); el != nil; el = el.Next() {
		items = append(items, el.Value.(*entry).item)
	}
	return items
}

// Remaining returns the time left before id expires
func (q *Queue) Remaining(id string) (time.Duration, bool) {
	el, ok := q.index[id]
	if !ok {
		return 0, false
	}
	return el.Value.(*entry).remaining, true
}

// Lines returns the display lines newest first
func (q *Queue) Lines() []DisplayLine {
	return buildLines(q.Items(), q.opts)
}

// BuildDisplayText renders the current snapshot as rich text
func (q *Queue) BuildDisplayText() string {
	return renderLines(q.Lines())
}

// Text returns the display text computed at the last mutation
func (q *Queue) Text() string {
	return q.text
}

func (q *Queue) drop(id string) bool {
	el, ok := q.index[id]
	if !ok {
		return false
	}
	q.order.Remove(el)
	delete(q.index, id)
	return true
}

func (q *Queue) changed(c Change) {
	q.text = q.BuildDisplayText()
	c.Text = q.text
	c.Count = q.order.Len()
	for _, fn := range q.observers {
		fn(c)
	}
}
