// Package notify delivers short user-facing messages (toasts). Delivery is fire-and-forget.
package notify

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"storefront.GO/core/cache"
)

// Notifier receives user-facing messages.
type Notifier interface {
	Notify(message string)
}

// Func adapts a function to Notifier.
type Func func(message string)

func (f Func) Notify(message string) { f(message) }

// Discard drops every message.
var Discard Notifier = Func(func(string) {})

const feedTag = "notifications"

// Notification is a toast shown to the visitor until it expires.
type Notification struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed keeps each message visible for ttl, then lets it disappear.
type Feed struct {
	cache *cache.Cache
	ttl   time.Duration
	seq   atomic.Uint64
}

// NewFeed returns a Feed over c. A nil cache gets a private one.
func NewFeed(c *cache.Cache, ttl time.Duration) *Feed {
	if c == nil {
		c = cache.NewCache()
	}
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Feed{cache: c, ttl: ttl}
}

func (f *Feed) Notify(message string) {
	n := Notification{ID: f.seq.Add(1), Message: message, CreatedAt: time.Now()}
	f.cache.Set(feedTag+":"+strconv.FormatUint(n.ID, 10), n, f.ttl, []string{feedTag})
}

// Active returns the messages that have not expired yet, oldest first.
func (f *Feed) Active() []Notification {
	values := f.cache.IterateFilter(func(_ string, v interface{}) bool {
		_, ok := v.(Notification)
		return ok
	})
	out := make([]Notification, 0, len(values))
	for _, v := range values {
		out = append(out, v.(Notification))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Clear dismisses every active message.
func (f *Feed) Clear() {
	f.cache.DeleteByTag(feedTag)
}

// Printer writes each message on its own line, for the CLI.
type Printer struct {
	W io.Writer
}

func (p Printer) Notify(message string) {
	fmt.Fprintf(p.W, "» %s\n", message)
}

// Logger writes messages to the standard logger.
type Logger struct{}

func (Logger) Notify(message string) {
	log.Printf("notify: %s", message)
}

// Multi fans a message out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(message string) {
	for _, n := range m {
		if n != nil {
			n.Notify(message)
		}
	}
}

// Recorder keeps every message in memory.
type Recorder struct {
	mu       sync.Mutex
	Messages []string
}

func (r *Recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, message)
}

// Last returns the most recent message, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}
