package session

// Slots is a persisted key/value store with one slot per logical value.
// It is read once when a session starts and written on every change.
type Slots interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Slot keys
const (
	KeyDistance  = "distance"
	KeyIntervals = "intervals"
	KeyTheme     = "color-theme"
)

// Change identifies which part of a session was updated
type Change int

const (
	ChangeDistance Change = iota
	ChangeIntervals
	ChangeHistory
	ChangeTheme
)

func (c Change) String() string {
	switch c {
	case ChangeDistance:
		return "distance"
	case ChangeIntervals:
		return "intervals"
	case ChangeHistory:
		return "history"
	case ChangeTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// Notifier is told about every change a session makes
type Notifier interface {
	Notify(Change)
}

// Broadcaster fans changes out to subscribers in subscription order.
// Like the session it is meant for a single goroutine.
type Broadcaster struct {
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(Change)
}

// Subscribe registers fn and returns a function that removes it again
func (b *Broadcaster) Subscribe(fn func(Change)) (cancel func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify implements Notifier
func (b *Broadcaster) Notify(c Change) {
	for _, s := range b.subs {
		s.fn(c)
	}
}

// Theme is the persisted colour preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
