package categories

// Notifier fans mapping-change notifications out to every registered
// subscriber, so independently-rendered views can all refresh. Subscribers
// run synchronously, in no particular order.
type Notifier struct {
	nextID int
	subs   map[int]func()
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers fn and returns a cancel function.
func (n *Notifier) Subscribe(fn func()) (cancel func()) {
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	return func() { delete(n.subs, id) }
}

// Notify invokes every subscriber.
func (n *Notifier) Notify() {
	for _, fn := range n.subs {
		fn()
	}
}
