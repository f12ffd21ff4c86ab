package sub

type Subscription[T any] struct {
	id      int
	deleteC chan<- int
	StreamC <-chan T
	ErrorC  <-chan error
}

func (s Subscription[T]) Unsubscribe() {
	s.deleteC <- s.id
}

type subscriber[T any] struct {
	streamC chan<- T
	errorC  chan<- error
}

type ResponseChannel[T any] struct {
	RespC chan<- Subscription[T]
}

// SubscriptionRequest asks the loop that owns a SubHome for a new
// subscription and blocks until that loop answers via Receive.
func SubscriptionRequest[T any](reqC chan<- ResponseChannel[T]) Subscription[T] {
	respC := make(chan Subscription[T], 1)
	reqC <- ResponseChannel[T]{RespC: respC}
	return <-respC
}

// SubHome tracks subscribers. Only the goroutine that owns the home may
// call Broadcast, Receive, Delete or Close.
type SubHome[T any] struct {
	id      int
	subs    map[int]*subscriber[T]
	DeleteC chan int
	ReqC    chan ResponseChannel[T]
}

func CreateSubHome[T any]() *SubHome[T] {
	return &SubHome[T]{
		id:      0,
		subs:    make(map[int]*subscriber[T]),
		DeleteC: make(chan int, 10),
		ReqC:    make(chan ResponseChannel[T], 10),
	}
}

func (sh *SubHome[T]) SubscriberCount() int {
	return len(sh.subs)
}

func (sh *SubHome[T]) Broadcast(value T) {
	for _, v := range sh.subs {
		v.streamC <- value
	}
}

func (sh *SubHome[T]) Delete(id int) {
	p, present := sh.subs[id]
	if present {
		p.errorC <- nil
		delete(sh.subs, id)
	}
}

// Close ends all subscriptions with a nil error.
func (sh *SubHome[T]) Close() {
	for _, v := range sh.subs {
		v.errorC <- nil
	}
	sh.subs = make(map[int]*subscriber[T])
}

func (sh *SubHome[T]) Receive(resp ResponseChannel[T]) {
	id := sh.id
	sh.id++
	streamC := make(chan T, 10)
	errorC := make(chan error, 1)
	sh.subs[id] = &subscriber[T]{streamC: streamC, errorC: errorC}
	resp.RespC <- Subscription[T]{id: id, StreamC: streamC, ErrorC: errorC, deleteC: sh.DeleteC}
}
