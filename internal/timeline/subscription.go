package timeline

const eventBufferSize = 16

// Subscription provides event channels for one subscriber, such as a time
// label or a playback transport.
type Subscription struct {
	TimeChanged   <-chan TimeChanged
	EndChanged    <-chan EndChanged
	LayoutChanged <-chan LayoutChanged
	Done          <-chan struct{}

	timeCh   chan TimeChanged
	endCh    chan EndChanged
	layoutCh chan LayoutChanged
	doneCh   chan struct{}
	closed   bool
}

func newSubscription() *Subscription {
	s := &Subscription{
		timeCh:   make(chan TimeChanged, eventBufferSize),
		endCh:    make(chan EndChanged, eventBufferSize),
		layoutCh: make(chan LayoutChanged, eventBufferSize),
		doneCh:   make(chan struct{}),
	}
	s.TimeChanged = s.timeCh
	s.EndChanged = s.endCh
	s.LayoutChanged = s.layoutCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.doneCh)
}

// Sends never block the event loop; events are dropped when a buffer is full.

func (s *Subscription) sendTime(e TimeChanged) {
	select {
	case s.timeCh <- e:
	default:
	}
}

func (s *Subscription) sendEnd(e EndChanged) {
	select {
	case s.endCh <- e:
	default:
	}
}

func (s *Subscription) sendLayout(e LayoutChanged) {
	select {
	case s.layoutCh <- e:
	default:
	}
}
