package app

import (
	"github.com/llehouerou/cutline/internal/timeline"
	"github.com/llehouerou/cutline/internal/transport"
)

// Message category interfaces for type-based routing in Update().

// EngineMessage is implemented by messages relayed from the timeline engine's
// subscription.
type EngineMessage interface {
	engineMessage()
}

// TransportMessage is implemented by messages relayed from the playback
// transport's subscription.
type TransportMessage interface {
	transportMessage()
}

// TickMsg advances playback by one frame. Gen is the transport generation
// the tick was scheduled for.
type TickMsg struct {
	Gen int
}

// TimeChangedMsg relays timeline.TimeChanged.
type TimeChangedMsg timeline.TimeChanged

func (TimeChangedMsg) engineMessage() {}

// EndChangedMsg relays timeline.EndChanged.
type EndChangedMsg timeline.EndChanged

func (EndChangedMsg) engineMessage() {}

// LayoutChangedMsg relays timeline.LayoutChanged.
type LayoutChangedMsg timeline.LayoutChanged

func (LayoutChangedMsg) engineMessage() {}

// EngineClosedMsg is sent once the engine subscription is closed.
type EngineClosedMsg struct{}

func (EngineClosedMsg) engineMessage() {}

// TransportStateMsg relays transport.StateChange.
type TransportStateMsg transport.StateChange

func (TransportStateMsg) transportMessage() {}

// TransportWrappedMsg relays transport.Wrapped.
type TransportWrappedMsg transport.Wrapped

func (TransportWrappedMsg) transportMessage() {}

// TransportErrorMsg relays transport.ErrorEvent.
type TransportErrorMsg transport.ErrorEvent

func (TransportErrorMsg) transportMessage() {}

// TransportClosedMsg is sent once the transport subscription is closed.
type TransportClosedMsg struct{}

func (TransportClosedMsg) transportMessage() {}
