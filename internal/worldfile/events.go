package worldfile

import "github.com/udisondev/worldfile/internal/worldmodel"

// EventKind tags the concrete payload carried by an Event.
type EventKind int

const (
	EventStatus EventKind = iota
	EventLoaded
	EventError
)

// Event is one message on a Decoder's status/terminal channel. Exactly
// one terminal event (EventLoaded or EventError) is sent per Load
// call; any number of EventStatus messages may precede it. Status
// events are advisory — a receiver that drops them loses nothing but
// progress feedback.
type Event struct {
	Kind    EventKind
	Status  string
	World   *worldmodel.World
	Err     error
}

func statusEvent(msg string) Event { return Event{Kind: EventStatus, Status: msg} }
func loadedEvent(w *worldmodel.World) Event { return Event{Kind: EventLoaded, World: w} }
func errorEvent(err error) Event { return Event{Kind: EventError, Err: err} }
