package logging

// Sink receives the events of a form session. Emitter calls it from
// whichever goroutine drives the form, so implementations must be safe for
// concurrent use and must not keep or modify the event.
type Sink interface {
	Write(event *Event) error
	Close() error
}
