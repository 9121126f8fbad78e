package driver

// EventKind says what happened to a file during MinifyPaths.
type EventKind uint8

const (
	// EventQueued is sent once with the total number of files.
	EventQueued EventKind = iota
	EventStarted
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventQueued:
		return "queued"
	case EventStarted:
		return "started"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is a progress notification. Result is set for EventFinished only.
type Event struct {
	Kind   EventKind
	Path   string
	Index  int
	Total  int
	Result *FileResult
}

// ProgressSink receives progress events. OnEvent is called from worker
// goroutines and must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ProgressFunc adapts a function to ProgressSink.
type ProgressFunc func(Event)

func (f ProgressFunc) OnEvent(ev Event) { f(ev) }

// ChannelSink forwards events to a channel. Sends block, so the reader must
// drain the channel until MinifyPaths returns.
type ChannelSink chan<- Event

func (c ChannelSink) OnEvent(ev Event) { c <- ev }
