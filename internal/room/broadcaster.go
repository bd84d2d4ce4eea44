package room

// Broadcaster fans a room event out to every client watching the room.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data any)
}

// Room events pushed to clients.
const (
	EventState  = "state"
	EventTick   = "tick"
	EventClosed = "closed"
)

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, string, any) {}
