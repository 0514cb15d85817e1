package realtime

// State of a push channel session.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateOpen         State = "open"
	StateReconnecting State = "reconnecting"
	StateGivingUp     State = "giving_up"
)

// Handler receives every inbound frame that parsed as JSON.
type Handler func(payload any)

//go:generate go run go.uber.org/mock/mockgen -source=realtime.go -destination=mocks/mock.go

// Session keeps one push channel open and recovers it after drops. None of its
// methods block on the network.
type Session interface {
	// Connect starts a fresh connection cycle unless one is already open or in
	// progress. It is the only way out of StateGivingUp.
	Connect()

	// Disconnect closes the channel and cancels any pending reconnect.
	Disconnect()

	// Send transmits payload as JSON when the channel is open and reports whether
	// it did.
	Send(payload any) bool

	State() State
	Attempts() int
}
