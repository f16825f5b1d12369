package handlers

// HandlerBundle aggregates the handlers the route registry wires up.
type HandlerBundle struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Chat    *ChatHandler
}
