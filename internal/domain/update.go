package domain

// Update is a normalized inbound chat event. Only the two shapes the
// bot cares about are represented: a text message and a button callback.
// Everything else is dropped before an Update is ever built.
type Update struct {
	SenderID     int64
	ChatID       int64
	Text         string
	Username     string
	FirstName    string
	IsCallback   bool
	CallbackData string
}
