package domain

import "time"

// User represents a bot user.
// Action and Step live on the same row so the action cursor
// can never be persisted half-updated.
type User struct {
	ID           int64 // Telegram identity, stable across chats
	ChatID       int64 // delivery address, may change over time
	Username     string
	FirstName    string
	Login        string
	Password     string
	Action       ActionName
	Step         int
	AuthFailures int
	LastMsgID    int // last message with inline buttons, 0 when none
	CreatedAt    time.Time
}

// NewUser returns a freshly seen user positioned at the
// start of the registration dialog
func NewUser(id, chatID int64, username, firstName string) *User {
	return &User{
		ID:        id,
		ChatID:    chatID,
		Username:  username,
		FirstName: firstName,
		Action:    ActionRegistration,
		Step:      0,
		CreatedAt: time.Now(),
	}
}

// NextStep advances the action cursor and returns the step
// being serviced this turn (the pre-advance value)
func (u *User) NextStep() int {
	step := u.Step
	u.Step++
	return step
}

// RestartAction resets the cursor to the first step of the current action
func (u *User) RestartAction() {
	u.Step = 0
}

// CompleteRegistration deactivates the registration dialog so
// subsequent updates route by access level
func (u *User) CompleteRegistration() {
	u.Action = ActionNone
	u.Step = 0
	u.AuthFailures = 0
}

// InRegistration reports whether the user is mid-registration
func (u *User) InRegistration() bool {
	return u.Action == ActionRegistration
}

// Access returns the access level required by the user's current action
func (u *User) Access() AccessLevel {
	return AccessOf(u.Action)
}
