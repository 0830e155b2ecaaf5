package domain

// Button is one inline keyboard button: visible label plus callback payload
type Button struct {
	Text string
	Data string
}
