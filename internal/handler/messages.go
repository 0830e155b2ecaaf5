package handler

// Outbound message texts
const (
	msgRegistrationGreeting    = "Welcome aboard! This is the crew assistant of the charter fleet.\nLet's link your booking-system account first."
	msgRegistrationLogin       = "Please send your booking-system login:"
	msgRegistrationPassword    = "Now send your password:"
	msgRegistrationError       = "Couldn't sign you in with those credentials. Let's try again."
	msgRegistrationThrottled   = "Too many failed attempts. Send any message to start over."
	msgRegistrationUnavailable = "The booking system is temporarily unavailable. Please try again in a few minutes."
	msgRegistrationDone        = "You're all set! Your account is linked."

	msgAdminMenu   = "Fleet administration:"
	msgManagerMenu = "Charter management:"
	msgCaptainMenu = "Captain's deck:"
)
