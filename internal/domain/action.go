package domain

// AccessLevel is the privilege required to run an action's handlers
type AccessLevel string

const (
	AccessAdmin   AccessLevel = "admin"
	AccessManager AccessLevel = "manager"
	AccessCaptain AccessLevel = "captain"
)

// ActionName identifies a capability a user can be engaged in
type ActionName string

const (
	// ActionRegistration is the login/password dialog for new users
	ActionRegistration ActionName = "registration"
	// ActionNone means the user has no multi-step dialog in progress
	ActionNone ActionName = "none"
	// ActionManageFleet is the admin fleet management menu
	ActionManageFleet ActionName = "manage_fleet"
	// ActionBookings is the manager booking menu
	ActionBookings ActionName = "bookings"
	// ActionTripLog is the captain trip reporting menu
	ActionTripLog ActionName = "trip_log"
)

// Registration step indices
const (
	StepAskLogin      = 0
	StepAskPassword   = 1
	StepAuthorize     = 2
	RegistrationSteps = 3
)

// Action is an immutable shared definition of a capability:
// the access level it requires and how many dialog steps it has
type Action struct {
	Name   ActionName
	Access AccessLevel
	Steps  int
}

// Actions is the shared read-only action registry.
// Registration's access level is irrelevant: registration pre-empts routing.
var Actions = map[ActionName]Action{
	ActionRegistration: {Name: ActionRegistration, Access: AccessCaptain, Steps: RegistrationSteps},
	ActionNone:         {Name: ActionNone, Access: AccessCaptain, Steps: 0},
	ActionManageFleet:  {Name: ActionManageFleet, Access: AccessAdmin, Steps: 0},
	ActionBookings:     {Name: ActionBookings, Access: AccessManager, Steps: 0},
	ActionTripLog:      {Name: ActionTripLog, Access: AccessCaptain, Steps: 0},
}

// AccessOf returns the access level required by an action.
// Unknown actions fall back to captain, the least privileged role.
func AccessOf(name ActionName) AccessLevel {
	if a, ok := Actions[name]; ok {
		return a.Access
	}
	return AccessCaptain
}
