package handler

import (
	"context"
	"fmt"
	"testing"

	"charterbot/internal/domain"
	"charterbot/internal/testutil"
	"charterbot/internal/yclients"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRegistration_StepSequence(t *testing.T) {
	d, m := newTestDispatcher(3)

	user := testutil.NewRegisteringUser(42, 100, 0)

	// Step 0: prompt for login, nothing stored yet
	m.messenger.On("SendText", int64(100), msgRegistrationLogin).Return(nil).Once()
	out, err := d.runRegistration(context.Background(), user, domain.Update{SenderID: 42, ChatID: 100, Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, outcomeDone, out)
	assert.Equal(t, 1, user.Step)
	assert.Empty(t, user.Login)

	// Step 1: the incoming text becomes the login
	m.messenger.On("SendText", int64(100), msgRegistrationPassword).Return(nil).Once()
	out, err = d.runRegistration(context.Background(), user, domain.Update{SenderID: 42, ChatID: 100, Text: "alice"})
	require.NoError(t, err)
	assert.Equal(t, outcomeDone, out)
	assert.Equal(t, 2, user.Step)
	assert.Equal(t, "alice", user.Login)

	// Step 2: the incoming text becomes the password, gateway accepts
	m.auth.On("Authorize", "alice", "rightpass").Return(true, nil).Once()
	m.messenger.On("SendText", int64(100), msgRegistrationDone).Return(nil).Once()
	out, err = d.runRegistration(context.Background(), user, domain.Update{SenderID: 42, ChatID: 100, Text: "rightpass"})
	require.NoError(t, err)
	assert.Equal(t, outcomeReplay, out)
	assert.Equal(t, domain.ActionNone, user.Action)
	assert.Equal(t, 0, user.Step)

	m.assertExpectations(t)
}

func TestRunRegistration_AuthFailureRestartsAndRepromptsSameTurn(t *testing.T) {
	d, m := newTestDispatcher(3)

	user := testutil.NewRegisteringUser(42, 100, 2)
	user.Login = "alice"

	m.auth.On("Authorize", "alice", "wrongpass").Return(false, nil).Once()
	m.messenger.On("SendText", int64(100), msgRegistrationError).Return(nil).Once()
	m.messenger.On("SendText", int64(100), msgRegistrationLogin).Return(nil).Once()

	out, err := d.runRegistration(context.Background(), user, domain.Update{SenderID: 42, ChatID: 100, Text: "wrongpass"})

	require.NoError(t, err)
	assert.Equal(t, outcomeDone, out)
	assert.Equal(t, domain.ActionRegistration, user.Action)
	// The restarted step 0 was serviced in the same turn
	assert.Equal(t, 1, user.Step)
	assert.Equal(t, 1, user.AuthFailures)
	// Failed credentials remain overwritable on the next attempt
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, "wrongpass", user.Password)

	m.assertExpectations(t)
}

func TestRunRegistration_FailureCapDefersReprompt(t *testing.T) {
	d, m := newTestDispatcher(3)

	user := testutil.NewRegisteringUser(42, 100, 2)
	user.Login = "alice"
	user.AuthFailures = 2

	m.auth.On("Authorize", "alice", "wrongpass").Return(false, nil).Once()
	m.messenger.On("SendText", int64(100), msgRegistrationThrottled).Return(nil).Once()

	out, err := d.runRegistration(context.Background(), user, domain.Update{SenderID: 42, ChatID: 100, Text: "wrongpass"})

	require.NoError(t, err)
	assert.Equal(t, outcomeDone, out)
	assert.Equal(t, domain.ActionRegistration, user.Action)
	// No same-turn re-prompt: the next inbound event restarts the dialog
	assert.Equal(t, 0, user.Step)
	assert.Equal(t, 0, user.AuthFailures)
	m.messenger.AssertNotCalled(t, "SendText", int64(100), msgRegistrationLogin)

	m.assertExpectations(t)
}

func TestRunRegistration_GatewayOutageIsNotAFailedAttempt(t *testing.T) {
	d, m := newTestDispatcher(3)

	user := testutil.NewRegisteringUser(42, 100, 2)
	user.Login = "alice"

	outage := fmt.Errorf("%w: status 502", yclients.ErrUnavailable)
	m.auth.On("Authorize", "alice", "somepass").Return(false, outage).Once()
	m.messenger.On("SendText", int64(100), msgRegistrationUnavailable).Return(nil).Once()

	out, err := d.runRegistration(context.Background(), user, domain.Update{SenderID: 42, ChatID: 100, Text: "somepass"})

	require.NoError(t, err)
	assert.Equal(t, outcomeDone, out)
	assert.Equal(t, domain.ActionRegistration, user.Action)
	assert.Equal(t, 0, user.Step)
	assert.Equal(t, 0, user.AuthFailures)

	m.assertExpectations(t)
}

func TestRunRegistration_UnexpectedStepRecovers(t *testing.T) {
	d, m := newTestDispatcher(3)

	user := testutil.NewRegisteringUser(42, 100, 7)

	m.messenger.On("SendText", int64(100), msgRegistrationError).Return(nil).Once()
	m.messenger.On("SendText", int64(100), msgRegistrationLogin).Return(nil).Once()

	out, err := d.runRegistration(context.Background(), user, domain.Update{SenderID: 42, ChatID: 100, Text: "whatever"})

	require.NoError(t, err)
	assert.Equal(t, outcomeDone, out)
	assert.Equal(t, domain.ActionRegistration, user.Action)
	assert.Equal(t, 1, user.Step)

	m.assertExpectations(t)
}

func TestRunRegistration_CallbackDuringRegistration(t *testing.T) {
	d, m := newTestDispatcher(3)

	// A button press mid-dialog carries no message text; the empty
	// credential goes through the normal failure path instead of crashing
	user := testutil.NewRegisteringUser(42, 100, 2)
	user.Login = "alice"

	m.auth.On("Authorize", "alice", "").Return(false, nil).Once()
	m.messenger.On("SendText", int64(100), msgRegistrationError).Return(nil).Once()
	m.messenger.On("SendText", int64(100), msgRegistrationLogin).Return(nil).Once()

	out, err := d.runRegistration(context.Background(), user, domain.Update{
		SenderID: 42, ChatID: 100, IsCallback: true, CallbackData: "captain_trip",
	})

	require.NoError(t, err)
	assert.Equal(t, outcomeDone, out)
	assert.Equal(t, domain.ActionRegistration, user.Action)

	m.assertExpectations(t)
}
