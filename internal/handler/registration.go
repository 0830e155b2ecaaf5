package handler

import (
	"context"

	"charterbot/internal/domain"
	"charterbot/internal/service"

	"go.uber.org/zap"
)

// maxRegistrationHops bounds one turn of the registration machine:
// at most an unexpected-step recovery, a failed attempt and the
// step-0 re-prompt. The loop replaces the self-recursion this dialog
// is usually written with.
const maxRegistrationHops = 4

// runRegistration services one update of the registration dialog.
// The user's cursor decides which step consumes the update; a failed
// credential check restarts the dialog and re-prompts within the same
// turn, a successful one deactivates it and asks for a replay.
func (d *Dispatcher) runRegistration(ctx context.Context, user *domain.User, upd domain.Update) (outcome, error) {
	for hop := 0; hop < maxRegistrationHops; hop++ {
		switch step := user.NextStep(); step {
		case domain.StepAskLogin:
			return outcomeDone, d.messenger.SendText(user.ChatID, msgRegistrationLogin)

		case domain.StepAskPassword:
			user.Login = upd.Text
			return outcomeDone, d.messenger.SendText(user.ChatID, msgRegistrationPassword)

		case domain.StepAuthorize:
			user.Password = upd.Text
			ok, err := d.auth.Authorize(ctx, user.Login, user.Password)
			if err != nil {
				if service.IsUnavailable(err) {
					d.logger.Error("Auth gateway unavailable",
						zap.Int64("user_id", user.ID),
						zap.Error(err),
					)
					// Not the user's fault: no failure counted, re-prompt
					// waits for their next message
					user.RestartAction()
					return outcomeDone, d.messenger.SendText(user.ChatID, msgRegistrationUnavailable)
				}
				return outcomeDone, err
			}
			if !ok {
				user.AuthFailures++
				d.logger.Info("Registration attempt rejected",
					zap.Int64("user_id", user.ID),
					zap.Int("failures", user.AuthFailures),
				)
				if user.AuthFailures >= d.maxAttempts {
					user.AuthFailures = 0
					user.RestartAction()
					return outcomeDone, d.messenger.SendText(user.ChatID, msgRegistrationThrottled)
				}
				if err := d.messenger.SendText(user.ChatID, msgRegistrationError); err != nil {
					return outcomeDone, err
				}
				user.RestartAction()
				continue
			}

			user.CompleteRegistration()
			d.logger.Info("User registration completed", zap.Int64("user_id", user.ID))
			if err := d.messenger.SendText(user.ChatID, msgRegistrationDone); err != nil {
				return outcomeDone, err
			}
			return outcomeReplay, nil

		default:
			// Unreachable with the three defined steps; recover like a
			// failed attempt instead of crashing
			d.logger.Warn("Unexpected registration step",
				zap.Int64("user_id", user.ID),
				zap.Int("step", step),
			)
			if err := d.messenger.SendText(user.ChatID, msgRegistrationError); err != nil {
				return outcomeDone, err
			}
			user.RestartAction()
		}
	}
	return outcomeDone, nil
}
