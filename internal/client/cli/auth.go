package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aigymlabs/fitcoach/internal/client/client"
	"github.com/aigymlabs/fitcoach/internal/client/models"
	"github.com/aigymlabs/fitcoach/internal/client/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session is established, a snapshot is persisted to the
// identity cache, and navigation moves to the dashboard (which triggers the
// full data refresh). Authentication and connectivity failures surface as a
// single message; the error is returned unchanged for callers that care.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnavailable):
			a.messages.Notify("Server unavailable. Please try again.")
		case errors.Is(err, client.ErrUnauthorized), errors.Is(err, client.ErrValidation):
			a.messages.Notify("Login failed: invalid username or password.")
		default:
			a.messages.Notify("Login failed.")
		}
		return err
	}

	if err := a.sessions.SetFromLogin(ctx, user); err != nil {
		a.log.Warn(ctx, "persisting identity snapshot", "error", err)
	}
	a.messages.Success(fmt.Sprintf("Welcome back, %s!", user.Username))
	a.router.Navigate(ctx, router.KeyDashboard)
	return nil
}

// Register collects account and profile fields and creates a new account.
// Input is validated before any network call; a rejected form never reaches
// the server.
func (a *App) Register(ctx context.Context) error {
	req, err := a.collectRegistration()
	if err != nil {
		return err
	}
	if err := validateRegistration(req); err != nil {
		a.messages.Notify(err.Error())
		return err
	}

	if err := a.api.Register(ctx, req); err != nil {
		switch {
		case errors.Is(err, client.ErrValidation):
			a.messages.Notify("Registration rejected: check the entered values.")
		case errors.Is(err, client.ErrUnavailable):
			a.messages.Notify("Server unavailable. Please try again.")
		default:
			a.messages.Notify("Registration failed.")
		}
		return err
	}

	a.messages.Success("Account created. You can log in now.")
	a.router.Navigate(ctx, router.KeyLogin)
	return nil
}

func (a *App) collectRegistration() (models.RegisterRequest, error) {
	var req models.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Choose a username", os.Stdout); err != nil {
		return req, err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return req, err
	}
	req.Password = string(password)

	if req.Gender, err = getSimpleText(a.reader, "Gender (male/female/other)", os.Stdout); err != nil {
		return req, err
	}
	if req.Age, err = GetInt(a.reader, "Age", 0, os.Stdout); err != nil {
		return req, err
	}
	if req.Height, err = GetFloat(a.reader, "Height (cm)", 0, os.Stdout); err != nil {
		return req, err
	}
	if req.Weight, err = GetFloat(a.reader, "Weight (kg)", 0, os.Stdout); err != nil {
		return req, err
	}
	if req.DietPreference, err = getSimpleText(a.reader, "Diet preference (vegetarian/non-vegetarian/vegan)", os.Stdout); err != nil {
		return req, err
	}
	if req.PreferredCuisines, err = getSimpleText(a.reader, "Preferred cuisines (comma separated)", os.Stdout); err != nil {
		return req, err
	}
	if req.ActivityLevel, err = getSimpleText(a.reader, "Activity level (sedentary/light/moderate/active/very_active)", os.Stdout); err != nil {
		return req, err
	}
	if req.Goals, err = getSimpleText(a.reader, "Goals (weight_loss/muscle_gain/maintenance)", os.Stdout); err != nil {
		return req, err
	}
	return req, nil
}

// validateRegistration applies the same bounds the server enforces, so bad
// input is rejected before dispatch.
func validateRegistration(req models.RegisterRequest) error {
	switch {
	case req.Username == "":
		return errors.New("username is required")
	case len(req.Password) < 6:
		return errors.New("password must be at least 6 characters")
	case req.Age < 12 || req.Age > 120:
		return errors.New("age must be between 12 and 120")
	case req.Height < 50 || req.Height > 300:
		return errors.New("height must be between 50 and 300 cm")
	case req.Weight < 20 || req.Weight > 500:
		return errors.New("weight must be between 20 and 500 kg")
	}
	return nil
}

// Logout ends the session: best-effort server logout, then local teardown.
// Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	if a.sessions.LoggedIn() {
		if err := a.api.Logout(ctx); err != nil {
			a.log.Warn(ctx, "server logout", "error", err)
		}
	}
	a.orch.Invalidate()
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.views.Reset()
	a.router.Navigate(ctx, router.KeyLogin)
	a.messages.Success("Logged out.")
	return nil
}
