package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aigymlabs/fitcoach/internal/client/client"
	"github.com/aigymlabs/fitcoach/internal/client/models"
)

// showSessionProfile renders the profile already held in the session, used
// when the profile page becomes active.
func (a *App) showSessionProfile() {
	s, ok := a.sessions.Current()
	if !ok || s.Profile == nil {
		fmt.Fprintln(a.out, "No profile loaded yet. Run 'refresh'.")
		return
	}
	a.console.ShowProfile(*s.Profile)
}

// Profile fetches the profile from the server and displays it. The fresh
// copy is merged into the session under the usual rules.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.api.UserProfile(ctx)
	if err != nil {
		return a.reportFetchError(ctx, err, "Could not load your profile.")
	}
	if err := a.sessions.MergeFreshProfile(ctx, p); err != nil {
		return err
	}
	a.console.ShowProfile(*p)
	return nil
}

// EditProfile prompts for updated profile fields, defaulting to current
// values, and submits them. The returned profile (with recalculated health
// metrics) replaces the session copy.
func (a *App) EditProfile(ctx context.Context) error {
	s, ok := a.sessions.Current()
	if !ok {
		a.messages.Notify("Log in first.")
		return errors.New("not logged in")
	}

	cur := models.Profile{}
	if s.Profile != nil {
		cur = *s.Profile
	}

	var upd models.ProfileUpdate
	var err error

	if upd.Age, err = GetInt(a.reader, fmt.Sprintf("Age [%d]", cur.Age), cur.Age, os.Stdout); err != nil {
		return err
	}
	if upd.Gender, err = getSimpleText(a.reader, fmt.Sprintf("Gender [%s]", cur.Gender), os.Stdout); err != nil {
		return err
	}
	if upd.Gender == "" {
		upd.Gender = cur.Gender
	}
	if upd.Height, err = GetFloat(a.reader, fmt.Sprintf("Height cm [%.0f]", cur.HeightCm), cur.HeightCm, os.Stdout); err != nil {
		return err
	}
	if upd.Weight, err = GetFloat(a.reader, fmt.Sprintf("Weight kg [%.1f]", cur.WeightKg), cur.WeightKg, os.Stdout); err != nil {
		return err
	}
	if upd.DietPreference, err = getSimpleText(a.reader, fmt.Sprintf("Diet preference [%s]", cur.DietPreference), os.Stdout); err != nil {
		return err
	}
	if upd.DietPreference == "" {
		upd.DietPreference = cur.DietPreference
	}
	if upd.PreferredCuisines, err = getSimpleText(a.reader, fmt.Sprintf("Preferred cuisines [%s]", cur.PreferredCuisines), os.Stdout); err != nil {
		return err
	}
	if upd.PreferredCuisines == "" {
		upd.PreferredCuisines = cur.PreferredCuisines
	}
	if upd.ActivityLevel, err = getSimpleText(a.reader, fmt.Sprintf("Activity level [%s]", cur.ActivityLevel), os.Stdout); err != nil {
		return err
	}
	if upd.ActivityLevel == "" {
		upd.ActivityLevel = cur.ActivityLevel
	}
	if upd.Goals, err = getSimpleText(a.reader, fmt.Sprintf("Goals [%s]", cur.Goals), os.Stdout); err != nil {
		return err
	}
	if upd.Goals == "" {
		upd.Goals = cur.Goals
	}

	if upd.Age < 12 || upd.Age > 120 {
		a.messages.Notify("age must be between 12 and 120")
		return errors.New("invalid age")
	}

	p, err := a.api.UpdateProfile(ctx, upd)
	if err != nil {
		return a.reportFetchError(ctx, err, "Could not update your profile.")
	}
	if err := a.sessions.MergeFreshProfile(ctx, p); err != nil {
		return err
	}
	a.messages.Success("Profile updated.")
	a.console.ShowProfile(*p)
	return nil
}

// reportFetchError applies the shared error classification for commands
// that talk to the server outside the orchestrator.
func (a *App) reportFetchError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, client.ErrUnauthorized) {
		a.orch.Invalidate()
		if cerr := a.sessions.Clear(ctx); cerr != nil {
			a.log.Warn(ctx, "clear session", "error", cerr)
		}
		a.messages.Notify("Your session has expired. Please log in again.")
		a.views.Reset()
		a.router.Refresh(ctx)
		return err
	}
	a.messages.Notify(msg)
	return err
}
