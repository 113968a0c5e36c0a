package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mockview/mockview/internal/common"
)

// Signup creates a new account interactively and lands on the dashboard.
func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	skillLevel, err := GetSimpleText(a.reader, "Skill level (Beginner/Intermediate/Advanced, empty for Beginner)", os.Stdout)
	if err != nil {
		return err
	}
	jobRole, err := GetSimpleText(a.reader, "Target job role (empty for Software Engineer)", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.Signup(ctx, email, string(password), name, skillLevel, jobRole)
	if err != nil {
		printlnFn("Signup failed:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", res.User.Name))
	return nil
}

// Login authenticates interactively and lands on the dashboard.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", res.User.Name))
	return nil
}

// Logout revokes the session. The local session is gone afterwards even
// when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		printlnFn("Logout:", err)
	} else {
		printlnFn("Logged out.")
	}
	a.page = PageWelcome
	return nil
}

// Profile prints the server-side profile of the logged-in user.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.client.Profile(ctx)
	if err != nil {
		printlnFn("Failed to load profile:", err)
		return err
	}

	printlnFn("Name:       ", user.Name)
	printlnFn("Email:      ", user.Email)
	printlnFn("Skill level:", user.SkillLevel)
	printlnFn("Job role:   ", user.JobRole)
	return nil
}

// UpdateProfile changes name, skill level or job role. Empty answers keep
// the current values.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	skillLevel, err := GetSimpleText(a.reader, "New skill level (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	jobRole, err := GetSimpleText(a.reader, "New job role (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.client.UpdateProfile(ctx, name, skillLevel, jobRole)
	if err != nil {
		printlnFn("Failed to update profile:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Profile updated: %s, %s, %s", user.Name, user.SkillLevel, user.JobRole))
	return nil
}
