package cli

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/client/api"
	"backoffice/internal/client/session"
)

// test seams, same trick the input helpers use
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for credentials and a role, creates the account and
// starts a session with the returned token.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (admin/employee)", a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, username, password, role)
	if err != nil {
		return err
	}

	a.startSession(resp)
	fmt.Fprintf(a.out, "Registered and logged in as %s (%s)\n", resp.User.Username, resp.User.Role)
	return nil
}

// Login prompts for credentials and persists the session on success.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	a.startSession(resp)
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", resp.User.Username, resp.User.Role)
	return nil
}

func (a *App) startSession(resp *api.AuthResponse) {
	a.sess.Token = resp.Token
	a.sess.User = &session.User{
		Username:  resp.User.Username,
		Role:      resp.User.Role,
		LoginTime: time.Now().Format(time.RFC3339),
	}
	if err := a.saveSession(); err != nil {
		// session still works in-memory for this run
		fmt.Fprintf(a.out, "warning: could not persist session: %v\n", err)
	}
}

// Logout clears the persisted session.
func (a *App) Logout() error {
	a.sess.Token = ""
	a.sess.User = nil
	a.api.SetToken("")
	if err := a.store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI shows the local session and confirms it against the server.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.sess.LoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s (%s), logged in at %s\n",
		a.sess.User.Username, a.sess.User.Role, a.sess.User.LoginTime)

	profile, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "account created %s\n", profile.CreatedAt.Format("2006-01-02"))
	return nil
}
