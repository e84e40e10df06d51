// Package cli implements the interactive dashctl shell: an auth-aware
// command loop over the dashboard REST API.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"backoffice/internal/client/api"
	"backoffice/internal/client/session"
)

// App holds the client state: the API client, the persisted session and
// the interactive reader. The session is the one piece of shared mutable
// state; the loop is single-threaded so no locking is needed.
type App struct {
	api    *api.Client
	store  *session.Store
	sess   *session.Session
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(apiClient *api.Client, store *session.Store) *App {
	return &App{
		api:    apiClient,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run hydrates the session from disk and enters the command loop.
func (a *App) Run(ctx context.Context) error {
	sess, err := a.store.Load()
	if err != nil {
		return err
	}
	a.sess = sess
	a.api.SetToken(sess.Token)

	if sess.LoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s (%s)\n", sess.User.Username, sess.User.Role)
	} else {
		fmt.Fprintln(a.out, "Not logged in. Use 'login' or 'register'.")
	}
	fmt.Fprintln(a.out, "Type 'help' for commands.")

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		if err := a.dispatch(ctx, args); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
}

func (a *App) prompt() string {
	if a.sess.LoggedIn() {
		return a.sess.User.Username + "@dash> "
	}
	return "dash> "
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "help":
		a.printHelp()
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout()
	case "whoami":
		return a.WhoAmI(ctx)
	case "theme":
		return a.Theme(rest)
	case "entries":
		return a.Entries(ctx, rest)
	case "units":
		return a.Units(ctx, rest)
	case "todos":
		return a.Todos(ctx, rest)
	case "schedule":
		return a.Schedule(ctx, rest)
	case "logs":
		return a.Logs(ctx)
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `Commands:
  register                       create an account
  login / logout / whoami        session management
  theme [dark|light]             show or set the saved theme
  entries list [unit=U] [no=N] [from=D] [to=D]
  entries add | edit <id> | del <id> | export <file.csv>
  units [list] | get <name> | add | edit <id> | del <id>
  todos [list] | add <text...> | toggle <id> | del <id>
  schedule [list] | add
  logs                           view the action log
  exit
`)
}

// saveSession persists the in-memory session and keeps the API client's
// token in sync.
func (a *App) saveSession() error {
	a.api.SetToken(a.sess.Token)
	return a.store.Save(a.sess)
}

// Theme shows or sets the persisted display theme.
func (a *App) Theme(args []string) error {
	if len(args) == 0 {
		theme := a.sess.Theme
		if theme == "" {
			theme = "light"
		}
		fmt.Fprintf(a.out, "theme: %s\n", theme)
		return nil
	}
	if args[0] != "dark" && args[0] != "light" {
		return fmt.Errorf("theme must be dark or light")
	}
	a.sess.Theme = args[0]
	return a.saveSession()
}
