package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/MemberTrackr/MT-Backend/internal/client/api"
	"github.com/MemberTrackr/MT-Backend/internal/client/config"
	"github.com/MemberTrackr/MT-Backend/internal/client/session"
)

// App holds the client's state: the API client and the current identity,
// or nil when browsing as a guest.
type App struct {
	config  *config.Config
	client  *api.Client
	current *session.Session
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		client: api.New(cfg.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) currentUserID() string {
	if a.current == nil {
		return ""
	}
	return a.current.User.ID
}

// restoreSession loads a previously stored token + user pair and validates
// the token against the server. A stale pair is cleared so the app starts
// as a guest.
func (a *App) restoreSession(ctx context.Context) {
	stored, err := session.Load(a.config.SessionFile)
	if err != nil {
		fmt.Println("Ignoring unreadable session file:", err)
		_ = session.Clear(a.config.SessionFile)
		return
	}
	if stored == nil {
		return
	}

	a.client.SetToken(stored.Token)
	user, err := a.client.Me(ctx)
	if err != nil {
		a.client.SetToken("")
		_ = session.Clear(a.config.SessionFile)
		fmt.Println("Stored session is no longer valid, please log in again")
		return
	}

	stored.User = user
	a.current = stored
	fmt.Printf("Welcome back, %s\n", user.Name)
}

// setIdentity installs a fresh identity, replacing any prior one, and
// persists it for the next run.
func (a *App) setIdentity(result api.AuthResult) {
	a.current = &session.Session{Token: result.Token, User: result.User}
	a.client.SetToken(result.Token)
	if err := session.Save(a.config.SessionFile, a.current); err != nil {
		fmt.Println("Warning: could not persist session:", err)
	}
}

func (a *App) clearIdentity() {
	a.current = nil
	a.client.SetToken("")
	if err := session.Clear(a.config.SessionFile); err != nil {
		fmt.Println("Warning: could not clear session file:", err)
	}
}

func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) status() string {
	if a.current == nil {
		return "guest"
	}
	return a.current.User.Name
}
