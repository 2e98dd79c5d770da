package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/config"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/notify"
	"github.com/dmitrijs2005/gophchat/internal/client/services"
	"github.com/dmitrijs2005/gophchat/internal/client/session"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

type signupService interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	InProgress() bool
}

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) error
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
	InProgress() bool
}

type sessionView interface {
	Current() (*models.SessionRecord, bool)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	signup   signupService
	auth     authService
	sessions sessionView
	notifier notify.Notifier
	reader   *bufio.Reader
	out      io.Writer
	closers  []func() error
}

// NewApp opens session storage, restores a persisted session and builds the
// services the REPL drives.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo, closeRepo, err := openStorage(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening session storage", "backend", c.StorageBackend, "error", err)
		return nil, err
	}

	api, err := client.NewDefaultHTTPClient(c.ServerURL, c.RequestTimeout, log.With("component", "http"))
	if err != nil {
		_ = closeRepo()
		return nil, err
	}

	store := session.NewStore()
	if err := store.Restore(ctx, repo, time.Now()); err != nil {
		switch {
		case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
			log.Warn(ctx, "stored session discarded", "reason", err)
		default:
			_ = closeRepo()
			return nil, err
		}
	}

	notifier := notify.NewConsole(os.Stdout)

	return &App{
		config:   c,
		log:      log,
		signup:   services.NewSignupController(api, repo, store, notifier, log),
		auth:     services.NewAuthController(api, repo, store, notifier, log),
		sessions: store,
		notifier: notifier,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closers:  []func() error{closeRepo},
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to gophchat (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases storage connections.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.Current()
	return ok
}

func (a *App) getStatus() string {
	rec, ok := a.sessions.Current()
	if !ok {
		return ""
	}
	name := rec.Username()
	if name == "" {
		name = rec.ID()
	}
	if name == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", name)
}
