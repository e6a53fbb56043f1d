package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/eventify/eventify-client/internal/auth"
	"github.com/eventify/eventify-client/internal/config"
	"github.com/eventify/eventify-client/internal/derive"
	"github.com/eventify/eventify-client/internal/domain"
	"github.com/eventify/eventify-client/internal/eventifyapi"
	"github.com/eventify/eventify-client/internal/security"
	"github.com/eventify/eventify-client/internal/store"
)

// Application owns one client and one store per resource. Presentation code
// (the CLI here, any other front-end elsewhere) only triggers operations and
// reads snapshots; it never mutates collections directly.
type Application struct {
	cfg      config.Config
	client   *eventifyapi.Client
	flow     *auth.Flow
	sessions auth.Store
	logger   *slog.Logger

	Events        *store.EventStore
	Tasks         *store.TaskCache
	Messages      *store.MessageStore
	Notifications *store.NotificationStore
	Users         *store.UserStore
	Chat          *store.ChatSession
}

func New(cfg config.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := eventifyapi.NewClient(eventifyapi.ClientOptions{
		BaseURL:    cfg.BaseURL,
		APIVersion: cfg.APIVersion,
		Timeout:    cfg.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}
	tasks := store.NewTaskCache(client)
	a := &Application{
		cfg:      cfg,
		client:   client,
		flow:     auth.NewFlow(),
		sessions: auth.Store{Path: cfg.SessionPath},
		logger:   logger,

		Events:        store.NewEventStore(client, tasks),
		Tasks:         tasks,
		Messages:      store.NewMessageStore(client),
		Notifications: store.NewNotificationStore(client),
		Users:         store.NewUserStore(client),
		Chat:          store.NewChatSession(client),
	}
	return a, nil
}

func (a *Application) Client() *eventifyapi.Client { return a.client }

func (a *Application) Flow() *auth.Flow { return a.flow }

// Session returns the current session; ok is false while logged out.
func (a *Application) Session() (auth.Session, bool) {
	state, session := a.flow.Current()
	return session, state == auth.StateLoggedIn
}

// Login authenticates, installs the session and persists it when a session
// key is configured.
func (a *Application) Login(ctx context.Context, email, password string) (auth.Session, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return auth.Session{}, err
	}
	session := auth.Session{
		Token:  resp.Token,
		Role:   resp.Role,
		Name:   resp.Name,
		Email:  resp.Email,
		UserID: resp.UserID,
	}
	if err := a.flow.LogIn(session); err != nil {
		return auth.Session{}, err
	}
	if a.cfg.SessionKey != "" {
		if err := a.persistSession(session); err != nil {
			a.logger.Warn("session not persisted", "error", err)
		}
	}
	return session, nil
}

func (a *Application) Signup(ctx context.Context, req domain.SignupRequest) error {
	if err := a.flow.BeginSignup(); err != nil {
		return err
	}
	err := a.client.Signup(ctx, req)
	// Signup never logs in by itself; return to logged-out either way.
	a.flow.CancelSignup()
	if err != nil {
		return err
	}
	return nil
}

// RestoreSession reloads a persisted session from disk.
func (a *Application) RestoreSession() (auth.Session, error) {
	if a.cfg.SessionKey == "" {
		return auth.Session{}, fmt.Errorf("no session key configured")
	}
	session, err := a.sessions.Load(a.cfg.SessionKey)
	if err != nil {
		return auth.Session{}, err
	}
	if err := a.flow.LogIn(session); err != nil {
		return auth.Session{}, err
	}
	a.client.SetToken(session.Token)
	return session, nil
}

// Logout discards the session, the persisted credential and every cached
// collection.
func (a *Application) Logout() error {
	a.flow.LogOut()
	a.client.ClearToken()
	a.Events.ClearAll()
	a.Tasks.ClearAll()
	a.Messages.ClearAll()
	a.Notifications.ClearAll()
	a.Users.ClearAll()
	a.Chat.Reset()
	if a.cfg.SessionKey != "" {
		return a.sessions.Delete()
	}
	return nil
}

// RefreshUsers loads the bulk user listing; when that endpoint is
// role-restricted it falls back to participant enrichment across the cached
// events and installs the merged set. The returned failures tell the caller
// how incomplete the fallback is.
func (a *Application) RefreshUsers(ctx context.Context) ([]derive.EnrichmentFailure, error) {
	if _, err := a.Users.Load(ctx); err == nil {
		return nil, nil
	} else if !security.IsAuthFailure(err) {
		return nil, err
	}
	result := derive.EnrichParticipants(ctx, a.client, a.Events.Snapshot())
	a.Users.Install(result.Users)
	if result.Partial() {
		a.logger.Warn("participant enrichment incomplete", "failed_events", len(result.Failures))
	}
	return result.Failures, nil
}

// Stats recomputes the admin statistics from the current snapshots.
func (a *Application) Stats() domain.AdminStats {
	return derive.ComputeStats(a.Events.Snapshot(), a.Users.Snapshot())
}

// RunNotificationPoller refreshes the notification store on the configured
// interval until the context is cancelled. Poll failures are logged and the
// loop keeps going; the user can always trigger a manual reload.
func (a *Application) RunNotificationPoller(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, ok := a.Session(); !ok {
				continue
			}
			if _, err := a.Notifications.Load(ctx); err != nil {
				a.logger.Debug("notification poll failed", "error", err)
			}
		}
	}
}

func (a *Application) persistSession(session auth.Session) error {
	if dir := filepath.Dir(a.cfg.SessionPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session dir: %w", err)
		}
	}
	return a.sessions.Save(session, a.cfg.SessionKey)
}
