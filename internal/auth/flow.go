package auth

import (
	"fmt"
	"sync"
)

type State string

const (
	StateLoggedOut State = "logged_out"
	StateSigningUp State = "signing_up"
	StateLoggedIn  State = "logged_in"
)

// Flow is the explicit authentication state machine. Session data only
// exists in the LoggedIn state; consumers receive it from Current instead of
// reading ambient globals.
type Flow struct {
	mu      sync.RWMutex
	state   State
	session Session
}

func NewFlow() *Flow {
	return &Flow{state: StateLoggedOut}
}

func (f *Flow) Current() (State, Session) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state, f.session
}

// BeginSignup enters the signup sub-flow. Only valid while logged out.
func (f *Flow) BeginSignup() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateLoggedOut {
		return fmt.Errorf("cannot sign up from state %s", f.state)
	}
	f.state = StateSigningUp
	return nil
}

// CancelSignup returns to the logged-out state.
func (f *Flow) CancelSignup() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSigningUp {
		f.state = StateLoggedOut
	}
}

// LogIn installs the session and enters the logged-in state. Valid from
// logged-out (plain login) and signing-up (signup followed by login).
func (f *Flow) LogIn(session Session) error {
	if session.Token == "" {
		return fmt.Errorf("session token is required")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateLoggedIn {
		return fmt.Errorf("already logged in")
	}
	f.state = StateLoggedIn
	f.session = session
	return nil
}

// LogOut discards the session from any state.
func (f *Flow) LogOut() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateLoggedOut
	f.session = Session{}
}
