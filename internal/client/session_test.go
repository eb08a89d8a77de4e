package client

import (
	"context"
	"testing"
)

func TestSessionStateInitial(t *testing.T) {
	state := NewSessionState()

	sess := state.Current()
	if sess.UserType != UserTypeNone || sess.UserID != 0 {
		t.Fatalf("expected {0, none}, got %+v", sess)
	}
	if sess.Authenticated() {
		t.Fatalf("expected anonymous session")
	}
	if state.Generation() != 0 {
		t.Fatalf("expected generation 0, got %d", state.Generation())
	}
}

func TestSessionStateSetNotifiesSynchronously(t *testing.T) {
	state := NewSessionState()

	var gotSess Session
	var gotGen uint64
	calls := 0
	state.OnChange(func(_ context.Context, sess Session, gen uint64) {
		calls++
		gotSess = sess
		gotGen = gen
	})

	state.Set(context.Background(), 7, UserTypeTenant)

	// Sin esperas: la notificación corre dentro de Set.
	if calls != 1 {
		t.Fatalf("expected 1 synchronous notification, got %d", calls)
	}
	if gotSess.UserID != 7 || gotSess.UserType != UserTypeTenant {
		t.Fatalf("expected {7, tenant}, got %+v", gotSess)
	}
	if gotGen != 1 {
		t.Fatalf("expected generation 1, got %d", gotGen)
	}
	if !state.Current().Authenticated() {
		t.Fatalf("expected authenticated session after set")
	}
}

func TestSessionStateSetIgnoresInvalidRole(t *testing.T) {
	state := NewSessionState()
	calls := 0
	state.OnChange(func(_ context.Context, _ Session, _ uint64) {
		calls++
	})

	state.Set(context.Background(), 7, UserTypeNone)
	state.Set(context.Background(), 7, UserType("admin"))

	if calls != 0 {
		t.Fatalf("expected no notifications, got %d", calls)
	}
	if sess := state.Current(); sess.UserType != UserTypeNone || sess.UserID != 0 {
		t.Fatalf("expected session untouched, got %+v", sess)
	}
}

func TestSessionStateGenerationIncrements(t *testing.T) {
	state := NewSessionState()

	state.Set(context.Background(), 1, UserTypeTenant)
	state.Set(context.Background(), 2, UserTypeOwner)

	if gen := state.Generation(); gen != 2 {
		t.Fatalf("expected generation 2, got %d", gen)
	}
	if sess := state.Current(); sess.UserID != 2 || sess.UserType != UserTypeOwner {
		t.Fatalf("expected {2, owner}, got %+v", sess)
	}
}
