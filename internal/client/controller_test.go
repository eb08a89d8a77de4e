package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

type mockGateway struct {
	mu sync.Mutex

	listCalls       int
	tenantDashCalls int
	ownerDashCalls  int

	properties []Property
	listErr    error

	authResults map[string]AuthResult
	authErr     error

	tenantEntries []TenantDashboardEntry
	tenantErr     error
	ownerEntries  []OwnerDashboardEntry
	ownerErr      error

	likeMessage    string
	likeErr        error
	lastLikeProp   int64
	lastLikeTenant int64

	// tenantGate, si está seteado, bloquea FetchTenantDashboard hasta que
	// se cierre; tenantEntered avisa que el fetch arrancó.
	tenantGate    chan struct{}
	tenantEntered chan struct{}
}

func (m *mockGateway) Authenticate(_ context.Context, email, _ string) (AuthResult, error) {
	if m.authErr != nil {
		return AuthResult{}, m.authErr
	}
	return m.authResults[email], nil
}

func (m *mockGateway) Register(_ context.Context, _, _ string, _ UserType) (string, error) {
	return "User created successfully", nil
}

func (m *mockGateway) ListProperties(_ context.Context) ([]Property, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	return m.properties, m.listErr
}

func (m *mockGateway) RecordInterest(_ context.Context, propertyID, tenantUserID int64) (string, error) {
	m.mu.Lock()
	m.lastLikeProp = propertyID
	m.lastLikeTenant = tenantUserID
	m.mu.Unlock()
	return m.likeMessage, m.likeErr
}

func (m *mockGateway) FetchOwnerDashboard(_ context.Context, _ int64) ([]OwnerDashboardEntry, error) {
	m.mu.Lock()
	m.ownerDashCalls++
	m.mu.Unlock()
	return m.ownerEntries, m.ownerErr
}

func (m *mockGateway) FetchTenantDashboard(_ context.Context, _ int64) ([]TenantDashboardEntry, error) {
	m.mu.Lock()
	m.tenantDashCalls++
	entered := m.tenantEntered
	gate := m.tenantGate
	m.tenantEntered = nil
	m.mu.Unlock()

	if entered != nil {
		close(entered)
	}
	if gate != nil {
		<-gate
	}
	return m.tenantEntries, m.tenantErr
}

func (m *mockGateway) counts() (list, tenant, owner int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls, m.tenantDashCalls, m.ownerDashCalls
}

func sampleProperties() []Property {
	return []Property{
		{PropertyID: 1, Title: "Flat", City: "Pune", Price: json.Number("5000000")},
	}
}

func TestControllerStartAnonymousRendersFeedOnly(t *testing.T) {
	gw := &mockGateway{properties: sampleProperties()}
	c := NewController(nil, gw)

	c.Start(context.Background())

	list, tenant, owner := gw.counts()
	if list != 1 || tenant != 0 || owner != 0 {
		t.Fatalf("expected feed fetch only, got list=%d tenant=%d owner=%d", list, tenant, owner)
	}
	view := c.View()
	if !view.Feed.Loaded || len(view.Feed.Cards) != 1 {
		t.Fatalf("expected loaded feed with 1 card, got %+v", view.Feed)
	}
	if view.Feed.Cards[0].CanLike {
		t.Fatalf("anonymous feed must not expose like affordance")
	}
	if view.Dashboard.Kind != UserTypeNone {
		t.Fatalf("expected empty dashboard region, got %s", view.Dashboard.Kind)
	}
}

func TestControllerTenantLoginFetchesDashboardAndFeed(t *testing.T) {
	gw := &mockGateway{
		properties: sampleProperties(),
		authResults: map[string]AuthResult{
			"tenant1@example.com": {Message: "Login successful", UserID: 2, UserType: UserTypeTenant},
		},
		tenantEntries: []TenantDashboardEntry{
			{Title: "Flat", TotalLikes: 1, InterestedTenants: []InterestedTenant{{Name: "Rahul Deshmukh"}}},
		},
	}
	c := NewController(nil, gw)

	msg, err := c.Login(context.Background(), "tenant1@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Login successful" {
		t.Fatalf("unexpected message: %q", msg)
	}

	if sess := c.Session(); sess.UserID != 2 || sess.UserType != UserTypeTenant {
		t.Fatalf("expected session {2, tenant}, got %+v", sess)
	}

	list, tenant, _ := gw.counts()
	if list != 1 || tenant != 1 {
		t.Fatalf("expected one feed and one dashboard fetch, got list=%d tenant=%d", list, tenant)
	}

	view := c.View()
	if view.Dashboard.Kind != UserTypeTenant || len(view.Dashboard.TenantCards) != 1 {
		t.Fatalf("expected tenant dashboard rendered, got %+v", view.Dashboard)
	}
	if !view.Feed.Cards[0].CanLike {
		t.Fatalf("tenant feed must expose like affordance")
	}
}

func TestControllerOwnerLoginNeverFetchesFeed(t *testing.T) {
	gw := &mockGateway{
		properties: sampleProperties(),
		authResults: map[string]AuthResult{
			"owner1@example.com": {Message: "Login successful", UserID: 1, UserType: UserTypeOwner},
		},
		ownerEntries: []OwnerDashboardEntry{
			{PropertyTitle: "2BHK Apartment in Pune", RentalYieldPercent: json.Number("5.6")},
		},
	}
	c := NewController(nil, gw)

	if _, err := c.Login(context.Background(), "owner1@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _, owner := gw.counts()
	if list != 0 {
		t.Fatalf("owner state must not fetch the feed, got %d feed fetches", list)
	}
	if owner != 1 {
		t.Fatalf("expected one owner dashboard fetch, got %d", owner)
	}

	view := c.View()
	if view.Feed.Loaded || len(view.Feed.Cards) != 0 {
		t.Fatalf("expected cleared feed region, got %+v", view.Feed)
	}
	if view.Dashboard.Kind != UserTypeOwner || len(view.Dashboard.OwnerCards) != 1 {
		t.Fatalf("expected owner dashboard rendered, got %+v", view.Dashboard)
	}
}

func TestControllerFailedLoginLeavesSessionUntouched(t *testing.T) {
	gw := &mockGateway{authErr: &AuthError{Message: "Invalid credentials"}}
	c := NewController(nil, gw)

	_, err := c.Login(context.Background(), "a@x.com", "bad")

	var authErr *AuthError
	if !errors.As(err, &authErr) || authErr.Message != "Invalid credentials" {
		t.Fatalf("expected AuthError with server message, got %v", err)
	}
	if sess := c.Session(); sess.UserID != 0 || sess.UserType != UserTypeNone {
		t.Fatalf("expected session {none, none}, got %+v", sess)
	}
	_, tenant, owner := gw.counts()
	if tenant != 0 || owner != 0 {
		t.Fatalf("failed login must not trigger dashboard fetches")
	}
}

func TestControllerEmptyFeedRendersPlaceholder(t *testing.T) {
	gw := &mockGateway{}
	c := NewController(nil, gw)

	c.Start(context.Background())

	view := c.View()
	if !view.Feed.Loaded {
		t.Fatalf("expected loaded feed view")
	}
	if len(view.Feed.Cards) != 0 || view.Feed.Placeholder == "" {
		t.Fatalf("expected single placeholder and zero cards, got %+v", view.Feed)
	}
}

func TestControllerDashboardFetchFailureRendersMessage(t *testing.T) {
	gw := &mockGateway{
		authResults: map[string]AuthResult{
			"tenant1@example.com": {UserID: 2, UserType: UserTypeTenant},
		},
		tenantErr: &DashboardError{Message: "You haven't liked any properties yet."},
	}
	c := NewController(nil, gw)

	if _, err := c.Login(context.Background(), "tenant1@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := c.View()
	if view.Dashboard.Kind != UserTypeTenant {
		t.Fatalf("expected tenant dashboard region, got %s", view.Dashboard.Kind)
	}
	if view.Dashboard.Message != "You haven't liked any properties yet." {
		t.Fatalf("expected server failure message, got %q", view.Dashboard.Message)
	}
}

func TestControllerRecordInterestLeavesSessionUnchanged(t *testing.T) {
	gw := &mockGateway{
		authResults: map[string]AuthResult{
			"tenant1@example.com": {UserID: 2, UserType: UserTypeTenant},
		},
		likeMessage: "Property liked successfully",
	}
	c := NewController(nil, gw)

	if _, err := c.Login(context.Background(), "tenant1@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := c.Session()

	msg, err := c.RecordInterest(context.Background(), 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Property liked successfully" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if gw.lastLikeProp != 101 || gw.lastLikeTenant != 2 {
		t.Fatalf("expected like for property 101 by tenant 2, got %d/%d", gw.lastLikeProp, gw.lastLikeTenant)
	}
	if after := c.Session(); after != before {
		t.Fatalf("expected session unchanged, got %+v", after)
	}
}

func TestControllerDiscardsStaleDashboardResponse(t *testing.T) {
	gate := make(chan struct{})
	entered := make(chan struct{})
	gw := &mockGateway{
		properties: sampleProperties(),
		authResults: map[string]AuthResult{
			"tenant1@example.com": {UserID: 2, UserType: UserTypeTenant},
			"owner1@example.com":  {UserID: 1, UserType: UserTypeOwner},
		},
		tenantEntries: []TenantDashboardEntry{{Title: "Flat", TotalLikes: 1}},
		ownerEntries:  []OwnerDashboardEntry{{PropertyTitle: "2BHK Apartment in Pune"}},
		tenantGate:    gate,
		tenantEntered: entered,
	}
	c := NewController(nil, gw)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.Login(context.Background(), "tenant1@example.com", "secret")
	}()

	// El fetch del dashboard de tenant quedó en vuelo; mientras tanto entra
	// una sesión más nueva.
	<-entered
	if _, err := c.Login(context.Background(), "owner1@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recién ahora resuelve la respuesta vieja: debe descartarse.
	close(gate)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("tenant login did not finish")
	}

	view := c.View()
	if view.Dashboard.Kind != UserTypeOwner {
		t.Fatalf("stale tenant response overwrote newer view: %+v", view.Dashboard)
	}
	if len(view.Dashboard.TenantCards) != 0 {
		t.Fatalf("expected no tenant cards after owner transition, got %+v", view.Dashboard.TenantCards)
	}
}
