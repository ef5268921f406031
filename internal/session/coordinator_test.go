// File path: internal/session/coordinator_test.go
package session

import (
	"context"
	"testing"
	"time"
)

func newTestCoordinator(ttl time.Duration) (*Coordinator, *time.Time) {
	clock := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	c := NewCoordinator(NewMemoryStore(), ttl)
	c.now = func() time.Time { return clock }
	return c, &clock
}

func TestCreateSessionSeedsDefaults(t *testing.T) {
	c, _ := newTestCoordinator(time.Hour)
	rec, err := c.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == "" {
		t.Fatalf("missing session id")
	}
	if !rec.Config.UsesCookies || rec.Config.MinimumAge != 18 {
		t.Fatalf("record not seeded with defaults")
	}

	got, err := c.GetSession(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("round trip id mismatch")
	}
}

func TestGetSessionUnknown(t *testing.T) {
	c, _ := newTestCoordinator(time.Hour)
	if _, err := c.GetSession(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetOrCreateRecovers(t *testing.T) {
	c, _ := newTestCoordinator(time.Hour)
	rec, err := c.GetOrCreate(context.Background(), "gone")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if rec.ID == "" || rec.ID == "gone" {
		t.Fatalf("expected a fresh session, got %q", rec.ID)
	}

	same, err := c.GetOrCreate(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("get or create existing: %v", err)
	}
	if same.ID != rec.ID {
		t.Fatalf("existing session should be returned as-is")
	}
}

func TestPatchConfigMergesAndReports(t *testing.T) {
	c, clock := newTestCoordinator(time.Hour)
	ctx := context.Background()
	rec, _ := c.CreateSession(ctx)

	*clock = clock.Add(time.Minute)
	got, ignored, err := c.PatchConfig(ctx, rec.ID, map[string]interface{}{
		"company_name": "Acme",
		"bogus_key":    true,
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if got.Config.CompanyName != "Acme" {
		t.Fatalf("company name = %q", got.Config.CompanyName)
	}
	if len(ignored) != 1 || ignored[0] != "bogus_key" {
		t.Fatalf("ignored = %v", ignored)
	}
	if !got.UpdatedAt.After(rec.UpdatedAt) {
		t.Fatalf("updated_at not advanced")
	}

	// A second patch keeps earlier fields: last-write-wins per field only.
	got, _, err = c.PatchConfig(ctx, rec.ID, map[string]interface{}{
		"website_url": "https://acme.test",
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if got.Config.CompanyName != "Acme" || got.Config.WebsiteURL != "https://acme.test" {
		t.Fatalf("sequential patches lost a field: %+v", got.Config)
	}
}

func TestResetConfigKeepsID(t *testing.T) {
	c, _ := newTestCoordinator(time.Hour)
	ctx := context.Background()
	rec, _ := c.CreateSession(ctx)
	if _, _, err := c.PatchConfig(ctx, rec.ID, map[string]interface{}{"company_name": "Acme"}); err != nil {
		t.Fatalf("patch: %v", err)
	}

	got, err := c.ResetConfig(ctx, rec.ID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("reset must keep the session id")
	}
	if got.Config.CompanyName != "" {
		t.Fatalf("reset did not restore defaults")
	}
}

func TestExpiryOnAccess(t *testing.T) {
	c, clock := newTestCoordinator(time.Hour)
	ctx := context.Background()
	rec, _ := c.CreateSession(ctx)

	*clock = clock.Add(2 * time.Hour)
	if _, err := c.GetSession(ctx, rec.ID); err != ErrNotFound {
		t.Fatalf("expired session err = %v, want ErrNotFound", err)
	}
	if n, _ := c.Count(ctx); n != 0 {
		t.Fatalf("expired session still stored, count = %d", n)
	}
}

func TestSweepRemovesOnlyStale(t *testing.T) {
	c, clock := newTestCoordinator(time.Hour)
	ctx := context.Background()
	old, _ := c.CreateSession(ctx)

	*clock = clock.Add(45 * time.Minute)
	fresh, _ := c.CreateSession(ctx)

	*clock = clock.Add(30 * time.Minute)
	if _, err := c.GetSession(ctx, fresh.ID); err != nil {
		t.Fatalf("fresh session should survive: %v", err)
	}
	if _, err := c.GetSession(ctx, old.ID); err != ErrNotFound {
		t.Fatalf("stale session err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	rec := Record{ID: "a", UpdatedAt: time.Now()}
	rec.Config.PaymentProcessors = []string{"Stripe"}
	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, _ := store.Get(ctx, "a")
	got.Config.PaymentProcessors[0] = "changed"
	again, _ := store.Get(ctx, "a")
	if again.Config.PaymentProcessors[0] != "Stripe" {
		t.Fatalf("store handed out shared slice state")
	}
	if err := store.Create(ctx, Record{ID: "a"}); err != ErrExists {
		t.Fatalf("duplicate create err = %v, want ErrExists", err)
	}
}
