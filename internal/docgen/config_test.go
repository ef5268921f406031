// File path: internal/docgen/config_test.go
package docgen

import (
	"reflect"
	"testing"
)

func TestDefaultsPopulated(t *testing.T) {
	cfg := Defaults()
	if !cfg.CollectsName || !cfg.CollectsEmail {
		t.Fatalf("expected default collection flags enabled")
	}
	if !cfg.UsesCookies {
		t.Fatalf("expected cookies enabled by default")
	}
	if cfg.MinimumAge != 18 {
		t.Fatalf("minimum age = %d, want 18", cfg.MinimumAge)
	}
	if cfg.LicenseType != "subscription" {
		t.Fatalf("license type = %q, want subscription", cfg.LicenseType)
	}
	if cfg.RefundProcessingTime != "5-10 business days" {
		t.Fatalf("refund processing time = %q", cfg.RefundProcessingTime)
	}
}

func TestMergeKnownFields(t *testing.T) {
	cfg := Defaults()
	ignored := cfg.Merge(map[string]interface{}{
		"company_name": "Acme Corp",
		"minimum_age":  float64(21),
		"uses_cookies": false,
	})
	if len(ignored) != 0 {
		t.Fatalf("unexpected ignored keys: %v", ignored)
	}
	if cfg.CompanyName != "Acme Corp" {
		t.Fatalf("company name = %q", cfg.CompanyName)
	}
	if cfg.MinimumAge != 21 {
		t.Fatalf("minimum age = %d", cfg.MinimumAge)
	}
	if cfg.UsesCookies {
		t.Fatalf("uses_cookies should be false after merge")
	}
}

func TestMergeDropsUnknownKeys(t *testing.T) {
	cfg := Defaults()
	before := cfg
	ignored := cfg.Merge(map[string]interface{}{
		"company_name": "Acme",
		"no_such_key":  "x",
		"another_bad":  42,
	})
	if len(ignored) != 2 {
		t.Fatalf("ignored = %v, want 2 entries", ignored)
	}
	if ignored[0] != "another_bad" || ignored[1] != "no_such_key" {
		t.Fatalf("ignored keys not sorted: %v", ignored)
	}
	before.CompanyName = "Acme"
	if !reflect.DeepEqual(cfg, before) {
		t.Fatalf("unknown keys must not alter other fields")
	}
}

func TestMergeBadTypeIgnored(t *testing.T) {
	cfg := Defaults()
	ignored := cfg.Merge(map[string]interface{}{
		"minimum_age": "not a number",
	})
	if len(ignored) != 1 || ignored[0] != "minimum_age" {
		t.Fatalf("ignored = %v", ignored)
	}
	if cfg.MinimumAge != 18 {
		t.Fatalf("bad-typed value must leave field untouched, got %d", cfg.MinimumAge)
	}
}

func TestMergeReplacesListsWholesale(t *testing.T) {
	cfg := Defaults()
	cfg.PaymentProcessors = []string{"Stripe", "PayPal"}
	cfg.Merge(map[string]interface{}{
		"payment_processors": []interface{}{"Square"},
	})
	if len(cfg.PaymentProcessors) != 1 || cfg.PaymentProcessors[0] != "Square" {
		t.Fatalf("list not replaced wholesale: %v", cfg.PaymentProcessors)
	}
}

func TestMergeEmptyPartialNoChange(t *testing.T) {
	cfg := Defaults()
	want := cfg.Clone()
	if ignored := cfg.Merge(map[string]interface{}{}); len(ignored) != 0 {
		t.Fatalf("ignored = %v", ignored)
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("empty merge changed the record")
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Defaults()
	cfg.ThirdPartyCategories = []string{"analytics"}
	clone := cfg.Clone()
	clone.ThirdPartyCategories[0] = "ads"
	if cfg.ThirdPartyCategories[0] != "analytics" {
		t.Fatalf("clone shares slice backing array")
	}
}

func TestKnownField(t *testing.T) {
	if !KnownField("company_name") {
		t.Fatalf("company_name should be known")
	}
	if KnownField("__proto__") {
		t.Fatalf("__proto__ must not be a known field")
	}
	names := FieldNames()
	if len(names) < 100 {
		t.Fatalf("field catalog too small: %d", len(names))
	}
}
