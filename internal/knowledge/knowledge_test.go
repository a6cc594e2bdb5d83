package knowledge

import (
	"reflect"
	"testing"
)

func TestDefaultTablesPopulated(t *testing.T) {
	kb := Default()
	if len(kb.Industries) == 0 || len(kb.Frameworks) == 0 || len(kb.Services) == 0 || len(kb.Templates) == 0 {
		t.Fatalf("Default left a table empty: industries=%d frameworks=%d services=%d templates=%d",
			len(kb.Industries), len(kb.Frameworks), len(kb.Services), len(kb.Templates))
	}
	if _, ok := kb.Industries[GenericIndustryKey]; !ok {
		t.Error("generic industry profile missing from table")
	}
}

func TestIndustryLookup(t *testing.T) {
	kb := Default()

	p := kb.Industry("pharmaceutical")
	if p.Key != "pharmaceutical" {
		t.Errorf("Industry(pharmaceutical).Key = %q", p.Key)
	}
	if p.DataRetentionYears != 10 {
		t.Errorf("pharmaceutical retention = %d, want 10", p.DataRetentionYears)
	}

	// Lookup normalizes case and whitespace.
	if got := kb.Industry("  Pharmaceutical "); got.Key != "pharmaceutical" {
		t.Errorf("normalized lookup returned %q", got.Key)
	}

	// Unknown and empty keys degrade to the generic profile.
	for _, key := range []string{"", "aerospace"} {
		if got := kb.Industry(key); got.Key != GenericIndustryKey {
			t.Errorf("Industry(%q).Key = %q, want %q", key, got.Key, GenericIndustryKey)
		}
	}
}

func TestHasIndustry(t *testing.T) {
	kb := Default()
	if !kb.HasIndustry("healthcare") {
		t.Error("healthcare should be a known industry")
	}
	if kb.HasIndustry("aerospace") {
		t.Error("aerospace should be unknown")
	}
	// The generic key is not a real industry.
	if kb.HasIndustry(GenericIndustryKey) {
		t.Error("generic key should not count as a real industry")
	}
}

func TestFrameworkAndServiceUnknownKeys(t *testing.T) {
	kb := Default()

	f := kb.Framework("basel-iii")
	if f.Key != "basel-iii" || f.DisplayName != "basel-iii" {
		t.Errorf("unknown framework entry = %+v", f)
	}

	s := kb.Service("oracle")
	if s.Key != "oracle" || s.DisplayName != "oracle" {
		t.Errorf("unknown service entry = %+v", s)
	}

	if got := kb.Framework("GDPR"); got.Key != "gdpr" {
		t.Errorf("case-insensitive framework lookup returned %q", got.Key)
	}
}

func TestMatchTemplatesOrdering(t *testing.T) {
	kb := Default()

	// Three tracker keyword hits against one audit keyword hit.
	matches := kb.MatchTemplates("Track each shipment batch with full custody history and an audit entry")
	if len(matches) < 2 {
		t.Fatalf("len(matches) = %d, want at least 2", len(matches))
	}
	if matches[0].Name != "supply-chain-tracker" {
		t.Errorf("best match = %q, want supply-chain-tracker", matches[0].Name)
	}

	if got := kb.MatchTemplates("weather forecast dashboard for sailing"); len(got) != 0 {
		t.Errorf("unmatched text returned %d templates", len(got))
	}
}

func TestMatchTemplatesDeterministic(t *testing.T) {
	kb := Default()
	text := "token transfer with audit log and shipment tracking"

	first := kb.MatchTemplates(text)
	second := kb.MatchTemplates(text)
	if !reflect.DeepEqual(first, second) {
		t.Error("MatchTemplates is not deterministic for identical input")
	}
}

func TestDetectIndustry(t *testing.T) {
	kb := Default()

	tests := []struct {
		text string
		want string
	}{
		{"Track pharmaceutical batches through clinical distribution", "pharmaceutical"},
		{"Patient record integrity for a hospital network", "healthcare"},
		{"Settlement rails for interbank payment flows", "financial-services"},
		{"Warehouse to last-mile shipment provenance", "supply-chain"},
		{"Carbon credit issuance for renewable generation", "energy"},
		{"A recipe sharing site", GenericIndustryKey},
	}
	for _, tt := range tests {
		if got := kb.DetectIndustry(tt.text); got.Key != tt.want {
			t.Errorf("DetectIndustry(%q) = %q, want %q", tt.text, got.Key, tt.want)
		}
	}
}

func TestDetectIndustryDeterministic(t *testing.T) {
	kb := Default()
	// One keyword hit in two different profiles must resolve the same way
	// every call despite map iteration order.
	text := "loyalty program for a regional bank"
	want := kb.DetectIndustry(text).Key
	for i := 0; i < 20; i++ {
		if got := kb.DetectIndustry(text).Key; got != want {
			t.Fatalf("iteration %d: DetectIndustry = %q, earlier = %q", i, got, want)
		}
	}
}

func TestDetectFrameworks(t *testing.T) {
	kb := Default()

	got := kb.DetectFrameworks("HIPAA-covered patient data with GDPR consent handling")
	keys := make([]string, len(got))
	for i, f := range got {
		keys[i] = f.Key
	}
	want := []string{"gdpr", "hipaa"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("DetectFrameworks keys = %v, want %v (stable key order)", keys, want)
	}

	if got := kb.DetectFrameworks("a plain todo list"); len(got) != 0 {
		t.Errorf("unmatched text returned %d frameworks", len(got))
	}
}

func TestDetectServices(t *testing.T) {
	kb := Default()

	got := kb.DetectServices("audit trail of token transfers with history reports")
	want := []string{"consensus", "mirror", "token"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectServices = %v, want %v (stable key order)", got, want)
	}
}

func TestTemplateByName(t *testing.T) {
	kb := Default()

	tmpl, ok := kb.TemplateByName("token-transfer")
	if !ok {
		t.Fatal("token-transfer should exist")
	}
	if tmpl.Intent != "asset-tokenization" {
		t.Errorf("intent = %q", tmpl.Intent)
	}

	if _, ok := kb.TemplateByName("does-not-exist"); ok {
		t.Error("lookup of a missing template reported ok")
	}
}

func TestTemplatesForIntent(t *testing.T) {
	kb := Default()

	got := kb.TemplatesForIntent("asset-tokenization")
	names := make([]string, len(got))
	for i, tmpl := range got {
		names[i] = tmpl.Name
	}
	want := []string{"token-transfer", "loyalty-points", "carbon-credit-registry"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("TemplatesForIntent = %v, want inventory order %v", names, want)
	}

	if got := kb.TemplatesForIntent("unknown-intent"); len(got) != 0 {
		t.Errorf("unknown intent returned %d templates", len(got))
	}
}
