package knowledge

import (
	"sort"
	"strings"
)

// Base bundles all static reference tables. Construct once with Default
// (or with custom tables in tests) and share by reference; Base is
// read-only after construction.
type Base struct {
	Industries map[string]IndustryProfile
	Frameworks map[string]Framework
	Services   map[string]ServiceCapability
	Templates  []Template
}

// Default builds the built-in knowledge base.
func Default() *Base {
	return &Base{
		Industries: defaultIndustries(),
		Frameworks: defaultFrameworks(),
		Services:   defaultServices(),
		Templates:  defaultTemplates(),
	}
}

// Industry returns the profile for the given key, or the generic profile
// when the key is unknown or empty.
func (b *Base) Industry(key string) IndustryProfile {
	if p, ok := b.Industries[strings.ToLower(strings.TrimSpace(key))]; ok {
		return p
	}
	return genericIndustry()
}

// HasIndustry reports whether the key names a real (non-generic) profile.
func (b *Base) HasIndustry(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	_, ok := b.Industries[k]
	return ok && k != GenericIndustryKey
}

// Framework returns the glossary entry for the given key. Unknown keys get
// a minimal entry carrying only the key so callers can still render it.
func (b *Base) Framework(key string) Framework {
	if f, ok := b.Frameworks[strings.ToLower(strings.TrimSpace(key))]; ok {
		return f
	}
	return Framework{Key: key, DisplayName: key}
}

// Service returns the capability entry for the given key, or a minimal
// entry for unknown keys.
func (b *Base) Service(key string) ServiceCapability {
	if s, ok := b.Services[strings.ToLower(strings.TrimSpace(key))]; ok {
		return s
	}
	return ServiceCapability{Key: key, DisplayName: key}
}

// TemplatesForIntent returns the inventory entries serving the given
// business intent. The result preserves inventory order.
func (b *Base) TemplatesForIntent(intent string) []Template {
	var out []Template
	for _, t := range b.Templates {
		if t.Intent == intent {
			out = append(out, t)
		}
	}
	return out
}

// TemplateByName looks up a template by exact name.
func (b *Base) TemplateByName(name string) (Template, bool) {
	for _, t := range b.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// MatchTemplates scores inventory entries against lowercase text by keyword
// hits and returns those with at least one hit, best first.
func (b *Base) MatchTemplates(text string) []Template {
	lower := strings.ToLower(text)

	type scored struct {
		t    Template
		hits int
	}
	var matches []scored
	for _, t := range b.Templates {
		hits := 0
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, scored{t: t, hits: hits})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].hits > matches[j].hits
	})

	out := make([]Template, len(matches))
	for i, m := range matches {
		out[i] = m.t
	}
	return out
}

// DetectIndustry scans lowercase text for industry keywords and returns the
// first profile with a hit, or the generic profile.
func (b *Base) DetectIndustry(text string) IndustryProfile {
	lower := strings.ToLower(text)

	best := genericIndustry()
	bestHits := 0
	for _, p := range b.Industries {
		if p.Key == GenericIndustryKey {
			continue
		}
		hits := 0
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits || (hits == bestHits && hits > 0 && p.Key < best.Key) {
			best = p
			bestHits = hits
		}
	}
	return best
}

// DetectFrameworks scans lowercase text for framework keywords and returns
// the matched glossary entries in stable key order.
func (b *Base) DetectFrameworks(text string) []Framework {
	lower := strings.ToLower(text)

	keys := sortedFrameworkKeys(b.Frameworks)
	var out []Framework
	for _, key := range keys {
		f := b.Frameworks[key]
		for _, kw := range f.Keywords {
			if strings.Contains(lower, kw) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// DetectServices scans lowercase text for service keywords and returns the
// matched capability keys in stable order.
func (b *Base) DetectServices(text string) []string {
	lower := strings.ToLower(text)

	keys := sortedServiceKeys(b.Services)
	var out []string
	for _, key := range keys {
		s := b.Services[key]
		for _, kw := range s.Keywords {
			if strings.Contains(lower, kw) {
				out = append(out, s.Key)
				break
			}
		}
	}
	return out
}

func sortedFrameworkKeys(m map[string]Framework) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedServiceKeys(m map[string]ServiceCapability) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
