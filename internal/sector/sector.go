// Package sector maps free-form business sector keys onto canned content
// profiles. Resolution is total: every key either yields a profile or ok=false.
package sector

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Vocabulary holds the sector's nouns for the generic section families.
type Vocabulary struct {
	Services    string `json:"services"`
	Team        string `json:"team"`
	Gallery     string `json:"gallery"`
	Appointment string `json:"appointment"`
}

type Profile struct {
	Key              string     `json:"key"`
	HeroTitle        string     `json:"heroTitle"`
	HeroSubtitle     string     `json:"heroSubtitle"`
	HeroDescription  string     `json:"heroDescription"`
	CTAText          string     `json:"ctaText"`
	Services         []Service  `json:"services"`
	AboutTitle       string     `json:"aboutTitle"`
	AboutDescription string     `json:"aboutDescription"`
	Vocabulary       Vocabulary `json:"vocabulary"`
}

func (p Profile) clone() Profile {
	p.Services = append([]Service(nil), p.Services...)
	return p
}

var (
	aliasKeys   = sortedByLength(keys(aliases))
	profileKeys = sortedByLength(keys(profiles))
)

// Normalize lowercases key, folds diacritics (including the Turkish dotless i)
// and collapses whitespace and hyphen runs into single underscores.
func Normalize(key string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), key)
	if err != nil {
		folded = key
	}
	folded = strings.ToLower(strings.NewReplacer("ı", "i", "I", "i").Replace(folded))

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Resolve finds the profile for key: exact profile key, then alias, then alias
// substring, then profile-key substring.
func Resolve(key string) (Profile, bool) {
	name, ok := resolveKey(Normalize(key))
	if !ok {
		return Profile{}, false
	}
	return profiles[name].clone(), true
}

// Canonical returns the profile key key resolves to, or the normalized key
// itself when nothing matches.
func Canonical(key string) string {
	normalized := Normalize(key)
	if name, ok := resolveKey(normalized); ok {
		return name
	}
	return normalized
}

// Keys lists the known profile keys in lexical order.
func Keys() []string {
	out := keys(profiles)
	sort.Strings(out)
	return out
}

func resolveKey(k string) (string, bool) {
	if k == "" {
		return "", false
	}
	if _, ok := profiles[k]; ok {
		return k, true
	}
	if target, ok := aliases[k]; ok {
		return target, true
	}
	for _, alias := range aliasKeys {
		if strings.Contains(k, alias) {
			return aliases[alias], true
		}
	}
	for _, name := range profileKeys {
		if strings.Contains(k, name) {
			return name, true
		}
	}
	return "", false
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// sortedByLength orders longest first so "dis_hekimi" wins over "dis".
func sortedByLength(in []string) []string {
	sort.Slice(in, func(i, j int) bool {
		if len(in[i]) != len(in[j]) {
			return len(in[i]) > len(in[j])
		}
		return in[i] < in[j]
	})
	return in
}
