package sector

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Dentist", "dentist"},
		{"  Fine Dining ", "fine_dining"},
		{"law-firm", "law_firm"},
		{"Diş Hekimi", "dis_hekimi"},
		{"GÜZELLİK Salonu", "guzellik_salonu"},
		{"Kuaför", "kuafor"},
		{"real - estate", "real_estate"},
		{"", ""},
		{"beauty__salon", "beauty_salon"},
		{"Işık Fotoğrafçılık", "isik_fotografcilik"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{key: "dentist", want: "dentist"},
		{key: "dis", want: "dentist"},
		{key: "Dental", want: "dentist"},
		{key: "Diş Hekimi", want: "dentist"},
		{key: "fine dining", want: "restaurant"},
		{key: "Kahve Dükkanı", want: "cafe"},
		{key: "butik otel", want: "hotel"},
		{key: "avukatlik burosu", want: "lawyer"},
		{key: "modern_restaurant_bar", want: "restaurant"},
		{key: "Beauty Salon", want: "beauty_salon"},
	}
	for _, tc := range cases {
		p, ok := Resolve(tc.key)
		if !ok {
			t.Fatalf("Resolve(%q) found no profile", tc.key)
		}
		if p.Key != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.key, p.Key, tc.want)
		}
	}
}

func TestResolveMiss(t *testing.T) {
	for _, key := range []string{"", "   ", "plumbing", "oto_yikama"} {
		if p, ok := Resolve(key); ok {
			t.Fatalf("Resolve(%q) unexpectedly returned %q", key, p.Key)
		}
	}
}

func TestResolveReturnsIndependentCopy(t *testing.T) {
	p, _ := Resolve("cafe")
	p.Services[0].Title = "changed"
	again, _ := Resolve("cafe")
	if again.Services[0].Title == "changed" {
		t.Fatalf("profile table was mutated through a resolved copy")
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("Kafe"); got != "cafe" {
		t.Fatalf("Canonical(Kafe) = %q", got)
	}
	if got := Canonical("Oto Yıkama"); got != "oto_yikama" {
		t.Fatalf("Canonical fallback = %q", got)
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	if len(keys) != len(profiles) {
		t.Fatalf("expected %d keys, got %d", len(profiles), len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}
