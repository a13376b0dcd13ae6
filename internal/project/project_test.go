package project

import "testing"

func TestBusinessNamePrefersForm(t *testing.T) {
	d := Data{
		FormData:         map[string]any{"businessName": " Kahve Durağı "},
		GeneratedContent: map[string]any{"businessName": "Generated"},
	}
	if got := d.BusinessName(); got != "Kahve Durağı" {
		t.Fatalf("BusinessName() = %q", got)
	}
	d.FormData = nil
	if got := d.BusinessName(); got != "Generated" {
		t.Fatalf("BusinessName() fallback = %q", got)
	}
}

func TestContactMergesFieldByField(t *testing.T) {
	d := Data{
		FormData: map[string]any{"phone": "0212 000 00 00", "email": ""},
		GeneratedContent: map[string]any{
			"pages": map[string]any{
				"contact": map[string]any{
					"info": map[string]any{"phone": "0555", "email": "info@ornek.com"},
				},
			},
		},
	}
	c := d.Contact()
	if c.Phone != "0212 000 00 00" || c.Email != "info@ornek.com" || c.Address != "" {
		t.Fatalf("unexpected contact %#v", c)
	}
	if c.Empty() {
		t.Fatalf("contact should not be empty")
	}
	if !(Data{}).Contact().Empty() {
		t.Fatalf("zero data should have empty contact")
	}
}
