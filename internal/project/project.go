// Package project wraps the loosely typed business data a site is built from:
// generated page copy, raw form answers and the sector key.
package project

import (
	"strings"

	"vitrin/api/internal/dotpath"
)

// Data is read-only input to content resolution. Its maps are never mutated.
type Data struct {
	GeneratedContent map[string]any `json:"generatedContent,omitempty"`
	FormData         map[string]any `json:"formData,omitempty"`
	Sector           string         `json:"sector,omitempty"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func (c Contact) Empty() bool {
	return c.Phone == "" && c.Email == "" && c.Address == ""
}

// Generated reads generated copy by dot path.
func (d Data) Generated(path string) string {
	return strings.TrimSpace(dotpath.String(d.GeneratedContent, path, ""))
}

// GeneratedList reads a generated list by dot path.
func (d Data) GeneratedList(path string) []any {
	return dotpath.List(d.GeneratedContent, path)
}

func (d Data) Form(key string) string {
	return strings.TrimSpace(dotpath.String(d.FormData, key, ""))
}

// BusinessName prefers the form answer over generated copy.
func (d Data) BusinessName() string {
	if name := d.Form("businessName"); name != "" {
		return name
	}
	return strings.TrimSpace(dotpath.FirstString(d.GeneratedContent, "", "businessName", "pages.home.hero.businessName"))
}

// FormContact is the contact block the user typed in.
func (d Data) FormContact() Contact {
	return Contact{Phone: d.Form("phone"), Email: d.Form("email"), Address: d.Form("address")}
}

// GeneratedContact is the contact block of the generated contact page.
func (d Data) GeneratedContact() Contact {
	return Contact{
		Phone:   d.Generated("pages.contact.info.phone"),
		Email:   d.Generated("pages.contact.info.email"),
		Address: d.Generated("pages.contact.info.address"),
	}
}

// Contact merges form answers over generated contact info field by field.
func (d Data) Contact() Contact {
	form, gen := d.FormContact(), d.GeneratedContact()
	if form.Phone == "" {
		form.Phone = gen.Phone
	}
	if form.Email == "" {
		form.Email = gen.Email
	}
	if form.Address == "" {
		form.Address = gen.Address
	}
	return form
}
