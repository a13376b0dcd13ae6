// Package media fills image and contact fields of freshly built section props.
// Images come from a per-sector Library; contact fields come from the
// business data the site is generated from.
package media

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"vitrin/api/internal/project"
	"vitrin/api/internal/section"
	"vitrin/api/internal/sector"
)

// Library lists image URLs for a canonical sector key. The first URL is the
// sector's cover image.
type Library interface {
	Images(ctx context.Context, sectorKey string) ([]string, error)
}

// imageFields are top-level string props holding a single image URL.
var imageFields = []string{"image", "backgroundImage", "avatar", "logo"}

// Injector implements editor.Injector. Image lists are fetched once per
// sector and handed out round-robin so neighbouring sections differ.
type Injector struct {
	lib     Library
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.Mutex
	cache  map[string][]string
	cursor map[string]int
}

func NewInjector(lib Library, logger *slog.Logger) *Injector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Injector{
		lib:     lib,
		logger:  logger,
		timeout: 3 * time.Second,
		cache:   make(map[string][]string),
		cursor:  make(map[string]int),
	}
}

// Inject only fills fields that are present and empty; anything the template
// or the user already set is left alone.
func (in *Injector) Inject(sectionType string, props section.Props, data project.Data) {
	if props == nil {
		return
	}
	in.injectContact(props, data)

	key := sector.Canonical(data.Sector)
	images := in.images(key)
	if len(images) == 0 {
		return
	}
	next := func() string {
		in.mu.Lock()
		defer in.mu.Unlock()
		// The cover is reserved for heroes once the library has more than one image.
		pool := images
		if len(images) > 1 {
			pool = images[1:]
		}
		url := pool[in.cursor[key]%len(pool)]
		in.cursor[key]++
		return url
	}

	for _, field := range imageFields {
		if v, ok := props[field].(string); ok && v == "" {
			if section.KindOf(sectionType) == section.KindHero {
				props[field] = images[0]
			} else {
				props[field] = next()
			}
		}
	}
	if video, ok := props["video"].(map[string]any); ok {
		if poster, ok := video["poster"].(string); ok && poster == "" {
			video["poster"] = images[0]
		}
	}
	for _, field := range slices.Sorted(maps.Keys(props)) {
		items, ok := props[field].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if s, ok := rec["image"].(string); ok && s == "" {
				rec["image"] = next()
			}
			if s, ok := rec["src"].(string); ok && s == "" && field == "images" {
				rec["src"] = next()
			}
		}
	}
}

func (in *Injector) injectContact(props section.Props, data project.Data) {
	contact := data.Contact()
	fill := func(field, value string) {
		if value == "" {
			return
		}
		if v, ok := props[field].(string); ok && v == "" {
			props[field] = value
		}
	}
	fill("phone", contact.Phone)
	fill("email", contact.Email)
	fill("address", contact.Address)
	fill("businessName", data.BusinessName())
}

// images returns the cached list for key. Failed lookups are not cached so
// the next template application retries.
func (in *Injector) images(key string) []string {
	if in.lib == nil {
		return nil
	}
	in.mu.Lock()
	cached, ok := in.cache[key]
	in.mu.Unlock()
	if ok {
		return cached
	}

	ctx, cancel := context.WithTimeout(context.Background(), in.timeout)
	defer cancel()
	urls, err := in.lib.Images(ctx, key)
	if err != nil {
		in.logger.Warn("media library lookup failed", "sector", key, "error", err)
		return nil
	}

	in.mu.Lock()
	in.cache[key] = urls
	in.mu.Unlock()
	return urls
}

// Forget drops cached lists so new uploads become visible.
func (in *Injector) Forget() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.cache = make(map[string][]string)
}
