package media

import (
	"context"
	"fmt"

	"vitrin/api/internal/sector"
)

const staticBase = "https://images.vitrin.app/sectors"

// StaticLibrary serves a fixed set of URLs, falling back to the "general"
// entry for sectors it does not know.
type StaticLibrary map[string][]string

func (s StaticLibrary) Images(_ context.Context, sectorKey string) ([]string, error) {
	if urls, ok := s[sectorKey]; ok {
		return append([]string(nil), urls...), nil
	}
	return append([]string(nil), s["general"]...), nil
}

// DefaultStaticLibrary is used when no object store is configured.
func DefaultStaticLibrary() StaticLibrary {
	lib := StaticLibrary{}
	for _, key := range append(sector.Keys(), "general") {
		urls := make([]string, 0, 4)
		for i := 1; i <= 4; i++ {
			urls = append(urls, fmt.Sprintf("%s/%s/%02d.jpg", staticBase, key, i))
		}
		lib[key] = urls
	}
	return lib
}
