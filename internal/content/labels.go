package content

import (
	"strings"

	"vitrin/api/internal/mapper"
	"vitrin/api/internal/section"
)

var labelFields = []string{"title", "sectionTitle"}

type intent int

const (
	intentNone intent = iota
	intentServices
	intentTeam
)

// Placeholder phrases are checked in order; the first hit decides the intent.
var placeholders = []struct {
	phrase string
	intent intent
}{
	{"menu", intentServices},
	{"menü", intentServices},
	{"room", intentServices},
	{"oda", intentServices},
	{"treatment", intentServices},
	{"tedavi", intentServices},
	{"chef", intentTeam},
	{"şef", intentTeam},
	{"team", intentTeam},
	{"ekip", intentTeam},
}

// RewriteLabels replaces sector-agnostic title placeholders with the sector's
// vocabulary. It returns props itself when nothing changes.
func RewriteLabels(props section.Props, in mapper.Input) section.Props {
	if !in.HasProfile {
		return props
	}
	var out section.Props
	for _, field := range labelFields {
		value, ok := props[field].(string)
		if !ok || value == "" {
			continue
		}
		term := termFor(detectIntent(value), in)
		if term == "" || term == value {
			continue
		}
		if out == nil {
			out = props.Clone()
		}
		out[field] = term
	}
	if out == nil {
		return props
	}
	return out
}

func detectIntent(value string) intent {
	lower := strings.ToLower(value)
	for _, p := range placeholders {
		if strings.Contains(lower, p.phrase) {
			return p.intent
		}
	}
	return intentNone
}

func termFor(i intent, in mapper.Input) string {
	switch i {
	case intentServices:
		return in.Profile.Vocabulary.Services
	case intentTeam:
		return in.Profile.Vocabulary.Team
	}
	return ""
}
