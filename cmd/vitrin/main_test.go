package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resolveTemplate, resolveSector, resolveDataPath = "", "", ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTemplatesListsCatalog(t *testing.T) {
	out, err := run(t, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "dental-clinic")
	assert.Contains(t, out, "cozy-cafe")
}

func TestResolvePrintsMappedSections(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"formData":{"businessName":"Gülüş Kliniği"}}`), 0o644))

	out, err := run(t, "resolve", "--template", "dental-clinic", "--sector", "diş hekimi", "--data", dataPath)
	require.NoError(t, err)

	var got struct {
		TemplateID string           `json:"templateId"`
		Sections   []map[string]any `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dental-clinic", got.TemplateID)
	require.NotEmpty(t, got.Sections)
	assert.Equal(t, "HeroDental", got.Sections[0]["type"])
}

func TestResolveUnknownTemplate(t *testing.T) {
	_, err := run(t, "resolve", "--template", "nope")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown template"))
}
