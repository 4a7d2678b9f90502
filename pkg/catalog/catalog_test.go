// pkg/catalog/catalog_test.go
package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, []string{
		"carousel", "guide", "checklist", "template", "minicourse",
		"worksheet", "swipefile", "casestudy", "toolkit", "cheatsheet", "datareport",
	}, c.IDs())

	f, ok := c.Lookup("minicourse")
	require.True(t, ok)
	assert.Equal(t, 5000, f.MaxTokens)
	assert.Equal(t, "course_title", f.TitleKey)

	report, ok := c.Lookup("datareport")
	require.True(t, ok)
	assert.Equal(t, "report_title", report.TitleKey)

	_, ok = c.Lookup("podcast")
	assert.False(t, ok)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.json")

	require.NoError(t, Default().Save(path))

	loaded, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, Default().IDs(), loaded.IDs())
	assert.NotEmpty(t, loaded.LastUpdated)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *FormatCatalog)
		wantErr string
	}{
		{
			name:    "empty",
			mutate:  func(c *FormatCatalog) { c.Formats = nil },
			wantErr: "no formats",
		},
		{
			name:    "duplicate id",
			mutate:  func(c *FormatCatalog) { c.Formats[1].ID = "carousel" },
			wantErr: "duplicate format ID",
		},
		{
			name:    "missing title key",
			mutate:  func(c *FormatCatalog) { c.Formats[0].TitleKey = "" },
			wantErr: "titleKey",
		},
		{
			name:    "bad ceiling",
			mutate:  func(c *FormatCatalog) { c.Formats[2].MaxTokens = 0 },
			wantErr: "maxTokens",
		},
		{
			name:    "bad schema",
			mutate:  func(c *FormatCatalog) { c.Formats[3].OutputSchema = map[string]interface{}{"type": 7} },
			wantErr: "outputSchema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Len(t, c.Formats, 11)
}
