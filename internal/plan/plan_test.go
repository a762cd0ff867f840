package plan

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/widgetkit/pkg/types"
	"github.com/joshuapare/widgetkit/pkg/widget"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"plan.yaml", FormatYAML},
		{"plan.YML", FormatYAML},
		{"plan.json", FormatJSONC},
		{"dir/plan.jsonc", FormatJSONC},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("plan.toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_FormatsAgree(t *testing.T) {
	fromYAML, err := Load(filepath.Join("testdata", "release.yaml"))
	require.NoError(t, err)
	fromJSON, err := Load(filepath.Join("testdata", "release.jsonc"))
	require.NoError(t, err)

	// numbers decode as int from YAML and float64 from JSON
	assert.Equal(t, 12, fromYAML.AndroidVersionCode)
	assert.Equal(t, float64(12), fromJSON.AndroidVersionCode)
	fromJSON.AndroidVersionCode = fromYAML.AndroidVersionCode

	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Errorf("plans differ (-yaml +jsonc):\n%s", diff)
	}
	assert.Equal(t, "1.2", fromYAML.IOSBundleVersion)
	assert.Len(t, fromYAML.Raw, 1)
}

func TestDecode_Empty(t *testing.T) {
	p, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.Zero(t, p.Len())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml unknown key", "versoin: 1.0.0", FormatYAML},
		{"yaml syntax", "preferences: [", FormatYAML},
		{"json unknown key", `{"versoin": "1.0.0"}`, FormatJSONC},
		{"json syntax", `{"version": }`, FormatJSONC},
		{"preference without name", "preferences: [{value: x}]", FormatYAML},
		{"access without origin", `{"access": [{"attrs": {"a": "b"}}]}`, FormatJSONC},
		{"plugin without name", "plugins: [{variables: []}]", FormatYAML},
		{"variable without name", "plugins: [{name: p, variables: [{value: v}]}]", FormatYAML},
		{"bad format", "{}", Format(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "plan.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "release.yaml"))
	require.NoError(t, err)
	doc, err := widget.Open(filepath.Join("testdata", "config.xml"))
	require.NoError(t, err)

	require.NoError(t, p.Apply(doc))

	assert.Equal(t, "com.example.app", doc.ID())
	assert.Equal(t, "1.2.3", doc.Version())
	assert.Equal(t, "12", doc.AndroidVersionCode())
	assert.Equal(t, "1.2", doc.IOSBundleVersion())
	assert.Equal(t, "Example", doc.Name())

	name, email, href := doc.Author()
	assert.Equal(t, []string{"Jane Doe", "jane@example.com", ""}, []string{name, email, href})

	fullscreen, _ := doc.Preference("Fullscreen")
	showTitle, _ := doc.Preference("ShowTitle")
	assert.Equal(t, "true", fullscreen)
	assert.Equal(t, "false", showTitle)

	assert.Equal(t, []string{"http://www.google.com", "https://api.example.com"}, doc.AccessOrigins())
	access := doc.Root().Children[len(doc.Root().Children)-4]
	assert.Equal(t, []string{"origin", "launch-external", "subdomains"}, access.Attrs.Keys())

	assert.Equal(t, []string{"cordova-plugin-facebook"}, doc.Plugins())
	assert.Equal(t, []widget.Hook{{Type: "before_build", Src: "scripts/lint.js"}}, doc.Hooks())

	last := doc.Root().Children[len(doc.Root().Children)-1]
	assert.Equal(t, "platform", last.Tag)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	p, err := Decode([]byte(`
name: Renamed
hooks:
  - {type: after_then, src: a.js}
raw: ["<platform/>"]
`), FormatYAML)
	require.NoError(t, err)
	doc, err := widget.Open(filepath.Join("testdata", "config.xml"))
	require.NoError(t, err)

	err = p.Apply(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hook after_then: ")
	assert.Equal(t, "Renamed", doc.Name())
	assert.Nil(t, doc.Element("platform"))
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestApply_ValidationErrorNamesStep(t *testing.T) {
	p := &Plan{Version: "1.2"}
	doc, err := widget.Open(filepath.Join("testdata", "config.xml"))
	require.NoError(t, err)

	assert.EqualError(t, p.Apply(doc), "version: Please provide a valid version number.")
	assert.Equal(t, "0.0.1", doc.Version())
}
