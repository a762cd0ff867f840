package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/widgetkit/pkg/ast"
)

func TestSetPreference_Add(t *testing.T) {
	doc, _ := openFixture(t, "config.empty.xml")
	doc.SetPreference("ShowTitle", false)

	el := doc.Root().Find(ast.ByAttr("preference", "name", "ShowTitle"))
	require.NotNil(t, el)
	assert.Equal(t, "false", el.Get("value"))
	assert.Equal(t, []string{"name", "value"}, el.Attrs.Keys())
}

func TestSetPreference_Overwrite(t *testing.T) {
	doc, _ := openFixture(t, "config.xml")
	doc.SetPreference("ShowTitle", false)

	prefs := doc.Root().FindAll(ast.ByAttr("preference", "name", "ShowTitle"))
	require.Len(t, prefs, 1)
	assert.Equal(t, "false", prefs[0].Get("value"))
	assert.Len(t, doc.Root().Children, 7)
}

func TestSetPreference_MovesToEnd(t *testing.T) {
	doc, _ := openFixture(t, "config.empty.xml")
	doc.SetPreference("A", "1")
	doc.SetPreference("B", "2")
	doc.SetPreference("A", "3")

	assert.Equal(t, []ast.Attr{ast.A("B", "2"), ast.A("A", "3")}, doc.Preferences())
}

func TestSetPreference_Values(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint8(255), "255"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{"portrait", "portrait"},
		{nil, ""},
	}

	doc, _ := openFixture(t, "config.empty.xml")
	for _, tt := range tests {
		doc.SetPreference("Value", tt.value)
		got, ok := doc.Preference("Value")
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "value %#v", tt.value)
	}
	assert.Len(t, doc.Root().Children, 1)
}

func TestRemovePreference(t *testing.T) {
	doc, _ := openFixture(t, "config.xml")

	assert.True(t, doc.RemovePreference("ShowTitle"))
	assert.False(t, doc.RemovePreference("ShowTitle"))

	_, ok := doc.Preference("ShowTitle")
	assert.False(t, ok)
	assert.Empty(t, doc.Preferences())
}
