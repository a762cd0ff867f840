package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/widgetkit/pkg/types"
)

func TestFieldSetters_Reject(t *testing.T) {
	tests := []struct {
		name   string
		set    func(*Document, string) error
		get    func(*Document) string
		inputs []string
		msg    string
	}{
		{
			name:   "id",
			set:    (*Document).SetID,
			get:    (*Document).ID,
			inputs: []string{"*.wrongid.com", "$.wrongid.com", ".com.com", "", "my app"},
			msg:    "Please provide a valid id.",
		},
		{
			name:   "version",
			set:    (*Document).SetVersion,
			get:    (*Document).Version,
			inputs: []string{"ab", "1", "1.1", "1.1.1.1", "a.b.c", "1..1", "1.1.", ""},
			msg:    "Please provide a valid version number.",
		},
		{
			name:   "android version code",
			set:    func(d *Document, v string) error { return d.SetAndroidVersionCode(v) },
			get:    (*Document).AndroidVersionCode,
			inputs: []string{"ab", "1.1", "1a", "a1", "", "-1"},
			msg:    "Please provide a valid Android version code.",
		},
		{
			name:   "android package name",
			set:    (*Document).SetAndroidPackageName,
			get:    (*Document).AndroidPackageName,
			inputs: []string{"com-example", "com example", "", "com/example"},
			msg:    "Please provide a valid Android package name.",
		},
		{
			name:   "ios bundle version",
			set:    (*Document).SetIOSBundleVersion,
			get:    (*Document).IOSBundleVersion,
			inputs: []string{"ab", "0", "0.1", "0.1.1", "1.1.1.1", "a.b.c", "1..1", "1.1."},
			msg:    "Please provide a valid iOS bundle version number.",
		},
		{
			name:   "ios bundle identifier",
			set:    (*Document).SetIOSBundleIdentifier,
			get:    (*Document).IOSBundleIdentifier,
			inputs: []string{"com-example", "", "com:example"},
			msg:    "Please provide a valid iOS bundle identifier number.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := openFixture(t, "config.xml")
			before := tt.get(doc)
			for _, in := range tt.inputs {
				err := tt.set(doc, in)
				require.Error(t, err, "input %q", in)
				assert.ErrorIs(t, err, types.ErrValidation)
				assert.EqualError(t, err, tt.msg)
				assert.Equal(t, before, tt.get(doc), "input %q changed the document", in)
			}
		})
	}
}

func TestFieldSetters_Accept(t *testing.T) {
	tests := []struct {
		name   string
		set    func(*Document, string) error
		get    func(*Document) string
		inputs []string
	}{
		{"id", (*Document).SetID, (*Document).ID, []string{"com.my.app", "io.cordova.hello_world", "a", "example.com:8080/path"}},
		{"version", (*Document).SetVersion, (*Document).Version, []string{"1.1.1", "0.0.0", "10.20.30"}},
		{"android package name", (*Document).SetAndroidPackageName, (*Document).AndroidPackageName, []string{"com.example.app", "com_example"}},
		{"ios bundle version", (*Document).SetIOSBundleVersion, (*Document).IOSBundleVersion, []string{"1", "1.1", "1.1.1", "10.0"}},
		{"ios bundle identifier", (*Document).SetIOSBundleIdentifier, (*Document).IOSBundleIdentifier, []string{"com.example.app"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fixture := range []string{"config.empty.xml", "config.xml"} {
				doc, _ := openFixture(t, fixture)
				for _, in := range tt.inputs {
					require.NoError(t, tt.set(doc, in), "input %q", in)
					assert.Equal(t, in, tt.get(doc))
				}
			}
		})
	}
}

func TestSetAndroidVersionCode(t *testing.T) {
	doc, _ := openFixture(t, "config.empty.xml")
	require.NoError(t, doc.SetAndroidVersionCode("110"))
	assert.Equal(t, "110", doc.AndroidVersionCode())

	doc, _ = openFixture(t, "config.xml")
	assert.Equal(t, "100", doc.AndroidVersionCode())
	require.NoError(t, doc.SetAndroidVersionCode(110))
	assert.Equal(t, "110", doc.AndroidVersionCode())
	require.NoError(t, doc.SetAndroidVersionCode(uint16(7)))
	assert.Equal(t, "7", doc.AndroidVersionCode())

	assert.ErrorIs(t, doc.SetAndroidVersionCode(-3), types.ErrValidation)
	assert.ErrorIs(t, doc.SetAndroidVersionCode(1.5), types.ErrValidation)
	assert.Equal(t, "7", doc.AndroidVersionCode())
}

func TestSetField_KeepsAttributeOrder(t *testing.T) {
	doc, _ := openFixture(t, "config.xml")
	require.NoError(t, doc.SetVersion("2.0.0"))
	require.NoError(t, doc.SetAndroidPackageName("com.example"))

	keys := doc.Root().Attrs.Keys()
	assert.Equal(t, "id", keys[0])
	assert.Equal(t, "version", keys[1])
	assert.Equal(t, "android-packageName", keys[len(keys)-1])
}
