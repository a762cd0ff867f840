package widget

import (
	"regexp"

	"github.com/joshuapare/widgetkit/pkg/types"
)

// field is a validated attribute on the root element.
type field struct {
	attr    string
	pattern *regexp.Regexp
	msg     string
}

var (
	fieldID = field{
		attr:    AttrID,
		pattern: regexp.MustCompile(`^[0-9a-zA-Z]([-.\w]*[0-9a-zA-Z])*(:[0-9]*)*(/?)([a-zA-Z0-9\-.?,'/\\+&%$#_]*)?$`),
		msg:     "Please provide a valid id.",
	}
	fieldVersion = field{
		attr:    AttrVersion,
		pattern: regexp.MustCompile(`^\d+\.\d+\.\d+$`),
		msg:     "Please provide a valid version number.",
	}
	fieldAndroidVersionCode = field{
		attr:    AttrAndroidVersionCode,
		pattern: regexp.MustCompile(`^\d+$`),
		msg:     "Please provide a valid Android version code.",
	}
	fieldAndroidPackageName = field{
		attr:    AttrAndroidPackageName,
		pattern: regexp.MustCompile(`^[\w.]+$`),
		msg:     "Please provide a valid Android package name.",
	}
	fieldIOSBundleVersion = field{
		attr:    AttrIOSBundleVersion,
		pattern: regexp.MustCompile(`^[1-9]\d*(\.\d+){0,2}$`),
		msg:     "Please provide a valid iOS bundle version number.",
	}
	fieldIOSBundleIdentifier = field{
		attr:    AttrIOSBundleIdentifier,
		pattern: regexp.MustCompile(`^[\w.]+$`),
		msg:     "Please provide a valid iOS bundle identifier number.",
	}
)

func (d *Document) setField(f field, value string) error {
	if !f.pattern.MatchString(value) {
		d.log.Debug().Str("attr", f.attr).Str("value", value).Msg("rejected value")
		return types.ValidationError(f.msg)
	}
	d.root.Set(f.attr, value)
	d.log.Debug().Str("attr", f.attr).Str("value", value).Msg("set attribute")
	return nil
}

// SetID sets the application id, e.g. "com.example.app".
func (d *Document) SetID(id string) error { return d.setField(fieldID, id) }

// SetVersion sets the MAJOR.MINOR.PATCH version.
func (d *Document) SetVersion(version string) error { return d.setField(fieldVersion, version) }

// SetAndroidVersionCode sets the Android version code. Integers are stored
// in decimal form; strings must already be all digits.
func (d *Document) SetAndroidVersionCode(code any) error {
	return d.setField(fieldAndroidVersionCode, formatValue(code))
}

func (d *Document) SetAndroidPackageName(name string) error {
	return d.setField(fieldAndroidPackageName, name)
}

func (d *Document) SetIOSBundleVersion(version string) error {
	return d.setField(fieldIOSBundleVersion, version)
}

func (d *Document) SetIOSBundleIdentifier(id string) error {
	return d.setField(fieldIOSBundleIdentifier, id)
}

func (d *Document) ID() string                  { return d.root.Get(AttrID) }
func (d *Document) Version() string             { return d.root.Get(AttrVersion) }
func (d *Document) AndroidVersionCode() string  { return d.root.Get(AttrAndroidVersionCode) }
func (d *Document) AndroidPackageName() string  { return d.root.Get(AttrAndroidPackageName) }
func (d *Document) IOSBundleVersion() string    { return d.root.Get(AttrIOSBundleVersion) }
func (d *Document) IOSBundleIdentifier() string { return d.root.Get(AttrIOSBundleIdentifier) }
