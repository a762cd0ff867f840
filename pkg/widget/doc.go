/*
Package widget edits Cordova-style config.xml manifests.

A Document owns the element tree of one manifest whose root element is
<widget>. Mutations validate their input, apply immediately to the tree and
are written back with Write, which replaces the source file atomically.

# Quick Start

	doc, err := widget.Open("config.xml")
	if err != nil {
	    log.Fatal(err)
	}
	if err := doc.SetVersion("1.2.0"); err != nil {
	    log.Fatal(err)
	}
	doc.SetName("Hello World")
	doc.SetPreference("Fullscreen", true)
	doc.SetAccessOrigin("https://api.example.com", ast.A("subdomains", "true"))
	if err := doc.WriteSync(); err != nil {
	    log.Fatal(err)
	}

# Validated Fields

The root attributes id, version, android-versionCode, android-packageName,
ios-CFBundleVersion and ios-CFBundleIdentifier are checked against fixed
patterns. A rejected value returns an error of kind types.ErrKindValidation
and leaves the document unchanged:

	if err := doc.SetVersion("1.2"); errors.Is(err, types.ErrValidation) {
	    fmt.Println(err) // Please provide a valid version number.
	}

# Keyed Collections

Preferences are keyed by name and access entries by origin; setting an
existing key removes the old element and appends a new one at the end.
Plugin variables are the exception: an existing variable keeps its position
and only its value changes.

# Concurrency

A Document has a single owner. No method is safe for concurrent use, and
WriteAsync only snapshots the serialized bytes before returning, so the
caller may keep mutating afterwards.
*/
package widget
