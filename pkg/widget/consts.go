package widget

// Tag and attribute names used in widget manifests.
const (
	RootTag = "widget"

	TagName        = "name"
	TagDescription = "description"
	TagAuthor      = "author"
	TagContent     = "content"
	TagPreference  = "preference"
	TagAccess      = "access"
	TagPlugin      = "plugin"
	TagVariable    = "variable"
	TagHook        = "hook"

	AttrID                  = "id"
	AttrVersion             = "version"
	AttrAndroidVersionCode  = "android-versionCode"
	AttrAndroidPackageName  = "android-packageName"
	AttrIOSBundleVersion    = "ios-CFBundleVersion"
	AttrIOSBundleIdentifier = "ios-CFBundleIdentifier"

	AttrName   = "name"
	AttrValue  = "value"
	AttrOrigin = "origin"
	AttrSrc    = "src"
	AttrType   = "type"
	AttrEmail  = "email"
	AttrHref   = "href"
)
