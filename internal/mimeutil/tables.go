// Package mimeutil maps file extensions to content types and matches content
// types against wildcard patterns. Resolution layers two hardcoded tables
// around an injected platform registry: the primary table is authoritative and
// cannot be overridden, the secondary table is consulted only after the
// platform registry misses.
package mimeutil

// mapping associates one content type with the extensions it is served under.
// Extensions are stored lower case; lookups compare case-insensitively.
type mapping struct {
	contentType string
	extensions  []string
}

// primaryMappings can never be overridden by platform data.
var primaryMappings = []mapping{
	{"text/html", []string{"html", "htm", "shtml", "shtm"}},
	{"text/css", []string{"css"}},
	{"text/xml", []string{"xml"}},
	{"image/gif", []string{"gif"}},
	{"image/jpeg", []string{"jpeg", "jpg"}},
	{"image/webp", []string{"webp"}},
	{"image/png", []string{"png"}},
	{"video/mp4", []string{"mp4", "m4v"}},
	{"audio/x-m4a", []string{"m4a"}},
	{"audio/mp3", []string{"mp3"}},
	{"video/ogg", []string{"ogv", "ogm"}},
	{"audio/ogg", []string{"ogg", "oga", "opus"}},
	{"video/webm", []string{"webm"}},
	{"audio/webm", []string{"webm"}},
	{"audio/wav", []string{"wav"}},
	{"application/xhtml+xml", []string{"xhtml", "xht", "xhtm"}},
	{"application/x-chrome-extension", []string{"crx"}},
	{"multipart/related", []string{"mhtml", "mht"}},
}

// secondaryMappings catch types we can deduce ourselves but still want the
// platform registry to be able to override.
var secondaryMappings = []mapping{
	{"application/octet-stream", []string{"exe", "com", "bin"}},
	{"application/gzip", []string{"gz"}},
	{"application/pdf", []string{"pdf"}},
	{"application/postscript", []string{"ps", "eps", "ai"}},
	{"application/javascript", []string{"js"}},
	{"application/font-woff", []string{"woff"}},
	{"image/bmp", []string{"bmp"}},
	{"image/x-icon", []string{"ico"}},
	{"image/vnd.microsoft.icon", []string{"ico"}},
	{"image/jpeg", []string{"jfif", "pjpeg", "pjp"}},
	{"image/tiff", []string{"tiff", "tif"}},
	{"image/x-xbitmap", []string{"xbm"}},
	{"image/svg+xml", []string{"svg", "svgz"}},
	{"image/x-png", []string{"png"}},
	{"message/rfc822", []string{"eml"}},
	{"text/plain", []string{"txt", "text"}},
	{"text/html", []string{"ehtml"}},
	{"application/rss+xml", []string{"rss"}},
	{"application/rdf+xml", []string{"rdf"}},
	{"text/xml", []string{"xsl", "xbl", "xslt"}},
	{"application/vnd.mozilla.xul+xml", []string{"xul"}},
	{"application/x-shockwave-flash", []string{"swf", "swl"}},
	{"application/pkcs7-mime", []string{"p7m", "p7c", "p7z"}},
	{"application/pkcs7-signature", []string{"p7s"}},
	{"application/x-mpegurl", []string{"m3u8"}},
	{"application/epub+zip", []string{"epub"}},
}

var standardImageTypes = []string{
	"image/bmp",
	"image/cis-cod",
	"image/gif",
	"image/ief",
	"image/jpeg",
	"image/webp",
	"image/pict",
	"image/pipeg",
	"image/png",
	"image/svg+xml",
	"image/tiff",
	"image/vnd.microsoft.icon",
	"image/x-cmu-raster",
	"image/x-cmx",
	"image/x-icon",
	"image/x-portable-anymap",
	"image/x-portable-bitmap",
	"image/x-portable-graymap",
	"image/x-portable-pixmap",
	"image/x-rgb",
	"image/x-xbitmap",
	"image/x-xpixmap",
	"image/x-xwindowdump",
}

var standardAudioTypes = []string{
	"audio/aac",
	"audio/aiff",
	"audio/amr",
	"audio/basic",
	"audio/midi",
	"audio/mp3",
	"audio/mp4",
	"audio/mpeg",
	"audio/mpeg3",
	"audio/ogg",
	"audio/vorbis",
	"audio/wav",
	"audio/webm",
	"audio/x-m4a",
	"audio/x-ms-wma",
	"audio/vnd.rn-realaudio",
	"audio/vnd.wave",
}

var standardVideoTypes = []string{
	"video/avi",
	"video/divx",
	"video/flc",
	"video/mp4",
	"video/mpeg",
	"video/ogg",
	"video/quicktime",
	"video/sd-video",
	"video/webm",
	"video/x-dv",
	"video/x-m4v",
	"video/x-mpeg",
	"video/x-ms-asf",
	"video/x-ms-wmv",
}

// standardGroup curates the fully-qualified types enumerated for a top-level
// wildcard such as image/*.
type standardGroup struct {
	prefix string // includes the trailing slash
	types  []string
}

// An unrecognized prefix falls through to the last group. ExtensionsForType
// depends on that ordering.
var standardGroups = []standardGroup{
	{"image/", standardImageTypes},
	{"audio/", standardAudioTypes},
	{"video/", standardVideoTypes},
}

// StandardTypes returns every curated wildcard-group type. The server uses it
// to pre-warm the platform registry cache.
func StandardTypes() []string {
	var types []string
	for _, g := range standardGroups {
		types = append(types, g.types...)
	}
	return types
}

// Registered top-level media types, per
// https://www.iana.org/assignments/media-types/media-types.xhtml
var legalTopLevelTypes = []string{
	"application",
	"audio",
	"example",
	"image",
	"message",
	"model",
	"multipart",
	"text",
	"video",
}
