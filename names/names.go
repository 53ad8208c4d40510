// Package names provides pre-validated restricted names and ready-made
// media types for common formats, usable with mediatype.New and
// mediatype.NewSuffixed without going through the parser.
package names

import "github.com/pior/mediatype"

// Top-level type names.
const (
	Application = "application"
	Audio       = "audio"
	Font        = "font"
	Image       = "image"
	Message     = "message"
	Model       = "model"
	Multipart   = "multipart"
	Text        = "text"
	Video       = "video"
)

// Subtype and suffix names.
const (
	CSS            = "css"
	CSV            = "csv"
	FormData       = "form-data"
	FormURLEncoded = "x-www-form-urlencoded"
	GIF            = "gif"
	HTML           = "html"
	JavaScript     = "javascript"
	JPEG           = "jpeg"
	JSON           = "json"
	LD             = "ld"
	Markdown       = "markdown"
	MP4            = "mp4"
	MPEG           = "mpeg"
	OctetStream    = "octet-stream"
	Ogg            = "ogg"
	PDF            = "pdf"
	Plain          = "plain"
	PNG            = "png"
	SVG            = "svg"
	WebP           = "webp"
	XML            = "xml"
	Zip            = "zip"
)

// Parameter names.
const (
	Boundary = "boundary"
	Charset  = "charset"
	Version  = "version"
)

// Common media types, assembled from the constants above.
var (
	ApplicationJSON        = mediatype.New(Application, JSON)
	ApplicationLDJSON      = mediatype.NewSuffixed(Application, LD, JSON)
	ApplicationOctetStream = mediatype.New(Application, OctetStream)
	ApplicationPDF         = mediatype.New(Application, PDF)
	ApplicationXML         = mediatype.New(Application, XML)
	ApplicationZip         = mediatype.New(Application, Zip)
	FormURLEncodedType     = mediatype.New(Application, FormURLEncoded)
	ImageGIF               = mediatype.New(Image, GIF)
	ImageJPEG              = mediatype.New(Image, JPEG)
	ImagePNG               = mediatype.New(Image, PNG)
	ImageSVGXML            = mediatype.NewSuffixed(Image, SVG, XML)
	ImageWebP              = mediatype.New(Image, WebP)
	MultipartFormData      = mediatype.New(Multipart, FormData)
	TextCSS                = mediatype.New(Text, CSS)
	TextCSV                = mediatype.New(Text, CSV)
	TextHTML               = mediatype.New(Text, HTML)
	TextJavaScript         = mediatype.New(Text, JavaScript)
	TextMarkdown           = mediatype.New(Text, Markdown)
	TextPlain              = mediatype.New(Text, Plain)
	VideoMP4               = mediatype.New(Video, MP4)
)
