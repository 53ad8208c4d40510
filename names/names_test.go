package names

import (
	"testing"

	"github.com/pior/mediatype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameConstantsAreValid(t *testing.T) {
	constants := []string{
		Application, Audio, Font, Image, Message, Model, Multipart, Text, Video,
		CSS, CSV, FormData, FormURLEncoded, GIF, HTML, JavaScript, JPEG, JSON,
		LD, Markdown, MP4, MPEG, OctetStream, Ogg, PDF, Plain, PNG, SVG, WebP,
		XML, Zip,
		Boundary, Charset, Version,
	}
	for _, name := range constants {
		assert.NoError(t, mediatype.ValidateName(name), "constant %q must be a valid restricted name", name)
	}
}

func TestMediaTypeValuesMatchParser(t *testing.T) {
	tests := []struct {
		value mediatype.MediaType
		text  string
	}{
		{ApplicationJSON, "application/json"},
		{ApplicationLDJSON, "application/ld+json"},
		{ApplicationOctetStream, "application/octet-stream"},
		{FormURLEncodedType, "application/x-www-form-urlencoded"},
		{ImageSVGXML, "image/svg+xml"},
		{MultipartFormData, "multipart/form-data"},
		{TextPlain, "text/plain"},
	}
	for _, tt := range tests {
		parsed, err := mediatype.Parse(tt.text)
		require.NoError(t, err)
		assert.True(t, mediatype.Equal(tt.value, parsed), "%s", tt.text)
		assert.Equal(t, tt.text, tt.value.String())
	}
}
