package mimeutil

import "strings"

// AppendMultipartField appends one form-data field to a multipart body under
// construction. The Content-Type line is emitted only when contentType is
// non-empty. Neither name nor value is escaped; the caller owns
// boundary-safety of its inputs.
func AppendMultipartField(b *strings.Builder, boundary, name, value, contentType string) {
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Disposition: form-data; name=\"" + name + "\"\r\n")
	if contentType != "" {
		b.WriteString("Content-Type: " + contentType + "\r\n")
	}
	b.WriteString("\r\n" + value + "\r\n")
}

// AppendMultipartFinalDelimiter terminates a multipart body.
func AppendMultipartFinalDelimiter(b *strings.Builder, boundary string) {
	b.WriteString("--" + boundary + "--\r\n")
}
