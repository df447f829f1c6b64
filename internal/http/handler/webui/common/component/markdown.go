package component

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// Markdown converts the given source to HTML. Raw HTML embedded in the source
// is not rendered.
func Markdown(source string) (template.HTML, error) {
	var buf bytes.Buffer

	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buf.String()), nil
}
