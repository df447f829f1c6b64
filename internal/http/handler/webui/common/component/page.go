package component

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n"
	"github.com/invopop/ctxi18n/i18n"
)

//go:embed templates/*.html
var templates embed.FS

const layoutTemplate = "layout"

var funcs = template.FuncMap{
	"m": func(kv ...any) i18n.M {
		m := i18n.M{}
		for i := 0; i+1 < len(kv); i += 2 {
			if key, ok := kv[i].(string); ok {
				m[key] = kv[i+1]
			}
		}
		return m
	},
}

var layout = template.Must(template.New("").Funcs(funcs).ParseFS(templates, "templates/layout.html"))

// Page carries the request-scoped helpers every template can call.
type Page struct {
	ctx context.Context
}

func (p Page) T(key string, args ...any) string {
	return i18n.T(p.ctx, key, args...)
}

func (p Page) Lang() string {
	locale := ctxi18n.Locale(p.ctx)
	if locale == nil {
		return "en"
	}

	return string(locale.Code())
}

func (p Page) BaseURL(segments ...string) string {
	return string(BaseURL(p.ctx, WithJoinedPath(segments...)))
}

func (p Page) Asset(name string) string {
	return p.BaseURL("assets", name)
}

func (p Page) Context() context.Context {
	return p.ctx
}

func NewPage(ctx context.Context) Page {
	return Page{ctx: ctx}
}

// MustParse returns a template set made of the shared layout and the page
// templates matching patterns in fsys.
func MustParse(fsys fs.FS, patterns ...string) *template.Template {
	return template.Must(template.Must(layout.Clone()).ParseFS(fsys, patterns...))
}

// Render exposes a page template as a templ component. The data is built at
// render time from the rendering context.
func Render(t *template.Template, data func(page Page) any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.FromGoHTML(t.Lookup(layoutTemplate), data(NewPage(ctx))).Render(ctx, w)
	})
}
