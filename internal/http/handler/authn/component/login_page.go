package component

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/signin/internal/http/handler/webui/common/component"
	"github.com/bornholm/signin/internal/http/handler/webui/common/form"
)

//go:embed templates/*.html
var templates embed.FS

var loginPage = commonComp.MustParse(templates, "templates/login_page.html")

type Provider struct {
	ID    string
	Label string
	// Icon is either an asset name or an absolute url
	Icon string
}

type LoginPageVModel struct {
	Providers    []Provider
	Email        form.FieldContext
	Password     form.FieldContext
	Error        string
	ShowPassword bool
	Toasts       []string
	Tagline      template.HTML
	SignUpURL    string
	CSRFField    template.HTML
}

func LoginPage(vmodel LoginPageVModel) templ.Component {
	return commonComp.Render(loginPage, func(page commonComp.Page) any {
		return struct {
			commonComp.Page
			LoginPageVModel
		}{page, vmodel}
	})
}
