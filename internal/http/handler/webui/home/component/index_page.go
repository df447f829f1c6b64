package component

import (
	"embed"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/signin/internal/http/handler/webui/common/component"
	"github.com/bornholm/signin/internal/store"
)

//go:embed templates/*.html
var templates embed.FS

var indexPage = commonComp.MustParse(templates, "templates/index_page.html")

type IndexPageVModel struct {
	DisplayName string
	Email       string
	Provider    string
	Events      []*store.SignInEvent
}

func IndexPage(vmodel IndexPageVModel) templ.Component {
	return commonComp.Render(indexPage, func(page commonComp.Page) any {
		return struct {
			commonComp.Page
			IndexPageVModel
		}{page, vmodel}
	})
}
