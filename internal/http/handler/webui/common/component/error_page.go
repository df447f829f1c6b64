package component

import "github.com/a-h/templ"

type ErrorPageVModel struct {
	Message string
}

var errorPage = MustParse(templates, "templates/error_page.html")

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return Render(errorPage, func(page Page) any {
		return struct {
			Page
			ErrorPageVModel
		}{page, vmodel}
	})
}
