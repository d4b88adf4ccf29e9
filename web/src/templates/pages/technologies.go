package pages

import (
	"fmt"

	"github.com/nfrund/foodgram/internal/assets"
	"github.com/nfrund/foodgram/web/src/templates/layouts"
	"github.com/nfrund/foodgram/web/src/templates/styles"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Technology is one entry of the technology stack list.
type Technology struct {
	Name        string
	Description string
}

// TechnologiesImage is the public asset shown next to the stack description.
const TechnologiesImage = "technologies.jpg"

// TechnologiesMeta is the document metadata for the technologies page.
// The preview image depends on where the site is hosted, see TechnologiesPageMeta.
var TechnologiesMeta = layouts.PageMeta{
	Title:         "Технологии",
	Description:   "Фудграм - Технологии",
	OGTitle:       "Технологии",
	OGDescription: "Фудграм - Технологии",
	Stylesheets:   []string{"/static/css/" + technologiesStyles.Scope() + ".css"},
}

// TechnologiesPageMeta returns TechnologiesMeta with og:image pointing at the
// page image on the site hosted at baseURL.
func TechnologiesPageMeta(baseURL string) (layouts.PageMeta, error) {
	image, err := assets.AbsoluteURL(baseURL, TechnologiesImage)
	if err != nil {
		return layouts.PageMeta{}, fmt.Errorf("technologies preview image: %w", err)
	}
	meta := TechnologiesMeta
	meta.OGImage = image
	return meta, nil
}

// TechnologyStack lists the technologies the project is built on, in display order.
var TechnologyStack = []Technology{
	{Name: "Python", Description: "язык программирования, обеспечивающий гибкость и производительность."},
	{Name: "Django", Description: "мощный веб-фреймворк, который лёг в основу серверной части."},
	{Name: "Django REST Framework", Description: "расширение для создания REST API, которое сделало интеграцию с фронтендом бесшовной."},
	{Name: "Djoser", Description: "библиотека для удобного управления регистрацией и аутентификацией пользователей."},
	{Name: "PostgreSQL", Description: "надёжная реляционная база данных для хранения рецептов и информации о пользователях."},
	{Name: "Docker", Description: "контейнеризация проекта, что позволяет запускать его на любом сервере без лишних настроек."},
	{Name: "Nginx", Description: "веб-сервер, который отвечает за балансировку нагрузки и быструю доставку контента."},
}

var technologiesStyles = styles.New("technologies",
	"title", "subtitle", "content", "text", "techList", "textItem", "imageContainer", "techImage",
)

// Technologies renders the technologies page content.
func Technologies() cmp.Node {
	s := technologiesStyles
	return layouts.Main(
		layouts.Container(
			g.H1(s.Class("title"), cmp.Text("Технологии")),
			g.Div(
				s.Class("content"),
				g.Div(
					g.H2(s.Class("subtitle"), cmp.Text("Ключевые технологии")),
					g.Div(
						s.Class("text"),
						g.Ul(
							s.Class("techList"),
							cmp.Map(TechnologyStack, func(t Technology) cmp.Node {
								return g.Li(s.Class("textItem"), g.Strong(cmp.Text(t.Name)), cmp.Text(" — "+t.Description))
							}),
						),
					),
					g.H2(s.Class("subtitle"), cmp.Text("Почему эти технологии?")),
					g.P(
						s.Class("textItem"),
						cmp.Text("Каждая из выбранных технологий была выбрана исходя из своих уникальных преимуществ. "+
							"Вместе они составляют надёжный стек для разработки сложных веб-приложений с высокой доступностью "+
							"и возможностью масштабирования."),
					),
					g.P(
						s.Class("textItem"),
						cmp.Text("Благодаря этим инструментам проект получился не только функциональным, но и легко поддерживаемым, "+
							"что открывает широкие перспективы для его дальнейшего развития."),
					),
				),
				g.Div(
					s.Class("imageContainer"),
					g.Img(g.Src("/"+TechnologiesImage), g.Alt("Технологии проекта"), s.Class("techImage")),
				),
			),
		),
	)
}

// TechnologiesAssets lists the public assets the technologies page references.
func TechnologiesAssets() []string {
	return []string{TechnologiesImage}
}
