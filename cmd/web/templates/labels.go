package templates

import (
	"golang.org/x/text/language"
	"thirdcoast.systems/typeset/internal/catalog"
)

// SupportedLanguages lists UI locales in fallback order.
var SupportedLanguages = []language.Tag{language.English, language.Russian}

// Labels are the translatable strings of the sidebar.
type Labels struct {
	Heading     string
	Apply       string
	Reset       string
	OpenPanel   string
	ClosePanel  string
	FieldTitles map[catalog.Field]string
}

var labels = map[language.Tag]Labels{
	language.English: {
		Heading:    "Set the parameters",
		Apply:      "Apply",
		Reset:      "Reset",
		OpenPanel:  "Open style settings",
		ClosePanel: "Close style settings",
		FieldTitles: map[catalog.Field]string{
			catalog.FontFamily:      "Font",
			catalog.FontSize:        "Font size",
			catalog.FontColor:       "Font color",
			catalog.BackgroundColor: "Background color",
			catalog.ContentWidth:    "Content width",
		},
	},
	language.Russian: {
		Heading:    "Задайте параметры",
		Apply:      "Применить",
		Reset:      "Сбросить",
		OpenPanel:  "Открыть настройки",
		ClosePanel: "Закрыть настройки",
		FieldTitles: map[catalog.Field]string{
			catalog.FontFamily:      "Шрифт",
			catalog.FontSize:        "Размер шрифта",
			catalog.FontColor:       "Цвет шрифта",
			catalog.BackgroundColor: "Цвет фона",
			catalog.ContentWidth:    "Ширина контента",
		},
	},
}

// LabelsFor returns the labels for tag, English when unsupported.
func LabelsFor(tag language.Tag) Labels {
	if l, ok := labels[tag]; ok {
		return l
	}
	return labels[language.English]
}
