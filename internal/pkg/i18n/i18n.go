package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported - языки встроенных каталогов. Первый используется по умолчанию.
var Supported = []language.Tag{
	language.English,
	language.Swedish,
}

var matcher = language.NewMatcher(Supported)

// Match подбирает поддерживаемый язык по локали домохозяйства или Accept-Language.
func Match(locales ...string) language.Tag {
	tag, _ := language.MatchStrings(matcher, locales...)
	base, _ := tag.Base()
	for _, supported := range Supported {
		if b, _ := supported.Base(); b == base {
			return supported
		}
	}
	return Supported[0]
}

func Printer(locales ...string) *message.Printer {
	return message.NewPrinter(Match(locales...))
}

// Entry - перевод одного ключа каталога.
type Entry struct {
	Key     string
	English string
	Swedish string
}

// Register добавляет переводы в каталог по умолчанию.
func Register(entries ...Entry) {
	for _, e := range entries {
		_ = message.SetString(language.English, e.Key, e.English)
		if e.Swedish != "" {
			_ = message.SetString(language.Swedish, e.Key, e.Swedish)
		}
	}
}
