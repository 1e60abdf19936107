package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerLock sync.RWMutex
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("fisa: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage replaces the locale derived printer with one for an explicit
// BCP 47 tag, such as "en-US" or "de".
func SetLanguage(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	printerLock.Lock()
	printer = message.NewPrinter(lang)
	printerLock.Unlock()

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerLock.RLock()
	defer printerLock.RUnlock()

	return printer.Sprintf(key, args...)
}
