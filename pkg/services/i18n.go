package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MsgLoading          = "content.loading"
	MsgFallback         = "content.fallback"
	MsgNavSpecialties   = "nav.specialties"
	MsgNavGallery       = "nav.gallery"
	MsgNavContacts      = "nav.contacts"
	MsgNavBook          = "nav.book"
	MsgHeroBook         = "hero.book"
	MsgHeroMenu         = "hero.menu"
	MsgWelcome          = "presentation.title"
	MsgSpecialtiesTitle = "specialties.title"
	MsgGalleryTitle     = "gallery.title"
	MsgGalleryAlt       = "gallery.alt"
	MsgCTATitle         = "cta.title"
	MsgCTABody          = "cta.body"
	MsgContactsTitle    = "contacts.title"
	MsgContactsMap      = "contacts.map"
	MsgFooterCopyright  = "footer.copyright"
	MsgFooterPhone      = "footer.phone"
	MsgFooterEmail      = "footer.email"
	MsgFooterWhere      = "footer.where"
)

var supportedLanguages = []language.Tag{language.Italian, language.English}

var catalog = map[language.Tag]map[string]string{
	language.Italian: {
		MsgLoading:          "Caricamento contenuti…",
		MsgFallback:         "Cucina di mare e di terra con ingredienti di qualità e ospitalità familiare.",
		MsgNavSpecialties:   "Specialità",
		MsgNavGallery:       "Galleria",
		MsgNavContacts:      "Contatti",
		MsgNavBook:          "Prenota",
		MsgHeroBook:         "Prenota ora",
		MsgHeroMenu:         "Guarda il menù",
		MsgWelcome:          "Benvenuti",
		MsgSpecialtiesTitle: "Le nostre specialità",
		MsgGalleryTitle:     "Galleria",
		MsgGalleryAlt:       "Galleria",
		MsgCTATitle:         "Prenota un tavolo",
		MsgCTABody:          "Chiama ora e vivi un'esperienza autentica a %s.",
		MsgContactsTitle:    "Contatti e mappa",
		MsgContactsMap:      "Mappa",
		MsgFooterCopyright:  "© %s %s",
		MsgFooterPhone:      "Telefono",
		MsgFooterEmail:      "Email",
		MsgFooterWhere:      "Dove siamo",
	},
	language.English: {
		MsgLoading:          "Loading content…",
		MsgFallback:         "Seafood and meat cuisine with quality ingredients and family hospitality.",
		MsgNavSpecialties:   "Specialties",
		MsgNavGallery:       "Gallery",
		MsgNavContacts:      "Contact",
		MsgNavBook:          "Book",
		MsgHeroBook:         "Book now",
		MsgHeroMenu:         "See the menu",
		MsgWelcome:          "Welcome",
		MsgSpecialtiesTitle: "Our specialties",
		MsgGalleryTitle:     "Gallery",
		MsgGalleryAlt:       "Gallery",
		MsgCTATitle:         "Book a table",
		MsgCTABody:          "Call now for an authentic experience in %s.",
		MsgContactsTitle:    "Contact and map",
		MsgContactsMap:      "Map",
		MsgFooterCopyright:  "© %s %s",
		MsgFooterPhone:      "Phone",
		MsgFooterEmail:      "Email",
		MsgFooterWhere:      "Find us",
	},
}

func init() {
	for tag, messages := range catalog {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic("i18n: " + err.Error())
			}
		}
	}
}

// Translator renders catalog messages in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// NewTranslator picks the closest supported language, Italian otherwise.
func NewTranslator(lang string) Translator {
	tag := language.Italian
	if requested, err := language.Parse(lang); err == nil {
		matcher := language.NewMatcher(supportedLanguages)
		if _, idx, conf := matcher.Match(requested); conf != language.No {
			tag = supportedLanguages[idx]
		}
	}
	return Translator{tag: tag, printer: message.NewPrinter(tag)}
}

func (t Translator) Lang() string {
	return t.tag.String()
}

func (t Translator) T(key message.Reference, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}
