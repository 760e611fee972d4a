// Package i18n provides internationalization support for the packing service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Translatef translates key and formats it with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the Accept-Language header,
// e.g. "pt-BR,pt;q=0.9" yields "pt". Unsupported languages yield DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	first := strings.Split(acceptLang, ",")[0]
	lang := strings.TrimSpace(strings.Split(first, ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not found",
		ErrKeyTripNotFound:       "Trip not found",
		ErrKeyBagNotFound:        "Trip or bag not found",
		ErrKeyClothingNotFound:   "Clothing item not found",
		ErrKeyConflict:           "Conflict",
		ErrKeyBagFull:            "The %s is full. Remove some items or choose a different bag.",
		ErrKeyDuplicateInBag:     "This item is already in the %s.",
		ErrKeyAlreadyPacked:      "This item is already packed in the %s.",
		ErrKeyWeatherUnavailable: "Weather data is currently unavailable",
		ErrKeyServiceUnavailable: "Service temporarily unavailable, please try again later",
		ErrKeyTimeout:            "The request took too long",
	},
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyTripNotFound:       "Viagem não encontrada",
		ErrKeyBagNotFound:        "Viagem ou mala não encontrada",
		ErrKeyClothingNotFound:   "Peça de roupa não encontrada",
		ErrKeyConflict:           "Conflito",
		ErrKeyBagFull:            "A %s está cheia. Remova alguns itens ou escolha outra mala.",
		ErrKeyDuplicateInBag:     "Este item já está na %s.",
		ErrKeyAlreadyPacked:      "Este item já foi guardado na %s.",
		ErrKeyWeatherUnavailable: "Dados do clima indisponíveis no momento",
		ErrKeyServiceUnavailable: "Serviço temporariamente indisponível, tente novamente mais tarde",
		ErrKeyTimeout:            "A requisição demorou demais",
	},
	"nl": {
		ErrKeyInvalidRequest:     "Ongeldig verzoek",
		ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
		ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
		ErrKeyNotFound:           "Niet gevonden",
		ErrKeyTripNotFound:       "Reis niet gevonden",
		ErrKeyBagNotFound:        "Reis of tas niet gevonden",
		ErrKeyClothingNotFound:   "Kledingstuk niet gevonden",
		ErrKeyConflict:           "Conflict",
		ErrKeyBagFull:            "De %s is vol. Haal wat items eruit of kies een andere tas.",
		ErrKeyDuplicateInBag:     "Dit item zit al in de %s.",
		ErrKeyAlreadyPacked:      "Dit item is al ingepakt in de %s.",
		ErrKeyWeatherUnavailable: "Weergegevens zijn momenteel niet beschikbaar",
		ErrKeyServiceUnavailable: "Dienst tijdelijk niet beschikbaar, probeer het later opnieuw",
		ErrKeyTimeout:            "Het verzoek duurde te lang",
	},
}
