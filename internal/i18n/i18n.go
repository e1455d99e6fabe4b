// Package i18n provides internationalization support for the kit service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
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
	// defaultTranslator is the singleton translator instance.
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
		messages: getDefaultMessages(),
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
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,es;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":             "Invalid request",
			"error.invalid_request_body":        "Invalid request body",
			"error.internal_error":              "An unexpected error occurred",
			"error.unauthorized":                "Unauthorized",
			"error.api_key_required":            "API key is required",
			"error.invalid_api_key":             "Invalid API key",
			"error.forbidden":                   "Forbidden",
			"error.not_found":                   "Not found",
			"error.session_not_found":           "Session not found or expired",
			"error.rate_limit_exceeded":         "Too many requests, please try again later",
			"error.invalid_token":               "Invalid or expired token",
			"error.token_required":              "Authentication token is required",
			"error.upload_too_large":            "Image must be 2MB or smaller",
			"error.upload_dimensions_exceeded":  "Image must be at most 1000x1000 pixels",
			"error.upload_undecodable":          "File is not a recognizable image",
			"error.empty_order":                 "Add at least one item before ordering",
			"error.kit_not_orderable":           "This kit type is coming soon",
			"error.team_not_found":              "Team not found",
			"error.timeout":                     "Request timed out",

			// Success messages
			"success.order_placed": "Order placed successfully",
			"success.team_created": "Team created successfully",
		},
		"es": {
			// Error messages
			"error.invalid_request":             "Solicitud inválida",
			"error.invalid_request_body":        "Cuerpo de la solicitud inválido",
			"error.internal_error":              "Ocurrió un error inesperado",
			"error.unauthorized":                "No autorizado",
			"error.api_key_required":            "Se requiere una clave de API",
			"error.invalid_api_key":             "Clave de API inválida",
			"error.forbidden":                   "Prohibido",
			"error.not_found":                   "No encontrado",
			"error.session_not_found":           "Sesión no encontrada o expirada",
			"error.rate_limit_exceeded":         "Demasiadas solicitudes, inténtelo más tarde",
			"error.invalid_token":               "Token inválido o expirado",
			"error.token_required":              "Se requiere un token de autenticación",
			"error.upload_too_large":            "La imagen debe pesar 2MB o menos",
			"error.upload_dimensions_exceeded":  "La imagen debe medir como máximo 1000x1000 píxeles",
			"error.upload_undecodable":          "El archivo no es una imagen reconocible",
			"error.empty_order":                 "Agregue al menos un artículo antes de pedir",
			"error.kit_not_orderable":           "Este tipo de kit estará disponible pronto",
			"error.team_not_found":              "Equipo no encontrado",
			"error.timeout":                     "La solicitud expiró",

			// Success messages
			"success.order_placed": "Pedido realizado con éxito",
			"success.team_created": "Equipo creado con éxito",
		},
		"fr": {
			// Error messages
			"error.invalid_request":             "Requête invalide",
			"error.invalid_request_body":        "Corps de requête invalide",
			"error.internal_error":              "Une erreur inattendue s'est produite",
			"error.unauthorized":                "Non autorisé",
			"error.api_key_required":            "Une clé API est requise",
			"error.invalid_api_key":             "Clé API invalide",
			"error.forbidden":                   "Interdit",
			"error.not_found":                   "Introuvable",
			"error.session_not_found":           "Session introuvable ou expirée",
			"error.rate_limit_exceeded":         "Trop de requêtes, réessayez plus tard",
			"error.invalid_token":               "Jeton invalide ou expiré",
			"error.token_required":              "Un jeton d'authentification est requis",
			"error.upload_too_large":            "L'image doit faire 2 Mo ou moins",
			"error.upload_dimensions_exceeded":  "L'image doit faire au maximum 1000x1000 pixels",
			"error.upload_undecodable":          "Le fichier n'est pas une image reconnaissable",
			"error.empty_order":                 "Ajoutez au moins un article avant de commander",
			"error.kit_not_orderable":           "Ce type de kit arrive bientôt",
			"error.team_not_found":              "Équipe introuvable",
			"error.timeout":                     "La requête a expiré",

			// Success messages
			"success.order_placed": "Commande passée avec succès",
			"success.team_created": "Équipe créée avec succès",
		},
	}
}
