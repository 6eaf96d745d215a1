// Package i18n holds the label catalogs used by projections and the
// terminal wizard. Spanish is the base catalog; English overlays it and any
// missing key falls back to Spanish, then to the key itself.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale selects a label catalog.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// DefaultLocale matches the original audience of the tool.
const DefaultLocale = LocaleES

// ParseLocale validates a locale tag from config or flags.
func ParseLocale(value string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(value))) {
	case LocaleES:
		return LocaleES, nil
	case LocaleEN:
		return LocaleEN, nil
	case "":
		return DefaultLocale, nil
	}
	return "", fmt.Errorf("i18n: unsupported locale %q", value)
}

// Catalog maps label keys to display strings.
type Catalog map[string]string

// T resolves a label for the locale, falling back to Spanish and finally to
// the key itself so a missing entry never renders as an empty string.
func T(locale Locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if label, ok := catalog[key]; ok {
			return label
		}
	}
	if label, ok := catalogs[DefaultLocale][key]; ok {
		return label
	}
	return key
}

// NotSpecified is the placeholder shown for empty optional fields.
func NotSpecified(locale Locale) string {
	return T(locale, "notSpecified")
}

// YesNo renders a boolean the way the tabular and document projections
// expect it.
func YesNo(locale Locale, value bool) string {
	if value {
		return T(locale, "yes")
	}
	return T(locale, "no")
}

var titleCaser = cases.Title(language.Spanish)

// DisplayToken renders a closed-set enum token for humans. Known tokens use
// their catalog label; unknown ones degrade to a title-cased form of the
// token ("cercano_humano" becomes "Cercano Humano").
func DisplayToken(locale Locale, token string) string {
	if label := T(locale, "token."+token); label != "token."+token {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(token, "_", " "))
}

// DisplayTokens maps DisplayToken over a slice, preserving order.
func DisplayTokens(locale Locale, tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, DisplayToken(locale, token))
	}
	return out
}

var catalogs = map[Locale]Catalog{
	LocaleES: {
		"appTitle":    "SAINT Brand Brief",
		"appSubtitle": "Herramienta de Brief Médico",

		"back":              "Atrás",
		"next":              "Siguiente",
		"save":              "Guardar",
		"clear":             "Limpiar",
		"loadDraft":         "Cargar borrador",
		"startFromTemplate": "Empezar con plantilla",
		"finish":            "Finalizar",

		"step1Title":    "Datos básicos",
		"step1Subtitle": "Información personal y profesional",
		"step2Title":    "Identidad y estilo",
		"step2Subtitle": "Cómo quieres ser percibido",
		"step3Title":    "Procedimientos y negocio",
		"step3Subtitle": "Servicios y valor",
		"step4Title":    "Paciente ideal",
		"step4Subtitle": "Tu público objetivo",
		"step5Title":    "Diferenciadores",
		"step5Subtitle": "Qué te hace único",
		"step6Title":    "Metas de marketing",
		"step6Subtitle": "Objetivos y referencias",
		"step7Title":    "Storytelling & Creative Vault",
		"step7Subtitle": "Historias y contenido",
		"step8Title":    "Historial de anuncios",
		"step8Subtitle": "Experiencia publicitaria",
		"summaryTitle":  "Resumen",

		"fullName":        "Nombre completo",
		"preferredName":   "Nombre preferido para comunicación",
		"specialty":       "Especialidad",
		"cities":          "Ciudades donde consultas",
		"yearsExperience": "Años de experiencia",

		"perception": "Cómo quieres que te perciban (elige 3)",
		"whatNotAre": "Qué NO eres como médico",
		"philosophy": "Tu filosofía como médico en una frase",

		"favoriteProcedures": "Procedimientos favoritos (2-3 que disfrutas más)",
		"highValueServices":  "Servicios de mayor valor o margen",
		"accessibleServices": "Servicios accesibles o 'gancho'",

		"averageAge":        "Edad promedio de tu paciente ideal",
		"predominantGender": "Género predominante",
		"commonFears":       "Miedos más comunes (hasta 3)",

		"whatMakesDifferent": "Qué te hace diferente",
		"keyTechnologies":    "Tecnologías, técnicas o certificaciones clave",

		"mainObjective":           "Objetivo principal para los próximos 6 meses",
		"monthlyNewConsultations": "Consultas nuevas al mes que te gustaría generar",
		"inspiringAccounts":       "Médicos, marcas o cuentas que te inspiran",

		"whySpecialty":      "Por qué elegiste tu especialidad",
		"markedCase":        "Caso de paciente que te marcó",
		"commonPhrase":      "Frase que sueles repetirle a tus pacientes",
		"fiveYearVision":    "Dónde te gustaría estar en 5 años",
		"mythToDebunk":      "Mayor mito que quieres derribar",
		"frequentQuestions": "Preguntas que te hacen SIEMPRE en consulta",
		"curiosityTopic":    "Procedimiento o tema que genera más curiosidad",

		"hasDoneAds":       "¿Has hecho anuncios antes?",
		"platforms":        "Plataformas utilizadas",
		"investmentAmount": "Cuánto invertías",
		"results":          "Qué resultados obtenías",
		"bestFormats":      "Formatos que conectaron mejor",
		"whatDidntWork":    "Qué definitivamente NO funcionó",

		"yes":          "Sí",
		"no":           "No",
		"notSpecified": "No especificado",

		"savedSuccessfully":     "Guardado exitosamente",
		"submittedSuccessfully": "Enviado exitosamente",
		"exportedSuccessfully":  "Exportado exitosamente",
		"errorOccurred":         "Ocurrió un error",
		"retry":                 "¿Reintentar?",

		"token.cercano_humano":        "Cercano y humano",
		"token.elegante_aspiracional": "Elegante y aspiracional",
		"token.innovador_tecnologico": "Innovador y tecnológico",
		"token.profesional_tecnico":   "Profesional técnico",
		"token.casual_directo":        "Casual y directo",
		"token.mujer":                 "Mujer",
		"token.hombre":                "Hombre",
		"token.ambos":                 "Ambos",
		"token.mas_consultas":         "Más consultas",
		"token.mejor_reputacion":      "Mejor reputación",
		"token.nuevos_servicios":      "Nuevos servicios",
		"token.expansion_geografica":  "Expansión geográfica",
		"token.liderazgo_opinion":     "Liderazgo de opinión",
	},
	LocaleEN: {
		"appTitle":    "SAINT Brand Brief",
		"appSubtitle": "Medical Brief Tool",

		"back":              "Back",
		"next":              "Next",
		"save":              "Save",
		"clear":             "Clear",
		"loadDraft":         "Load draft",
		"startFromTemplate": "Start with template",
		"finish":            "Finish",

		"step1Title":    "Basic Information",
		"step1Subtitle": "Personal and professional information",
		"step2Title":    "Identity and Style",
		"step2Subtitle": "How you want to be perceived",
		"step3Title":    "Procedures and Business",
		"step3Subtitle": "Services and value",
		"step4Title":    "Ideal Patient",
		"step4Subtitle": "Your target audience",
		"step5Title":    "Differentiators",
		"step5Subtitle": "What makes you unique",
		"step6Title":    "Marketing Goals",
		"step6Subtitle": "Objectives and references",
		"step7Title":    "Storytelling & Creative Vault",
		"step7Subtitle": "Stories and content",
		"step8Title":    "Ad History",
		"step8Subtitle": "Advertising experience",
		"summaryTitle":  "Summary",

		"fullName":        "Full name",
		"preferredName":   "Preferred name for communication",
		"specialty":       "Specialty",
		"cities":          "Cities where you practice",
		"yearsExperience": "Years of experience",

		"perception": "How you want to be perceived (choose 3)",
		"whatNotAre": "What you are NOT as a doctor",
		"philosophy": "Your philosophy as a doctor in one phrase",

		"favoriteProcedures": "Favorite procedures (2-3 you enjoy most)",
		"highValueServices":  "High value or margin services",
		"accessibleServices": "Accessible or 'hook' services",

		"averageAge":        "Average age of your ideal patient",
		"predominantGender": "Predominant gender",
		"commonFears":       "Most common fears (up to 3)",

		"whatMakesDifferent": "What makes you different",
		"keyTechnologies":    "Key technologies, techniques or certifications",

		"mainObjective":           "Main objective for the next 6 months",
		"monthlyNewConsultations": "New monthly consultations you'd like to generate",
		"inspiringAccounts":       "Doctors, brands or accounts that inspire you",

		"whySpecialty":      "Why you chose your specialty",
		"markedCase":        "Patient case that marked you",
		"commonPhrase":      "Phrase you usually repeat to your patients",
		"fiveYearVision":    "Where you'd like to be in 5 years",
		"mythToDebunk":      "Biggest myth you want to debunk",
		"frequentQuestions": "Questions you're ALWAYS asked in consultation",
		"curiosityTopic":    "Procedure or topic that generates most curiosity",

		"hasDoneAds":       "Have you done ads before?",
		"platforms":        "Platforms used",
		"investmentAmount": "How much you invested",
		"results":          "What results you got",
		"bestFormats":      "Formats that connected best",
		"whatDidntWork":    "What definitely didn't work",

		"yes":          "Yes",
		"no":           "No",
		"notSpecified": "Not specified",

		"savedSuccessfully":     "Saved successfully",
		"submittedSuccessfully": "Submitted successfully",
		"exportedSuccessfully":  "Exported successfully",
		"errorOccurred":         "An error occurred",
		"retry":                 "Retry?",

		"token.cercano_humano":        "Close and human",
		"token.elegante_aspiracional": "Elegant and aspirational",
		"token.innovador_tecnologico": "Innovative and technological",
		"token.profesional_tecnico":   "Professional technical",
		"token.casual_directo":        "Casual and direct",
		"token.mujer":                 "Female",
		"token.hombre":                "Male",
		"token.ambos":                 "Both",
		"token.mas_consultas":         "More consultations",
		"token.mejor_reputacion":      "Better reputation",
		"token.nuevos_servicios":      "New services",
		"token.expansion_geografica":  "Geographic expansion",
		"token.liderazgo_opinion":     "Opinion leadership",
	},
}
