// Package projection derives read-only views of a brief: the flattened
// tabular row, the rendered document, the terminal summary, the scope draft
// and the shareable snapshot. Projections never mutate the record.
package projection

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

// TimestampLayout is the es-style layout used for the row timestamp.
const TimestampLayout = "2/1/2006, 15:04:05"

// Headers returns the column names of the tabular projection, in the same
// order Row emits values. The first column is the submission timestamp; the
// remaining 32 follow step order.
func Headers() []string {
	return []string{
		"Timestamp",
		"Nombre Completo",
		"Nombre Preferido",
		"Especialidad",
		"Ciudades",
		"Años de Experiencia",
		"Percepción Deseada",
		"Qué NO Eres",
		"Filosofía",
		"Procedimientos Favoritos",
		"Servicios de Alto Valor",
		"Servicios Accesibles",
		"Edad Promedio Paciente",
		"Género Predominante",
		"Miedos Comunes",
		"Qué Te Hace Diferente",
		"Tecnologías Clave",
		"Objetivos Principales",
		"Consultas Nuevas Mensuales",
		"Cuentas Inspiradoras",
		"Por Qué Elegiste Especialidad",
		"Caso que Te Marcó",
		"Frase Común",
		"Visión a 5 Años",
		"Mito a Derribar",
		"Preguntas Frecuentes",
		"Tema de Curiosidad",
		"Ha Hecho Anuncios",
		"Plataformas Usadas",
		"Inversión Mensual",
		"Resultados Obtenidos",
		"Formatos que Funcionaron",
		"Qué No Funcionó",
	}
}

// Row flattens the brief into the tabular projection. Lists join with ", ",
// numbers render decimal, the ads flag renders "Sí"/"No". Empty fields stay
// empty strings so the column count is invariant.
func Row(b brief.Brief, at time.Time) []string {
	return []string{
		at.Format(TimestampLayout),

		b.Step1.FullName,
		b.Step1.PreferredName,
		b.Step1.Specialty,
		joinList(b.Step1.Cities),
		intField(b.Step1.YearsExperience),

		joinPerceptions(b.Step2.Perception),
		b.Step2.WhatNotAre,
		b.Step2.Philosophy,

		joinList(b.Step3.FavoriteProcedures),
		joinList(b.Step3.HighValueServices),
		joinList(b.Step3.AccessibleServices),

		b.Step4.AverageAge,
		string(b.Step4.PredominantGender),
		joinList(b.Step4.CommonFears),

		b.Step5.WhatMakesDifferent,
		joinList(b.Step5.KeyTechnologies),

		joinObjectives(b.Step6.MainObjective),
		intField(b.Step6.MonthlyNewConsultations),
		joinList(b.Step6.InspiringAccounts),

		b.Step7.WhySpecialty,
		b.Step7.MarkedCase,
		b.Step7.CommonPhrase,
		b.Step7.FiveYearVision,
		b.Step7.MythToDebunk,
		joinList(b.Step7.FrequentQuestions),
		b.Step7.CuriosityTopic,

		i18n.YesNo(i18n.LocaleES, b.Step8.HasDoneAds),
		joinList(b.Step8.Platforms),
		b.Step8.InvestmentAmount,
		b.Step8.Results,
		joinList(b.Step8.BestFormats),
		b.Step8.WhatDidntWork,
	}
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}

func joinPerceptions(values []brief.Perception) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return strings.Join(out, ", ")
}

func joinObjectives(values []brief.Objective) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return strings.Join(out, ", ")
}

func intField(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}
