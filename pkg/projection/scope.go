package projection

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

type scopeLabels struct {
	title        string
	client       string
	specialty    string
	objectives   string
	services     string
	channels     string
	budget       string
	deliverables string
	assumptions  string
	exclusions   string
	contact      string
	generatedOn  string
	briefID      string
}

var scopeES = scopeLabels{
	title:        "DRAFT DE ALCANCE - BRAND BRIEF MÉDICO",
	client:       "Cliente",
	specialty:    "Especialidad",
	objectives:   "Objetivos",
	services:     "Servicios a Promover",
	channels:     "Canales Prioritarios",
	budget:       "Presupuesto Mensual",
	deliverables: "Entregables",
	assumptions:  "Supuestos",
	exclusions:   "Exclusiones",
	contact:      "Contacto",
	generatedOn:  "Generado el",
	briefID:      "ID Brief",
}

var scopeEN = scopeLabels{
	title:        "SCOPE DRAFT - MEDICAL BRAND BRIEF",
	client:       "Client",
	specialty:    "Specialty",
	objectives:   "Objectives",
	services:     "Services to Promote",
	channels:     "Priority Channels",
	budget:       "Monthly Budget",
	deliverables: "Deliverables",
	assumptions:  "Assumptions",
	exclusions:   "Exclusions",
	contact:      "Contact",
	generatedOn:  "Generated on",
	briefID:      "Brief ID",
}

// ScopeDraft builds the engagement scope text handed to the agency team
// after a brief is reviewed. The deliverable, assumption and exclusion
// blocks are fixed boilerplate; everything else interpolates the record.
func ScopeDraft(b brief.Brief, locale i18n.Locale, at time.Time) string {
	labels := scopeES
	if locale == i18n.LocaleEN {
		labels = scopeEN
	}
	na := i18n.NotSpecified(locale)

	orNA := func(value string) string {
		if value == "" {
			return na
		}
		return value
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n=====================================\n\n", labels.title)
	fmt.Fprintf(&sb, "%s: %s\n", labels.client, orNA(b.Step1.FullName))
	fmt.Fprintf(&sb, "%s: %s\n", labels.specialty, orNA(b.Step1.Specialty))
	fmt.Fprintf(&sb, "%s: %s\n", labels.objectives, orNA(joinList(i18n.DisplayTokens(locale, perceptionTokens(b.Step2.Perception)))))
	fmt.Fprintf(&sb, "%s: %s\n", labels.services, orNA(joinList(b.Step3.FavoriteProcedures)))
	fmt.Fprintf(&sb, "%s: %s\n", labels.channels, orNA(joinList(b.Step5.KeyTechnologies)))
	fmt.Fprintf(&sb, "%s: %s\n\n", labels.budget, orNA(intField(b.Step6.MonthlyNewConsultations)))

	fmt.Fprintf(&sb, "%s:\n", labels.deliverables)
	sb.WriteString("- Estrategia de marca médica\n")
	sb.WriteString("- Plan de contenido educativo\n")
	sb.WriteString("- Campañas publicitarias segmentadas\n")
	sb.WriteString("- Optimización de conversión\n")
	sb.WriteString("- Reportes de rendimiento\n\n")

	fmt.Fprintf(&sb, "%s:\n", labels.assumptions)
	sb.WriteString("- Cliente proporcionará contenido médico aprobado\n")
	sb.WriteString("- Acceso a métricas de la clínica\n")
	sb.WriteString("- Colaboración del equipo médico para revisión\n")
	sb.WriteString("- Presupuesto aprobado según rango especificado\n\n")

	fmt.Fprintf(&sb, "%s:\n", labels.exclusions)
	sb.WriteString("- Desarrollo de sitio web (si no existe)\n")
	sb.WriteString("- Fotografía profesional (salvo especificado)\n")
	sb.WriteString("- Producción de video (salvo especificado)\n")
	sb.WriteString("- Gestión de redes sociales (solo estrategia)\n\n")

	fmt.Fprintf(&sb, "%s:\n", labels.contact)
	fmt.Fprintf(&sb, "Marketing: %s\n", orNA(joinList(b.Step6.InspiringAccounts)))
	fmt.Fprintf(&sb, "Administración: %s\n", orNA(joinList(i18n.DisplayTokens(locale, objectiveTokens(b.Step6.MainObjective)))))
	fmt.Fprintf(&sb, "Compliance: %s\n\n", orNA(intField(b.Step6.MonthlyNewConsultations)))

	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "%s: %s\n", labels.generatedOn, at.Format("2/1/2006"))
	fmt.Fprintf(&sb, "%s: %s\n", labels.briefID, orNA(b.ID))

	return sb.String()
}
