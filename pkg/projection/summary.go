package projection

import (
	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

// SummaryField is one labelled value in the review pane.
type SummaryField struct {
	Label string
	Value string
}

// SummarySection groups the fields of one wizard step.
type SummarySection struct {
	Step   int
	Title  string
	Fields []SummaryField
}

// Summarize projects the brief into the per-step review layout the terminal
// preview shows before final submission. Partially filled records are fine;
// empty values render as the locale's "not specified" placeholder.
func Summarize(b brief.Brief, locale i18n.Locale) []SummarySection {
	na := i18n.NotSpecified(locale)

	text := func(value string) string {
		if value == "" {
			return na
		}
		return value
	}
	list := func(values []string) string {
		if len(values) == 0 {
			return na
		}
		return joinList(values)
	}
	number := func(value int) string {
		if s := intField(value); s != "" {
			return s
		}
		return na
	}

	return []SummarySection{
		{Step: 1, Title: i18n.T(locale, "step1Title"), Fields: []SummaryField{
			{i18n.T(locale, "fullName"), text(b.Step1.FullName)},
			{i18n.T(locale, "preferredName"), text(b.Step1.PreferredName)},
			{i18n.T(locale, "specialty"), text(b.Step1.Specialty)},
			{i18n.T(locale, "cities"), list(b.Step1.Cities)},
			{i18n.T(locale, "yearsExperience"), number(b.Step1.YearsExperience)},
		}},
		{Step: 2, Title: i18n.T(locale, "step2Title"), Fields: []SummaryField{
			{i18n.T(locale, "perception"), list(i18n.DisplayTokens(locale, perceptionTokens(b.Step2.Perception)))},
			{i18n.T(locale, "whatNotAre"), text(b.Step2.WhatNotAre)},
			{i18n.T(locale, "philosophy"), text(b.Step2.Philosophy)},
		}},
		{Step: 3, Title: i18n.T(locale, "step3Title"), Fields: []SummaryField{
			{i18n.T(locale, "favoriteProcedures"), list(b.Step3.FavoriteProcedures)},
			{i18n.T(locale, "highValueServices"), list(b.Step3.HighValueServices)},
			{i18n.T(locale, "accessibleServices"), list(b.Step3.AccessibleServices)},
		}},
		{Step: 4, Title: i18n.T(locale, "step4Title"), Fields: []SummaryField{
			{i18n.T(locale, "averageAge"), text(b.Step4.AverageAge)},
			{i18n.T(locale, "predominantGender"), i18n.DisplayToken(locale, string(b.Step4.PredominantGender))},
			{i18n.T(locale, "commonFears"), list(b.Step4.CommonFears)},
		}},
		{Step: 5, Title: i18n.T(locale, "step5Title"), Fields: []SummaryField{
			{i18n.T(locale, "whatMakesDifferent"), text(b.Step5.WhatMakesDifferent)},
			{i18n.T(locale, "keyTechnologies"), list(b.Step5.KeyTechnologies)},
		}},
		{Step: 6, Title: i18n.T(locale, "step6Title"), Fields: []SummaryField{
			{i18n.T(locale, "mainObjective"), list(i18n.DisplayTokens(locale, objectiveTokens(b.Step6.MainObjective)))},
			{i18n.T(locale, "monthlyNewConsultations"), number(b.Step6.MonthlyNewConsultations)},
			{i18n.T(locale, "inspiringAccounts"), list(b.Step6.InspiringAccounts)},
		}},
		{Step: 7, Title: i18n.T(locale, "step7Title"), Fields: []SummaryField{
			{i18n.T(locale, "whySpecialty"), text(b.Step7.WhySpecialty)},
			{i18n.T(locale, "markedCase"), text(b.Step7.MarkedCase)},
			{i18n.T(locale, "commonPhrase"), text(b.Step7.CommonPhrase)},
			{i18n.T(locale, "fiveYearVision"), text(b.Step7.FiveYearVision)},
			{i18n.T(locale, "mythToDebunk"), text(b.Step7.MythToDebunk)},
			{i18n.T(locale, "frequentQuestions"), list(b.Step7.FrequentQuestions)},
			{i18n.T(locale, "curiosityTopic"), text(b.Step7.CuriosityTopic)},
		}},
		{Step: 8, Title: i18n.T(locale, "step8Title"), Fields: []SummaryField{
			{i18n.T(locale, "hasDoneAds"), i18n.YesNo(locale, b.Step8.HasDoneAds)},
			{i18n.T(locale, "platforms"), list(b.Step8.Platforms)},
			{i18n.T(locale, "investmentAmount"), text(b.Step8.InvestmentAmount)},
			{i18n.T(locale, "results"), text(b.Step8.Results)},
			{i18n.T(locale, "bestFormats"), list(b.Step8.BestFormats)},
			{i18n.T(locale, "whatDidntWork"), text(b.Step8.WhatDidntWork)},
		}},
	}
}

func perceptionTokens(values []brief.Perception) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func objectiveTokens(values []brief.Objective) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
