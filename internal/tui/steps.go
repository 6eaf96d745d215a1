package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

// stepFlow collects one step's record from the driver, seeded with the
// current values so re-editing a step shows what was already entered.
type stepFlow func(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error)

func flowForStep(n int) stepFlow {
	switch n {
	case 1:
		return promptBasicInfo
	case 2:
		return promptIdentityStyle
	case 3:
		return promptProceduresBusiness
	case 4:
		return promptIdealPatient
	case 5:
		return promptDifferentiators
	case 6:
		return promptMarketingGoals
	case 7:
		return promptStorytelling
	case 8:
		return promptAdHistory
	default:
		return nil
	}
}

func promptBasicInfo(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error) {
	out := current.Step1

	var err error
	if out.FullName, err = d.Input(ctx, InputConfig{Message: i18n.T(locale, "fullName"), Default: out.FullName}); err != nil {
		return nil, err
	}
	if out.PreferredName, err = d.Input(ctx, InputConfig{Message: i18n.T(locale, "preferredName"), Default: out.PreferredName}); err != nil {
		return nil, err
	}
	if out.Specialty, err = d.Input(ctx, InputConfig{Message: i18n.T(locale, "specialty"), Default: out.Specialty}); err != nil {
		return nil, err
	}
	if out.Cities, err = promptList(ctx, d, i18n.T(locale, "cities"), out.Cities); err != nil {
		return nil, err
	}
	if out.YearsExperience, err = promptInt(ctx, d, i18n.T(locale, "yearsExperience"), out.YearsExperience); err != nil {
		return nil, err
	}
	return out, nil
}

func promptIdentityStyle(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error) {
	out := current.Step2

	options := brief.Perceptions()
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = i18n.DisplayToken(locale, string(option))
	}
	var defaults []int
	for i, option := range options {
		for _, chosen := range out.Perception {
			if chosen == option {
				defaults = append(defaults, i)
			}
		}
	}
	indices, err := d.MultiSelect(ctx, SelectConfig{
		Message:  i18n.T(locale, "perception"),
		Options:  labels,
		Defaults: defaults,
	})
	if err != nil {
		return nil, err
	}
	// Fresh slice: the seeded one shares backing storage with the caller's
	// record, which must stay untouched until the submission is accepted.
	out.Perception = make([]brief.Perception, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			out.Perception = append(out.Perception, options[idx])
		}
	}

	if out.WhatNotAre, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "whatNotAre"), Default: out.WhatNotAre}); err != nil {
		return nil, err
	}
	if out.Philosophy, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "philosophy"), Default: out.Philosophy}); err != nil {
		return nil, err
	}
	return out, nil
}

func promptProceduresBusiness(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error) {
	out := current.Step3

	var err error
	if out.FavoriteProcedures, err = promptList(ctx, d, i18n.T(locale, "favoriteProcedures"), out.FavoriteProcedures); err != nil {
		return nil, err
	}
	if out.HighValueServices, err = promptList(ctx, d, i18n.T(locale, "highValueServices"), out.HighValueServices); err != nil {
		return nil, err
	}
	if out.AccessibleServices, err = promptList(ctx, d, i18n.T(locale, "accessibleServices"), out.AccessibleServices); err != nil {
		return nil, err
	}
	return out, nil
}

func promptIdealPatient(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error) {
	out := current.Step4

	var err error
	if out.AverageAge, err = d.Input(ctx, InputConfig{Message: i18n.T(locale, "averageAge"), Default: out.AverageAge}); err != nil {
		return nil, err
	}

	genders := brief.Genders()
	labels := make([]string, len(genders))
	defaultIndex := 0
	for i, g := range genders {
		labels[i] = i18n.DisplayToken(locale, string(g))
		if g == out.PredominantGender {
			defaultIndex = i
		}
	}
	idx, err := d.Select(ctx, SelectConfig{
		Message:      i18n.T(locale, "predominantGender"),
		Options:      labels,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return nil, err
	}
	if idx >= 0 && idx < len(genders) {
		out.PredominantGender = genders[idx]
	}

	if out.CommonFears, err = promptList(ctx, d, i18n.T(locale, "commonFears"), out.CommonFears); err != nil {
		return nil, err
	}
	return out, nil
}

func promptDifferentiators(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error) {
	out := current.Step5

	var err error
	if out.WhatMakesDifferent, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "whatMakesDifferent"), Default: out.WhatMakesDifferent}); err != nil {
		return nil, err
	}
	if out.KeyTechnologies, err = promptList(ctx, d, i18n.T(locale, "keyTechnologies"), out.KeyTechnologies); err != nil {
		return nil, err
	}
	return out, nil
}

func promptMarketingGoals(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error) {
	out := current.Step6

	options := brief.Objectives()
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = i18n.DisplayToken(locale, string(option))
	}
	var defaults []int
	for i, option := range options {
		for _, chosen := range out.MainObjective {
			if chosen == option {
				defaults = append(defaults, i)
			}
		}
	}
	indices, err := d.MultiSelect(ctx, SelectConfig{
		Message:  i18n.T(locale, "mainObjective"),
		Options:  labels,
		Defaults: defaults,
	})
	if err != nil {
		return nil, err
	}
	out.MainObjective = make([]brief.Objective, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			out.MainObjective = append(out.MainObjective, options[idx])
		}
	}

	if out.MonthlyNewConsultations, err = promptInt(ctx, d, i18n.T(locale, "monthlyNewConsultations"), out.MonthlyNewConsultations); err != nil {
		return nil, err
	}
	if out.InspiringAccounts, err = promptList(ctx, d, i18n.T(locale, "inspiringAccounts"), out.InspiringAccounts); err != nil {
		return nil, err
	}
	return out, nil
}

func promptStorytelling(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error) {
	out := current.Step7

	var err error
	if out.WhySpecialty, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "whySpecialty"), Default: out.WhySpecialty}); err != nil {
		return nil, err
	}
	if out.MarkedCase, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "markedCase"), Default: out.MarkedCase}); err != nil {
		return nil, err
	}
	if out.CommonPhrase, err = d.Input(ctx, InputConfig{Message: i18n.T(locale, "commonPhrase"), Default: out.CommonPhrase}); err != nil {
		return nil, err
	}
	if out.FiveYearVision, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "fiveYearVision"), Default: out.FiveYearVision}); err != nil {
		return nil, err
	}
	if out.MythToDebunk, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "mythToDebunk"), Default: out.MythToDebunk}); err != nil {
		return nil, err
	}
	if out.FrequentQuestions, err = promptList(ctx, d, i18n.T(locale, "frequentQuestions"), out.FrequentQuestions); err != nil {
		return nil, err
	}
	if out.CuriosityTopic, err = d.Input(ctx, InputConfig{Message: i18n.T(locale, "curiosityTopic"), Default: out.CuriosityTopic}); err != nil {
		return nil, err
	}
	return out, nil
}

func promptAdHistory(ctx context.Context, d PromptDriver, locale i18n.Locale, current brief.Brief) (brief.StepRecord, error) {
	out := current.Step8

	var err error
	if out.HasDoneAds, err = d.Confirm(ctx, ConfirmConfig{Message: i18n.T(locale, "hasDoneAds"), Default: out.HasDoneAds}); err != nil {
		return nil, err
	}
	if !out.HasDoneAds {
		return brief.AdHistory{HasDoneAds: false}, nil
	}
	if out.Platforms, err = promptList(ctx, d, i18n.T(locale, "platforms"), out.Platforms); err != nil {
		return nil, err
	}
	if out.InvestmentAmount, err = d.Input(ctx, InputConfig{Message: i18n.T(locale, "investmentAmount"), Default: out.InvestmentAmount}); err != nil {
		return nil, err
	}
	if out.Results, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "results"), Default: out.Results}); err != nil {
		return nil, err
	}
	if out.BestFormats, err = promptList(ctx, d, i18n.T(locale, "bestFormats"), out.BestFormats); err != nil {
		return nil, err
	}
	if out.WhatDidntWork, err = d.TextArea(ctx, TextAreaConfig{Message: i18n.T(locale, "whatDidntWork"), Default: out.WhatDidntWork}); err != nil {
		return nil, err
	}
	return out, nil
}

// promptList collects a comma-separated list through a single input.
func promptList(ctx context.Context, d PromptDriver, message string, current []string) ([]string, error) {
	raw, err := d.Input(ctx, InputConfig{
		Message: message,
		Default: strings.Join(current, ", "),
		Help:    "separate entries with commas",
	})
	if err != nil {
		return nil, err
	}
	return splitList(raw), nil
}

func promptInt(ctx context.Context, d PromptDriver, message string, current int) (int, error) {
	def := ""
	if current > 0 {
		def = strconv.Itoa(current)
	}
	raw, err := d.Input(ctx, InputConfig{
		Message: message,
		Default: def,
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
				return fmt.Errorf("enter a whole number")
			}
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
