package brief

import "time"

// Status tracks the lifecycle of a Brief. A brief starts as a draft and
// becomes completed exactly once, on successful final submission.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// FirstStep and LastStep bound the wizard cursor.
const (
	FirstStep = 1
	LastStep  = 8
)

// StorageVersion tags serialized briefs so future readers can detect the
// envelope format. Reads of unknown versions are still attempted; validation
// of the embedded record, not the tag, decides acceptance.
const StorageVersion = "2.0.0"

// Perception is one of the closed set of brand-perception descriptors a
// professional can choose in step 2.
type Perception string

const (
	PerceptionCercanoHumano        Perception = "cercano_humano"
	PerceptionEleganteAspiracional Perception = "elegante_aspiracional"
	PerceptionInnovadorTecnologico Perception = "innovador_tecnologico"
	PerceptionProfesionalTecnico   Perception = "profesional_tecnico"
	PerceptionCasualDirecto        Perception = "casual_directo"
)

// Perceptions returns the closed set of valid perception values in
// declaration order.
func Perceptions() []Perception {
	return []Perception{
		PerceptionCercanoHumano,
		PerceptionEleganteAspiracional,
		PerceptionInnovadorTecnologico,
		PerceptionProfesionalTecnico,
		PerceptionCasualDirecto,
	}
}

// Gender is the predominant patient gender selection in step 4.
type Gender string

const (
	GenderMujer  Gender = "mujer"
	GenderHombre Gender = "hombre"
	GenderAmbos  Gender = "ambos"
)

// Genders returns the closed set of valid gender values.
func Genders() []Gender {
	return []Gender{GenderMujer, GenderHombre, GenderAmbos}
}

// Objective is one of the marketing objectives selectable in step 6. The
// canonical token for geographic expansion carries no accent; earlier
// renditions of the schema disagreed with their own option lists on this.
type Objective string

const (
	ObjectiveMasConsultas        Objective = "mas_consultas"
	ObjectiveMejorReputacion     Objective = "mejor_reputacion"
	ObjectiveNuevosServicios     Objective = "nuevos_servicios"
	ObjectiveExpansionGeografica Objective = "expansion_geografica"
	ObjectiveLiderazgoOpinion    Objective = "liderazgo_opinion"
)

// Objectives returns the closed set of valid objective values in
// declaration order.
func Objectives() []Objective {
	return []Objective{
		ObjectiveMasConsultas,
		ObjectiveMejorReputacion,
		ObjectiveNuevosServicios,
		ObjectiveExpansionGeografica,
		ObjectiveLiderazgoOpinion,
	}
}

// BasicInfo is the step 1 record: who the professional is.
type BasicInfo struct {
	FullName        string   `json:"fullName"`
	PreferredName   string   `json:"preferredName"`
	Specialty       string   `json:"specialty"`
	Cities          []string `json:"cities"`
	YearsExperience int      `json:"yearsExperience"`
}

// IdentityStyle is the step 2 record: how the brand should feel.
type IdentityStyle struct {
	Perception []Perception `json:"perception"`
	WhatNotAre string       `json:"whatNotAre"`
	Philosophy string       `json:"philosophy"`
}

// ProceduresBusiness is the step 3 record: the service portfolio.
type ProceduresBusiness struct {
	FavoriteProcedures []string `json:"favoriteProcedures"`
	HighValueServices  []string `json:"highValueServices"`
	AccessibleServices []string `json:"accessibleServices"`
}

// IdealPatient is the step 4 record: the target patient profile.
type IdealPatient struct {
	AverageAge         string   `json:"averageAge"`
	PredominantGender  Gender   `json:"predominantGender"`
	CommonFears        []string `json:"commonFears"`
}

// Differentiators is the step 5 record: what sets the practice apart.
type Differentiators struct {
	WhatMakesDifferent string   `json:"whatMakesDifferent"`
	KeyTechnologies    []string `json:"keyTechnologies"`
}

// MarketingGoals is the step 6 record: growth targets and references.
type MarketingGoals struct {
	MainObjective           []Objective `json:"mainObjective"`
	MonthlyNewConsultations int         `json:"monthlyNewConsultations"`
	InspiringAccounts       []string    `json:"inspiringAccounts"`
}

// Storytelling is the step 7 record: narrative raw material.
type Storytelling struct {
	WhySpecialty      string   `json:"whySpecialty"`
	MarkedCase        string   `json:"markedCase"`
	CommonPhrase      string   `json:"commonPhrase"`
	FiveYearVision    string   `json:"fiveYearVision"`
	MythToDebunk      string   `json:"mythToDebunk"`
	FrequentQuestions []string `json:"frequentQuestions"`
	CuriosityTopic    string   `json:"curiosityTopic"`
}

// AdHistory is the step 8 record: prior paid-media experience. Every field
// is optional; hasDoneAds gates the rest in the UI only.
type AdHistory struct {
	HasDoneAds       bool     `json:"hasDoneAds"`
	Platforms        []string `json:"platforms,omitempty"`
	InvestmentAmount string   `json:"investmentAmount,omitempty"`
	Results          string   `json:"results,omitempty"`
	BestFormats      []string `json:"bestFormats,omitempty"`
	WhatDidntWork    string   `json:"whatDidntWork,omitempty"`
}

// Brief is the composite eight-step record plus metadata. ID is assigned once
// at creation and never changes; Timestamp updates on every persisted save;
// Status moves draft -> completed only on final successful submission.
type Brief struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Step1     BasicInfo          `json:"step1"`
	Step2     IdentityStyle      `json:"step2"`
	Step3     ProceduresBusiness `json:"step3"`
	Step4     IdealPatient       `json:"step4"`
	Step5     Differentiators    `json:"step5"`
	Step6     MarketingGoals     `json:"step6"`
	Step7     Storytelling       `json:"step7"`
	Step8     AdHistory          `json:"step8"`
	Status    Status    `json:"status"`
}

// StepRecord is the closed union of the eight per-step record types.
type StepRecord interface {
	Validate() []Issue
	stepRecord()
}

func (BasicInfo) stepRecord()          {}
func (IdentityStyle) stepRecord()      {}
func (ProceduresBusiness) stepRecord() {}
func (IdealPatient) stepRecord()       {}
func (Differentiators) stepRecord()    {}
func (MarketingGoals) stepRecord()     {}
func (Storytelling) stepRecord()       {}
func (AdHistory) stepRecord()          {}
