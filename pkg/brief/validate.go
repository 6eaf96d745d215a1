package brief

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Issue is a single field-level validation error. Field carries the dotted
// path used for UI attachment ("cities", "step2.perception").
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result captures a validation outcome. Issues preserve field declaration
// order so renderers can surface them deterministically.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// resultFrom wraps a list of issues in a Result.
func resultFrom(issues []Issue) Result {
	return Result{Valid: len(issues) == 0, Issues: issues}
}

// Validate checks the step 1 record: every field is required and at least
// one city must be listed.
func (s BasicInfo) Validate() []Issue {
	var issues []Issue
	issues = requireString(issues, "fullName", s.FullName, "full name is required")
	issues = requireString(issues, "preferredName", s.PreferredName, "preferred name is required")
	issues = requireString(issues, "specialty", s.Specialty, "specialty is required")
	if len(s.Cities) < 1 {
		issues = append(issues, Issue{Field: "cities", Message: "at least one city is required"})
	}
	if s.YearsExperience < 1 {
		issues = append(issues, Issue{Field: "yearsExperience", Message: "years of experience is required"})
	}
	return issues
}

// Validate checks the step 2 record. Perception must hold exactly three
// distinct values from the closed set.
func (s IdentityStyle) Validate() []Issue {
	var issues []Issue
	distinct := make(map[Perception]struct{}, len(s.Perception))
	valid := true
	for _, p := range s.Perception {
		if !perceptionKnown(p) {
			issues = append(issues, Issue{Field: "perception", Message: fmt.Sprintf("unknown perception value %q", p)})
			valid = false
			break
		}
		distinct[p] = struct{}{}
	}
	if valid && len(distinct) != 3 {
		issues = append(issues, Issue{Field: "perception", Message: "exactly 3 distinct options must be chosen"})
	}
	issues = requireString(issues, "whatNotAre", s.WhatNotAre, "this answer is required")
	issues = requireString(issues, "philosophy", s.Philosophy, "the practice philosophy is required")
	return issues
}

// Validate checks the step 3 record: 2-3 favorite procedures, and at least
// one entry in each of the other lists. Counts are enforced regardless of
// element content.
func (s ProceduresBusiness) Validate() []Issue {
	var issues []Issue
	if n := len(s.FavoriteProcedures); n < 2 || n > 3 {
		issues = append(issues, Issue{Field: "favoriteProcedures", Message: "between 2 and 3 favorite procedures are required"})
	}
	if len(s.HighValueServices) < 1 {
		issues = append(issues, Issue{Field: "highValueServices", Message: "at least one high-value service is required"})
	}
	if len(s.AccessibleServices) < 1 {
		issues = append(issues, Issue{Field: "accessibleServices", Message: "at least one accessible service is required"})
	}
	return issues
}

// Validate checks the step 4 record.
func (s IdealPatient) Validate() []Issue {
	var issues []Issue
	issues = requireString(issues, "averageAge", s.AverageAge, "average patient age is required")
	if !genderKnown(s.PredominantGender) {
		issues = append(issues, Issue{Field: "predominantGender", Message: fmt.Sprintf("unknown gender value %q", s.PredominantGender)})
	}
	if n := len(s.CommonFears); n < 1 || n > 3 {
		issues = append(issues, Issue{Field: "commonFears", Message: "between 1 and 3 common fears are required"})
	}
	return issues
}

// Validate checks the step 5 record.
func (s Differentiators) Validate() []Issue {
	var issues []Issue
	issues = requireString(issues, "whatMakesDifferent", s.WhatMakesDifferent, "this answer is required")
	if len(s.KeyTechnologies) < 1 {
		issues = append(issues, Issue{Field: "keyTechnologies", Message: "at least one technology or certification is required"})
	}
	return issues
}

// Validate checks the step 6 record.
func (s MarketingGoals) Validate() []Issue {
	var issues []Issue
	if len(s.MainObjective) < 1 {
		issues = append(issues, Issue{Field: "mainObjective", Message: "at least one objective must be selected"})
	}
	for _, o := range s.MainObjective {
		if !objectiveKnown(o) {
			issues = append(issues, Issue{Field: "mainObjective", Message: fmt.Sprintf("unknown objective value %q", o)})
			break
		}
	}
	if s.MonthlyNewConsultations < 1 {
		issues = append(issues, Issue{Field: "monthlyNewConsultations", Message: "the monthly consultation target is required"})
	}
	if len(s.InspiringAccounts) < 1 {
		issues = append(issues, Issue{Field: "inspiringAccounts", Message: "at least one inspiring account is required"})
	}
	return issues
}

// Validate checks the step 7 record: every narrative field is required.
func (s Storytelling) Validate() []Issue {
	var issues []Issue
	issues = requireString(issues, "whySpecialty", s.WhySpecialty, "this story is required")
	issues = requireString(issues, "markedCase", s.MarkedCase, "this case is required")
	issues = requireString(issues, "commonPhrase", s.CommonPhrase, "this phrase is required")
	issues = requireString(issues, "fiveYearVision", s.FiveYearVision, "the five-year vision is required")
	issues = requireString(issues, "mythToDebunk", s.MythToDebunk, "the myth to debunk is required")
	if len(s.FrequentQuestions) < 1 {
		issues = append(issues, Issue{Field: "frequentQuestions", Message: "at least one frequent question is required"})
	}
	issues = requireString(issues, "curiosityTopic", s.CuriosityTopic, "the curiosity topic is required")
	return issues
}

// Validate checks the step 8 record. Nothing is required.
func (s AdHistory) Validate() []Issue {
	return nil
}

// ValidateStep validates candidate data against the schema for step n.
// Validation is pure and total: malformed input yields issues, never a panic.
func ValidateStep(n int, data StepRecord) Result {
	if n < FirstStep || n > LastStep {
		return resultFrom([]Issue{{Field: fmt.Sprintf("step%d", n), Message: "step out of range"}})
	}
	if data == nil {
		return resultFrom([]Issue{{Field: fmt.Sprintf("step%d", n), Message: "step data is required"}})
	}
	if expected := stepTypeName(n); typeNameOf(data) != expected {
		return resultFrom([]Issue{{
			Field:   fmt.Sprintf("step%d", n),
			Message: fmt.Sprintf("expected %s data for step %d", expected, n),
		}})
	}
	return resultFrom(data.Validate())
}

// Validate runs strict composite validation: the conjunction of all eight
// step validations plus top-level shape. Any single step failure fails the
// whole record. Issue fields are prefixed with the step path.
func (b Brief) Validate() Result {
	var issues []Issue
	issues = append(issues, b.shapeIssues()...)
	for n := FirstStep; n <= LastStep; n++ {
		for _, issue := range b.stepRecordAt(n).Validate() {
			issue.Field = fmt.Sprintf("step%d.%s", n, issue.Field)
			issues = append(issues, issue)
		}
	}
	return resultFrom(issues)
}

// ValidateShape runs structural validation only: identifiers, status, and
// enum membership where values are present. Required-but-empty fields are
// tolerated, so a freshly initialized or partially filled draft passes. The
// Draft Store uses this guard on read.
func (b Brief) ValidateShape() Result {
	issues := b.shapeIssues()
	for _, p := range b.Step2.Perception {
		if !perceptionKnown(p) {
			issues = append(issues, Issue{Field: "step2.perception", Message: fmt.Sprintf("unknown perception value %q", p)})
			break
		}
	}
	if b.Step4.PredominantGender != "" && !genderKnown(b.Step4.PredominantGender) {
		issues = append(issues, Issue{Field: "step4.predominantGender", Message: fmt.Sprintf("unknown gender value %q", b.Step4.PredominantGender)})
	}
	for _, o := range b.Step6.MainObjective {
		if !objectiveKnown(o) {
			issues = append(issues, Issue{Field: "step6.mainObjective", Message: fmt.Sprintf("unknown objective value %q", o)})
			break
		}
	}
	return resultFrom(issues)
}

func (b Brief) shapeIssues() []Issue {
	var issues []Issue
	if b.ID != "" {
		if _, err := uuid.Parse(b.ID); err != nil {
			issues = append(issues, Issue{Field: "id", Message: "id must be a UUID"})
		}
	}
	switch b.Status {
	case StatusDraft, StatusCompleted:
	default:
		issues = append(issues, Issue{Field: "status", Message: fmt.Sprintf("unknown status %q", b.Status)})
	}
	return issues
}

func (b Brief) stepRecordAt(n int) StepRecord {
	switch n {
	case 1:
		return b.Step1
	case 2:
		return b.Step2
	case 3:
		return b.Step3
	case 4:
		return b.Step4
	case 5:
		return b.Step5
	case 6:
		return b.Step6
	case 7:
		return b.Step7
	case 8:
		return b.Step8
	default:
		return AdHistory{}
	}
}

func requireString(issues []Issue, field, value, message string) []Issue {
	if strings.TrimSpace(value) == "" {
		issues = append(issues, Issue{Field: field, Message: message})
	}
	return issues
}

func perceptionKnown(p Perception) bool {
	for _, known := range Perceptions() {
		if p == known {
			return true
		}
	}
	return false
}

func genderKnown(g Gender) bool {
	for _, known := range Genders() {
		if g == known {
			return true
		}
	}
	return false
}

func objectiveKnown(o Objective) bool {
	for _, known := range Objectives() {
		if o == known {
			return true
		}
	}
	return false
}

func stepTypeName(n int) string {
	switch n {
	case 1:
		return "BasicInfo"
	case 2:
		return "IdentityStyle"
	case 3:
		return "ProceduresBusiness"
	case 4:
		return "IdealPatient"
	case 5:
		return "Differentiators"
	case 6:
		return "MarketingGoals"
	case 7:
		return "Storytelling"
	case 8:
		return "AdHistory"
	default:
		return ""
	}
}

func typeNameOf(data StepRecord) string {
	switch data.(type) {
	case BasicInfo:
		return "BasicInfo"
	case IdentityStyle:
		return "IdentityStyle"
	case ProceduresBusiness:
		return "ProceduresBusiness"
	case IdealPatient:
		return "IdealPatient"
	case Differentiators:
		return "Differentiators"
	case MarketingGoals:
		return "MarketingGoals"
	case Storytelling:
		return "Storytelling"
	case AdHistory:
		return "AdHistory"
	default:
		return ""
	}
}
