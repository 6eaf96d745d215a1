package brief

import "fmt"

// MergeStep returns a copy of b with the record for the given step replaced
// wholesale; there is no deep merge. The step index dispatches over the
// closed set 1..8, so a mismatched payload type is an error rather than a
// silently dropped write.
func MergeStep(b Brief, step int, data StepRecord) (Brief, error) {
	switch step {
	case 1:
		v, ok := data.(BasicInfo)
		if !ok {
			return b, mergeTypeError(step, data)
		}
		b.Step1 = v
	case 2:
		v, ok := data.(IdentityStyle)
		if !ok {
			return b, mergeTypeError(step, data)
		}
		b.Step2 = v
	case 3:
		v, ok := data.(ProceduresBusiness)
		if !ok {
			return b, mergeTypeError(step, data)
		}
		b.Step3 = v
	case 4:
		v, ok := data.(IdealPatient)
		if !ok {
			return b, mergeTypeError(step, data)
		}
		b.Step4 = v
	case 5:
		v, ok := data.(Differentiators)
		if !ok {
			return b, mergeTypeError(step, data)
		}
		b.Step5 = v
	case 6:
		v, ok := data.(MarketingGoals)
		if !ok {
			return b, mergeTypeError(step, data)
		}
		b.Step6 = v
	case 7:
		v, ok := data.(Storytelling)
		if !ok {
			return b, mergeTypeError(step, data)
		}
		b.Step7 = v
	case 8:
		v, ok := data.(AdHistory)
		if !ok {
			return b, mergeTypeError(step, data)
		}
		b.Step8 = v
	default:
		return b, fmt.Errorf("brief: step %d out of range [%d, %d]", step, FirstStep, LastStep)
	}
	return b, nil
}

// Overlay copies every step of the template onto b, keeping b's identity
// fields (id, timestamp, status) intact. Used by the "start from template"
// action: the example fully replaces the current step records.
func Overlay(b, template Brief) Brief {
	b.Step1 = template.Step1
	b.Step2 = template.Step2
	b.Step3 = template.Step3
	b.Step4 = template.Step4
	b.Step5 = template.Step5
	b.Step6 = template.Step6
	b.Step7 = template.Step7
	b.Step8 = template.Step8
	return b
}

func mergeTypeError(step int, data StepRecord) error {
	return fmt.Errorf("brief: step %d expects %s data, got %T", step, stepTypeName(step), data)
}
