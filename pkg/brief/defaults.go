package brief

import (
	"time"

	"github.com/google/uuid"
)

// New returns an empty draft brief with a fresh ID and the declared defaults:
// empty strings, empty lists, zero numbers, false booleans. The predominant
// gender starts at "ambos" so the step 4 selector always has a valid value.
func New() Brief {
	return Brief{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Step1: BasicInfo{
			Cities: []string{},
		},
		Step2: IdentityStyle{
			Perception: []Perception{},
		},
		Step3: ProceduresBusiness{
			FavoriteProcedures: []string{},
			HighValueServices:  []string{},
			AccessibleServices: []string{},
		},
		Step4: IdealPatient{
			PredominantGender: GenderAmbos,
			CommonFears:       []string{},
		},
		Step5: Differentiators{
			KeyTechnologies: []string{},
		},
		Step6: MarketingGoals{
			MainObjective:     []Objective{},
			InspiringAccounts: []string{},
		},
		Step7: Storytelling{
			FrequentQuestions: []string{},
		},
		Step8: AdHistory{
			Platforms:   []string{},
			BestFormats: []string{},
		},
		Status: StatusDraft,
	}
}

// Template returns the fixed example brief used by the "start from template"
// action. Every step is populated with plausible data so the whole record
// passes strict validation.
func Template() Brief {
	b := New()
	b.Step1 = BasicInfo{
		FullName:        "Dr. María González",
		PreferredName:   "Dra. María",
		Specialty:       "Dermatología",
		Cities:          []string{"Ciudad de México", "Guadalajara"},
		YearsExperience: 8,
	}
	b.Step2 = IdentityStyle{
		Perception: []Perception{
			PerceptionCercanoHumano,
			PerceptionProfesionalTecnico,
			PerceptionInnovadorTecnologico,
		},
		WhatNotAre: "No soy de dar resultados exagerados ni de prometer milagros",
		Philosophy: "La belleza natural se potencia con la ciencia y el cuidado personalizado",
	}
	b.Step3 = ProceduresBusiness{
		FavoriteProcedures: []string{"Limpieza facial profunda", "Tratamiento anti-edad", "Dermatoscopía digital"},
		HighValueServices:  []string{"Láser fraccionado", "Botox", "Rellenos de ácido hialurónico"},
		AccessibleServices: []string{"Consulta dermatológica", "Limpieza facial", "Tratamiento de acné"},
	}
	b.Step4 = IdealPatient{
		AverageAge:        "25-45",
		PredominantGender: GenderMujer,
		CommonFears:       []string{"Dolor durante el procedimiento", "Resultados no naturales", "Efectos secundarios"},
	}
	b.Step5 = Differentiators{
		WhatMakesDifferent: "Uso de tecnología de vanguardia combinada con un enfoque personalizado y humano",
		KeyTechnologies:    []string{"Dermatoscopía digital", "Láser fraccionado", "Certificación en medicina estética"},
	}
	b.Step6 = MarketingGoals{
		MainObjective:           []Objective{ObjectiveMasConsultas, ObjectiveMejorReputacion},
		MonthlyNewConsultations: 50,
		InspiringAccounts:       []string{"@dermatologa_moderna", "@dr_skincare", "@medicina_estetica_mx"},
	}
	b.Step7 = Storytelling{
		WhySpecialty:      "Elegí dermatología porque me apasiona ayudar a las personas a sentirse cómodas en su propia piel",
		MarkedCase:        "Una paciente de 35 años que recuperó su confianza después de un tratamiento de acné severo",
		CommonPhrase:      "La piel es el reflejo de tu salud interior",
		FiveYearVision:    "Ser referente en dermatología estética en México y tener mi propia clínica",
		MythToDebunk:      "Que todos los tratamientos estéticos son peligrosos o antinaturales",
		FrequentQuestions: []string{"¿Duele el procedimiento?", "¿Cuánto tiempo duran los resultados?", "¿Hay efectos secundarios?"},
		CuriosityTopic:    "Los tratamientos de rejuvenecimiento facial sin cirugía",
	}
	b.Step8 = AdHistory{
		HasDoneAds:       true,
		Platforms:        []string{"Meta Ads", "Google Ads"},
		InvestmentAmount: "15,000 MXN mensuales",
		Results:          "Generaba 20-25 consultas nuevas por mes",
		BestFormats:      []string{"Videos", "Reels", "Carruseles"},
		WhatDidntWork:    "Anuncios muy técnicos sin storytelling personal",
	}
	return b
}
