package profile

import "context"

// Proficiency levels a profiler may assign to a technical skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
	ProficiencyUnknown      Proficiency = "Unknown"
)

// NormalizeProficiency maps free-form model output onto the fixed enum.
func NormalizeProficiency(s string) Proficiency {
	switch Proficiency(s) {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return Proficiency(s)
	default:
		return ProficiencyUnknown
	}
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

type TechnicalSkill struct {
	Skill          string      `json:"skill"`
	Proficiency    Proficiency `json:"proficiency"`
	EstimatedYears int         `json:"estimatedYears"`
}

type Skills struct {
	Technical []TechnicalSkill `json:"technicalSkills"`
	Soft      []string         `json:"softSkills"`
}

type Experience struct {
	TotalYears  float64  `json:"totalYears"`
	CurrentRole string   `json:"currentRole"`
	Industries  []string `json:"industries"`
}

// CandidateProfile is the strategy-agnostic extraction result consumed by
// the document assembler. Absence of data is always represented by empty
// values, never nil collections or missing keys.
type CandidateProfile struct {
	PersonalInfo       PersonalInfo `json:"personalInfo"`
	Skills             Skills       `json:"skills"`
	Experience         Experience   `json:"experience"`
	Education          []string     `json:"education"`
	Certifications     []string     `json:"certifications"`
	SearchableKeywords []string     `json:"searchableKeywords"`
}

// Empty returns the safe empty profile: every field present, every
// collection allocated and empty.
func Empty() CandidateProfile {
	return CandidateProfile{
		Skills: Skills{
			Technical: []TechnicalSkill{},
			Soft:      []string{},
		},
		Experience: Experience{
			Industries: []string{},
		},
		Education:          []string{},
		Certifications:     []string{},
		SearchableKeywords: []string{},
	}
}

// Sanitize fills nil collections in-place so a profile assembled from
// partial data still honors the never-nil invariant.
func (p *CandidateProfile) Sanitize() {
	if p.Skills.Technical == nil {
		p.Skills.Technical = []TechnicalSkill{}
	}
	if p.Skills.Soft == nil {
		p.Skills.Soft = []string{}
	}
	if p.Experience.Industries == nil {
		p.Experience.Industries = []string{}
	}
	if p.Education == nil {
		p.Education = []string{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	if p.SearchableKeywords == nil {
		p.SearchableKeywords = []string{}
	}
	if p.Experience.TotalYears < 0 {
		p.Experience.TotalYears = 0
	}
	for i := range p.Skills.Technical {
		if p.Skills.Technical[i].EstimatedYears < 0 {
			p.Skills.Technical[i].EstimatedYears = 0
		}
		p.Skills.Technical[i].Proficiency = NormalizeProficiency(string(p.Skills.Technical[i].Proficiency))
	}
}

// Extractor is the extraction strategy port. Extract must always return a
// usable profile: the deterministic strategy cannot fail, the AI strategy
// degrades to the safe empty profile on any internal error.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, text string) CandidateProfile
}
