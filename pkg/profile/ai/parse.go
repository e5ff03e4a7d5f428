package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/artem13815/resume-ingest/pkg/profile"
)

// wireProfile mirrors the JSON schema requested from the model.
type wireProfile struct {
	PersonalInfo struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Location string `json:"location"`
	} `json:"personal_info"`
	Skills struct {
		Technical []struct {
			Skill       string  `json:"skill"`
			Proficiency string  `json:"proficiency"`
			Years       float64 `json:"years"`
		} `json:"technical_skills"`
		Soft []string `json:"soft_skills"`
	} `json:"skills"`
	Experience struct {
		TotalYears  float64  `json:"total_years"`
		CurrentRole string   `json:"current_role"`
		Industries  []string `json:"industries"`
	} `json:"experience"`
	Education          []string `json:"education"`
	Certifications     []string `json:"certifications"`
	SearchableKeywords []string `json:"searchable_keywords"`
}

// Parse turns a raw model completion into a CandidateProfile. Markdown
// code fences are tolerated; so is surrounding prose, as long as one JSON
// object can be carved out of it.
func Parse(raw string) (profile.CandidateProfile, error) {
	s := stripFences(raw)

	var w wireProfile
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		// last resort: carve the outermost object out of the reply
		i := strings.Index(s, "{")
		j := strings.LastIndex(s, "}")
		if i < 0 || j <= i {
			return profile.Empty(), fmt.Errorf("no json object in completion: %w", err)
		}
		if err := json.Unmarshal([]byte(s[i:j+1]), &w); err != nil {
			return profile.Empty(), fmt.Errorf("decode completion: %w", err)
		}
	}

	p := profile.Empty()
	p.PersonalInfo.Name = strings.TrimSpace(w.PersonalInfo.Name)
	p.PersonalInfo.Email = strings.TrimSpace(w.PersonalInfo.Email)
	p.PersonalInfo.Location = strings.TrimSpace(w.PersonalInfo.Location)
	for _, ts := range w.Skills.Technical {
		skill := strings.TrimSpace(ts.Skill)
		if skill == "" {
			continue
		}
		years := int(ts.Years)
		if years < 0 {
			years = 0
		}
		p.Skills.Technical = append(p.Skills.Technical, profile.TechnicalSkill{
			Skill:          skill,
			Proficiency:    profile.NormalizeProficiency(ts.Proficiency),
			EstimatedYears: years,
		})
	}
	p.Skills.Soft = cleanList(w.Skills.Soft)
	p.Experience.TotalYears = w.Experience.TotalYears
	p.Experience.CurrentRole = strings.TrimSpace(w.Experience.CurrentRole)
	p.Experience.Industries = cleanList(w.Experience.Industries)
	p.Education = cleanList(w.Education)
	p.Certifications = cleanList(w.Certifications)
	p.SearchableKeywords = cleanList(w.SearchableKeywords)
	p.Sanitize()
	return p, nil
}

// stripFences removes an optional ```/```json wrapper around the reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
