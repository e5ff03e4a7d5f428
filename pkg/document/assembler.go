package document

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-ingest/pkg/profile"
)

// AssembleInput is everything the assembler needs besides the profile.
type AssembleInput struct {
	FileURL          string
	External         bool
	ExtractedText    string
	ExtractionMethod string // "heuristic" or "ai"
}

// Assemble merges an extracted profile with request metadata into the
// persisted record shape for the current schema version. A fresh random
// id is generated per call, so identical submissions always produce
// distinct documents.
func Assemble(p profile.CandidateProfile, in AssembleInput) Document {
	p.Sanitize()
	return Document{
		ID:             uuid.NewString(),
		PartitionKey:   PartitionKey,
		External:       in.External,
		PersonalInfo:   p.PersonalInfo,
		Skills:         p.Skills,
		Experience:     p.Experience,
		Education:      p.Education,
		Certifications: p.Certifications,
		SearchableText: BuildSearchableText(p),
		Metadata: Metadata{
			FileURL:          in.FileURL,
			Filename:         FilenameFromURL(in.FileURL),
			OriginalContent:  in.ExtractedText,
			ContentLength:    len(in.ExtractedText),
			UploadTimestamp:  time.Now().UTC().Format(time.RFC3339),
			Source:           Source,
			ProcessingMethod: ProcessingMethod,
			ExtractionMethod: in.ExtractionMethod,
			SchemaVersion:    SchemaVersion,
			ContentType:      ContentType,
			AIProcessed:      in.ExtractionMethod == "ai",
		},
	}
}

// BuildSearchableText folds every textual profile field into a
// lower-cased, de-duplicated, space-joined bag of tokens for search
// indexing. Order is first-occurrence and carries no meaning.
func BuildSearchableText(p profile.CandidateProfile) string {
	var parts []string
	seen := make(map[string]struct{})
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		parts = append(parts, s)
	}

	add(p.PersonalInfo.Name)
	add(p.PersonalInfo.Location)
	for _, s := range p.Skills.Technical {
		add(s.Skill)
	}
	for _, s := range p.Skills.Soft {
		add(s)
	}
	add(p.Experience.CurrentRole)
	for _, s := range p.Experience.Industries {
		add(s)
	}
	for _, s := range p.Education {
		add(s)
	}
	for _, s := range p.Certifications {
		add(s)
	}
	for _, s := range p.SearchableKeywords {
		add(s)
	}
	return strings.Join(parts, " ")
}

// FilenameFromURL derives a filename: the segment after the last path
// separator, the whole value when there is none, "" for an empty URL.
func FilenameFromURL(fileURL string) string {
	if fileURL == "" {
		return ""
	}
	if i := strings.LastIndexByte(fileURL, '/'); i >= 0 {
		return fileURL[i+1:]
	}
	return fileURL
}
