package ai

import "fmt"

const systemPrompt = "You are an expert resume parser. Return valid JSON only, " +
	"without markdown, code blocks or commentary. Empty lists must be [], never null. " +
	"Do not invent facts that are not in the text."

// userPrompt pins the exact output schema. Proficiency and years are
// estimated from context (dates, seniority wording, repetition).
func userPrompt(text string) string {
	return fmt.Sprintf(
		"Resume text between the markers:\n<<<\n%s\n>>>\n\n"+
			"Return STRICTLY one JSON object with this schema:\n"+
			"{\n"+
			"  \"personal_info\": {\"name\": string, \"email\": string, \"location\": string},\n"+
			"  \"skills\": {\n"+
			"    \"technical_skills\": [{\"skill\": string, \"proficiency\": \"Beginner\"|\"Intermediate\"|\"Advanced\"|\"Expert\"|\"Unknown\", \"years\": number}],\n"+
			"    \"soft_skills\": string[]\n"+
			"  },\n"+
			"  \"experience\": {\"total_years\": number, \"current_role\": string, \"industries\": string[]},\n"+
			"  \"education\": string[],\n"+
			"  \"certifications\": string[],\n"+
			"  \"searchable_keywords\": string[]\n"+
			"}\n\n"+
			"Rules:\n"+
			"- Estimate proficiency and years per skill from context; use \"Unknown\" and 0 when unclear\n"+
			"- No additional fields\n"+
			"- No markdown\n"+
			"- Unknown strings are \"\", empty lists are []\n",
		text,
	)
}
