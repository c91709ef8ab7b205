package suggest

import "strings"

// SystemInstruction constrains the model to the strict output contract. It is
// sent as the system message on every ranking request.
const SystemInstruction = "You are a marketing calendar assistant. " +
	"You receive a list of commemorative dates and the business niches of a user. " +
	"Judge how relevant each date is for marketing campaigns in those niches. " +
	"Respond with a strict JSON array and nothing else. " +
	`Each item must be {"date":"YYYY-MM-DD","relevance":"high"|"medium"|"low","reason":"short justification"}.`

// RankingBuilder serializes the filtered candidates into the user prompt for
// the relevance ranking request.
type RankingBuilder struct {
	candidates []CandidateDate
	labels     []string
	strict     bool
}

// NewRankingBuilder creates a builder for the given candidates and translated
// niche labels.
func NewRankingBuilder(candidates []CandidateDate, labels []string) *RankingBuilder {
	return &RankingBuilder{
		candidates: candidates,
		labels:     labels,
	}
}

// Strict switches the builder to the augmented prompt used after the model
// returned a structurally invalid answer.
func (b *RankingBuilder) Strict() *RankingBuilder {
	b.strict = true
	return b
}

// Build produces the textual payload embedded in the LLM request. Pure
// serialization, no side effects.
func (b *RankingBuilder) Build() string {
	var prompt strings.Builder

	b.writeNiches(&prompt)
	b.writeDates(&prompt)
	b.writeTask(&prompt)
	if b.strict {
		b.writeStrictReminder(&prompt)
	}

	return prompt.String()
}

func (b *RankingBuilder) writeNiches(prompt *strings.Builder) {
	prompt.WriteString("<niches>\n")
	prompt.WriteString(strings.Join(b.labels, ", "))
	prompt.WriteString("\n</niches>\n\n")
}

func (b *RankingBuilder) writeDates(prompt *strings.Builder) {
	prompt.WriteString("<dates>\n")
	for i, c := range b.candidates {
		if i > 0 {
			prompt.WriteString("\n")
		}
		prompt.WriteString("Data: " + c.Date + "\n")
		prompt.WriteString("Descrição: " + c.Description + "\n")
		prompt.WriteString("Tipo: " + c.Type + "\n")
		prompt.WriteString("Nichos: " + strings.Join(c.Niches, ", ") + "\n")
	}
	prompt.WriteString("</dates>\n\n")
}

func (b *RankingBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("Rank every date above by its marketing relevance for the listed niches.\n")
	prompt.WriteString("Only use dates that appear in the list. Do not invent dates.\n")
	prompt.WriteString("</task>\n")
}

func (b *RankingBuilder) writeStrictReminder(prompt *strings.Builder) {
	prompt.WriteString("\n<format_reminder>\n")
	prompt.WriteString("Your previous answer was not valid JSON. Answer again.\n")
	prompt.WriteString("Output ONLY a JSON array, no prose, no markdown fences.\n")
	prompt.WriteString(`Every item: {"date":"YYYY-MM-DD","relevance":"high"|"medium"|"low","reason":"..."}.` + "\n")
	prompt.WriteString("The date field must copy a date from <dates> verbatim.\n")
	prompt.WriteString("</format_reminder>\n")
}
