package chat

import (
	"strconv"
	"strings"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// systemPrompt fixes the assistant's role contract: at most three professor
// recommendations, neutral tone, no fabricated data, clarification requests
// on vague queries.
const systemPrompt = `You are an AI assistant designed to help students find professors based on their queries using a Retrieval-Augmented Generation (RAG) system. Your primary goal is to assist students in finding the best professor for their needs.

Your capabilities:
1. You have access to a database of professor reviews, including professor names, subjects taught, star ratings, and details from student reviews.
2. Retrieved review data relevant to the student's query is appended to their message.
3. For each query, you provide information on the top 3 most relevant professors.

Your responses should:
1. Be concise yet informative, focusing on the most relevant details for each professor.
2. Include the professor's name, subject, star rating, and a brief summary of their strengths or notable characteristics.
3. Highlight specific aspects mentioned in the student's query (e.g., teaching style, course difficulty, grading fairness).
4. Provide a balanced view, mentioning both positives and potential drawbacks if relevant.

Guidelines:
- Always maintain a neutral and objective tone.
- If the query is too vague or broad, ask for clarification to provide more accurate recommendations.
- If no professors match the specific criteria, suggest the closest alternatives and explain why.
- Do not invent or fabricate information. If you do not have sufficient data, state this clearly.
- Respect privacy by not sharing any personal information about professors beyond what is in the reviews.`

// contextHeader and noResultsNote delimit the retrieved facts appended to the
// user's message. The explicit no-results note steers the model away from
// fabricating specifics.
const (
	contextHeader = "\n\nMatches from the review database:\n"
	noResultsNote = "\n\nNo relevant results found in the review database."
)

// buildContext serializes matched reviews into the delimited context block.
func buildContext(matches []domain.Review) string {
	if len(matches) == 0 {
		return noResultsNote
	}

	var b strings.Builder
	b.WriteString(contextHeader)
	for i := range matches {
		m := &matches[i]
		b.WriteString("Professor: ")
		b.WriteString(m.Professor())
		b.WriteString("\nSubject: ")
		b.WriteString(m.Subject())
		b.WriteString("\nStars: ")
		b.WriteString(formatStars(m.Stars()))
		b.WriteString("\nReview: ")
		b.WriteString(m.Text())
		b.WriteString("\n\n")
	}
	return b.String()
}

// buildMessages assembles the full sequence: system instruction, all prior
// turns unchanged, then the last user turn with the context block appended
// after (never replacing) the original text.
func buildMessages(conv domain.Conversation, matches []domain.Review) []domain.Turn {
	msgs := make([]domain.Turn, 0, len(conv)+1)
	msgs = append(msgs, domain.Turn{Role: domain.RoleSystem, Content: systemPrompt})
	msgs = append(msgs, conv.Prior()...)
	msgs = append(msgs, domain.Turn{
		Role:    domain.RoleUser,
		Content: conv.LastMessage() + buildContext(matches),
	})
	return msgs
}

// formatStars renders the rating the way it is matched against: a literal
// stringified number without trailing zeros ("4", "4.5").
func formatStars(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
