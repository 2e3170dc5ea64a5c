package service

import (
	"portfolio-chat/internal/models"
)

const (
	// HistoryLimit caps how many caller-supplied turns are forwarded.
	HistoryLimit = 10

	// PersonaAcknowledgement is the synthetic model reply that follows the persona.
	PersonaAcknowledgement = "System initialized. Ready to chat."

	KnowledgeBaseTag = "[FULL_KNOWLEDGE_BASE]"
	UserQuestionTag  = "[USER_QUESTION]"
)

// AssemblePrompt builds the ordered turns sent to the model: persona, acknowledgement,
// the trailing HistoryLimit history turns with normalized roles, then the knowledge
// base and the new message as the final user turn. The knowledge base is resent on
// every call so grounding never depends on provider-side memory.
func AssemblePrompt(persona, knowledge string, history []models.ConversationTurn, message string) []models.ConversationTurn {
	if len(history) > HistoryLimit {
		history = history[len(history)-HistoryLimit:]
	}

	turns := make([]models.ConversationTurn, 0, len(history)+3)
	turns = append(turns,
		models.ConversationTurn{Role: models.RoleUser, Content: persona},
		models.ConversationTurn{Role: models.RoleModel, Content: PersonaAcknowledgement},
	)
	for _, h := range history {
		turns = append(turns, models.ConversationTurn{
			Role:    models.NormalizeRole(string(h.Role)),
			Content: h.Content,
		})
	}
	turns = append(turns, models.ConversationTurn{
		Role:    models.RoleUser,
		Content: QuestionMessage(knowledge, message),
	})

	return turns
}

// QuestionMessage wraps the corpus and the user's message in the tagged layout the persona refers to.
func QuestionMessage(knowledge, message string) string {
	return KnowledgeBaseTag + "\n" + knowledge + "\n\n" + UserQuestionTag + "\n" + message
}
