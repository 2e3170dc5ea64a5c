package models

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ConversationTurn is one caller-owned history item.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NormalizeRole keeps "user" and maps every other value to "model".
func NormalizeRole(role string) Role {
	if role == string(RoleUser) {
		return RoleUser
	}
	return RoleModel
}
