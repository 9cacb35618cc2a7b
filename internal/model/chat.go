package model

// 对话角色。上游模型只接受 user / model 两种历史角色，
// 且要求历史以 user 开头并严格交替
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
