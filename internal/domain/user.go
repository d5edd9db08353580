package domain

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Email  string `json:"email"`
	Hash   string `json:"passwordHash"` // bcrypt; serialized only into the local snapshot
	Plan   Plan   `json:"subscriptionPlan"`
	Avatar string `json:"avatar,omitempty"`
}
