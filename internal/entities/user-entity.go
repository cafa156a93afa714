package entities

// User - учетная запись, возвращаемая бэкендом при входе.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}
