package user

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Patch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
