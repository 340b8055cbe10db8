package category

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Patch struct {
	Name *string `json:"name"`
}
