package city

type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Patch struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}
