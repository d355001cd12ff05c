package vote

type CastRequest struct {
	Vote  string `json:"vote"`
	Email string `json:"email"`
}

type CastResponse struct {
	Changed bool `json:"changed"`
}
