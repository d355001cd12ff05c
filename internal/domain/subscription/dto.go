package subscription

type SubscribeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
