package admin

import "fitnflex/internal/domain/payment"

type Balance struct {
	Info        *payment.Summary `json:"info"`
	Subscribers int64            `json:"subscribers"`
	ChartData   [][]any          `json:"chartData"`
}

type RejectRequest struct {
	Feedback string `json:"feedback"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
