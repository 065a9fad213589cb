package domain

import "time"

type Account struct {
	ID         string  `json:"account_id"`
	Name       string  `json:"account_name"`
	Segment    string  `json:"segment"`
	Region     string  `json:"region"`
	Industry   string  `json:"industry"`
	OwnerRepID *string `json:"owner_rep_id"`
	Website    *string `json:"website"`
}

type SupportTicket struct {
	TicketID    string    `json:"ticket_id"`
	AccountID   string    `json:"account_id"`
	CreatedDate time.Time `json:"created_date"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Subject     string    `json:"subject"`
}

type AccountMRRPoint struct {
	Month    time.Time `json:"month"`
	TotalMRR float64   `json:"total_mrr"`
}
