package outreachdomain

type SenderEmail struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name,omitempty"`
	Email           string  `json:"email"`
	DailyLimit      FlexInt `json:"daily_limit"`
	EmailsSentCount FlexInt `json:"emails_sent_count"`
}

type Reply struct {
	ID               int64  `json:"id"`
	FromEmailAddress string `json:"from_email_address"`
	Subject          string `json:"subject,omitempty"`
}
