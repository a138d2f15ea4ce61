package domain

type SenderIdentity struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	DailyLimit      int64  `json:"daily_limit"`
	EmailsSentCount int64  `json:"emails_sent_count"`
}

type Reply struct {
	ID               int64  `json:"id"`
	FromEmailAddress string `json:"from_email_address"`
}

type BlacklistedDomain struct {
	ID        int64  `json:"id"`
	Domain    string `json:"domain"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CalculateMaxDailyCapacity soma o limite diário de todos os remetentes.
// Limites ausentes ou inválidos já chegam como 0; lista vazia resulta em 0.
func CalculateMaxDailyCapacity(senders []SenderIdentity) int64 {
	var total int64
	for _, sender := range senders {
		total += sender.DailyLimit
	}

	return total
}
