package outreachdomain

type Campaign struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// CampaignStats é o pacote de contadores devolvido por /campaigns/{id}/stats
type CampaignStats struct {
	EmailsSent              FlexInt `json:"emails_sent"`
	Opened                  FlexInt `json:"opened"`
	UniqueOpened            FlexInt `json:"unique_opened"`
	UniqueRepliesPerContact FlexInt `json:"unique_replies_per_contact"`
	Bounced                 FlexInt `json:"bounced"`
	Interested              FlexInt `json:"interested"`
	TotalLeadsContacted     FlexInt `json:"total_leads_contacted"`
}

type ScheduledEmail struct {
	ID            int64  `json:"id"`
	Status        string `json:"status,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
}

type BlacklistedDomain struct {
	ID        int64  `json:"id"`
	Domain    string `json:"domain"`
	CreatedAt string `json:"created_at,omitempty"`
}
