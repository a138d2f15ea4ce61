package domain

import "fmt"

// ProviderCategory é a classificação grosseira do provedor de e-mail (via registro MX)
type ProviderCategory string

const (
	ProviderGoogle     ProviderCategory = "Google"
	ProviderOutlook    ProviderCategory = "Outlook"
	ProviderEnterprise ProviderCategory = "Enterprise"
	ProviderUnknown    ProviderCategory = "Unknown"
)

// ProviderReplyRate é uma linha da matriz remetente → respondente
type ProviderReplyRate struct {
	ProviderCombination string `json:"providerCombination"`
	TotalReplies        int64  `json:"totalReplies"`
	TotalSent           int64  `json:"totalSent"`
	ReplyRate           string `json:"replyRate"`
}

func ProviderCombinationLabel(sender, reply ProviderCategory) string {
	return fmt.Sprintf("%s → %s", sender, reply)
}
