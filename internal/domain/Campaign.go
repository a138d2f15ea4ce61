package domain

type Campaign struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CampaignDetail é o registro consolidado de uma campanha: capacidade diária,
// envios agendados para hoje e a série mensal de estatísticas
type CampaignDetail struct {
	Campaign
	MaxDailyCapacity     int64           `json:"maxDailyCapacity"`
	ScheduledEmailsCount int64           `json:"scheduledEmailsCount"`
	RemainingCapacity    int64           `json:"remainingCapacity"`
	MonthlyStats         []MonthlyStat   `json:"monthlyStats"`
	AggregatedStats      AggregatedStats `json:"aggregatedStats"`
}

// ZeroCampaignDetail é o registro usado quando a busca de detalhes da campanha falha.
// Contribui com zero em todas as somas do workspace.
func ZeroCampaignDetail(campaign Campaign) CampaignDetail {
	return CampaignDetail{
		Campaign:        campaign,
		MonthlyStats:    []MonthlyStat{},
		AggregatedStats: NewAggregatedStats(Counters{}),
	}
}

// NewCampaignDetail monta o detalhe da campanha. RemainingCapacity pode ser negativo.
func NewCampaignDetail(campaign Campaign, maxDailyCapacity, scheduledEmailsCount int64, monthlyStats []MonthlyStat) CampaignDetail {
	if monthlyStats == nil {
		monthlyStats = []MonthlyStat{}
	}

	return CampaignDetail{
		Campaign:             campaign,
		MaxDailyCapacity:     maxDailyCapacity,
		ScheduledEmailsCount: scheduledEmailsCount,
		RemainingCapacity:    maxDailyCapacity - scheduledEmailsCount,
		MonthlyStats:         monthlyStats,
		AggregatedStats:      AggregateMonthlyStats(monthlyStats),
	}
}
