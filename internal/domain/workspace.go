package domain

// Workspace é uma conta na plataforma de campanhas, identificada pelo nome e pelo token
type Workspace struct {
	Name  string
	Token string
}

type WorkspaceBasicData struct {
	WorkspaceName string     `json:"workspaceName"`
	Campaigns     []Campaign `json:"campaigns"`
}

type WorkspaceDetailedStats struct {
	WorkspaceName      string              `json:"workspaceName"`
	TotalMaxCapacity   int64               `json:"totalMaxCapacity"`
	TotalScheduled     int64               `json:"totalScheduled"`
	Campaigns          []CampaignDetail    `json:"campaigns"`
	MonthlyStats       []MonthlyStat       `json:"monthlyStats"`
	Stats              AggregatedStats     `json:"stats"`
	BlacklistedDomains []BlacklistedDomain `json:"blackListedDomains"`
}

// ZeroWorkspaceDetailedStats representa um workspace cuja consolidação falhou
func ZeroWorkspaceDetailedStats(workspaceName string) WorkspaceDetailedStats {
	return WorkspaceDetailedStats{
		WorkspaceName:      workspaceName,
		Campaigns:          []CampaignDetail{},
		MonthlyStats:       []MonthlyStat{},
		Stats:              NewAggregatedStats(Counters{}),
		BlacklistedDomains: []BlacklistedDomain{},
	}
}

type WorkspaceReplyRates struct {
	WorkspaceName string              `json:"workspaceName"`
	Data          []ProviderReplyRate `json:"data"`
}
