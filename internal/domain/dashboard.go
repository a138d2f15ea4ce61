package domain

import "github.com/vfg2006/outreach-dashboard-api/pkg/utils"

// LowCapacityThreshold é o percentual de uso abaixo do qual o workspace recebe alerta
const LowCapacityThreshold = 50.0

type BasicDataResponse struct {
	Data []WorkspaceBasicData `json:"data"`
}

type ReplyRatesResponse struct {
	Data []WorkspaceReplyRates `json:"data"`
}

type DetailedStatsResponse struct {
	AggregateStats GlobalAggregateStats `json:"aggregateStats"`
	Data           []WorkspaceDashboard `json:"data"`
}

type GlobalAggregateStats struct {
	MonthlyMetrics GlobalMonthlyMetrics `json:"monthlyMetrics"`
	Capacity       GlobalCapacity       `json:"capacity"`
	Rates          GlobalRates          `json:"rates"`
}

type GlobalMonthlyMetrics struct {
	EmailsSent     int64 `json:"emailsSent"`
	Replies        int64 `json:"replies"`
	Bounces        int64 `json:"bounces"`
	Interested     int64 `json:"interested"`
	LeadsContacted int64 `json:"leadsContacted"`
	Opened         int64 `json:"opened"`
}

type GlobalCapacity struct {
	TotalScheduled   int64 `json:"totalScheduled"`
	TotalMaxCapacity int64 `json:"totalMaxCapacity"`
}

type GlobalRates struct {
	ReplyRate  string `json:"replyRate"`
	BounceRate string `json:"bounceRate"`
}

type WorkspaceDashboard struct {
	WorkspaceName         string                  `json:"workspaceName"`
	TotalScheduled        int64                   `json:"totalScheduled"`
	TotalMaxCapacity      int64                   `json:"totalMaxCapacity"`
	CapacityRatio         string                  `json:"capacityRatio"`
	HasLowCapacityWarning bool                    `json:"hasLowCapacityWarning"`
	MonthlyStats          []MonthlyStat           `json:"monthlyStats"`
	BlacklistedDomains    []BlacklistedDomain     `json:"blackListedDomains"`
	Stats                 WorkspaceDashboardStats `json:"stats"`
}

type WorkspaceDashboardStats struct {
	EmailsSent          int64       `json:"emailsSent"`
	TotalLeadsContacted int64       `json:"total_leads_contacted"`
	Opened              MetricCount `json:"opened"`
	Replies             MetricCount `json:"replies"`
	Bounced             MetricCount `json:"bounced"`
	Interested          MetricCount `json:"interested"`
}

type MetricCount struct {
	Count      int64  `json:"count"`
	Percentage string `json:"percentage,omitempty"`
}

// CalculateCapacityRatio retorna agendados/capacidade*100, 0 quando não há capacidade
func CalculateCapacityRatio(totalScheduled, totalMaxCapacity int64) float64 {
	return utils.Ratio(totalScheduled, totalMaxCapacity)
}

// HasLowCapacityWarning é verdadeiro quando o uso está estritamente abaixo de 50%
func HasLowCapacityWarning(capacityRatio float64) bool {
	return capacityRatio < LowCapacityThreshold
}

// NewWorkspaceDashboard converte a consolidação do workspace na visão do dashboard
func NewWorkspaceDashboard(ws WorkspaceDetailedStats) WorkspaceDashboard {
	ratio := CalculateCapacityRatio(ws.TotalScheduled, ws.TotalMaxCapacity)

	monthly := ws.MonthlyStats
	if monthly == nil {
		monthly = []MonthlyStat{}
	}

	blacklist := ws.BlacklistedDomains
	if blacklist == nil {
		blacklist = []BlacklistedDomain{}
	}

	return WorkspaceDashboard{
		WorkspaceName:         ws.WorkspaceName,
		TotalScheduled:        ws.TotalScheduled,
		TotalMaxCapacity:      ws.TotalMaxCapacity,
		CapacityRatio:         utils.FormatTwoDecimals(ratio),
		HasLowCapacityWarning: HasLowCapacityWarning(ratio),
		MonthlyStats:          monthly,
		BlacklistedDomains:    blacklist,
		Stats: WorkspaceDashboardStats{
			EmailsSent:          ws.Stats.EmailsSent,
			TotalLeadsContacted: ws.Stats.TotalLeadsContacted,
			Opened:              MetricCount{Count: ws.Stats.Opened},
			Replies:             MetricCount{Count: ws.Stats.UniqueReplies, Percentage: ws.Stats.ReplyPercentage},
			Bounced:             MetricCount{Count: ws.Stats.Bounced, Percentage: ws.Stats.BouncePercentage},
			Interested:          MetricCount{Count: ws.Stats.Interested},
		},
	}
}
