package domain

import (
	"sort"

	"github.com/vfg2006/outreach-dashboard-api/pkg/utils"
)

// Counters é o pacote de contadores brutos de uma campanha/período
type Counters struct {
	EmailsSent          int64 `json:"emails_sent"`
	Opened              int64 `json:"opened"`
	UniqueOpened        int64 `json:"unique_opened"`
	UniqueReplies       int64 `json:"unique_replies"`
	Bounced             int64 `json:"bounced"`
	Interested          int64 `json:"interested"`
	TotalLeadsContacted int64 `json:"total_leads_contacted"`
}

// Add soma os contadores elemento a elemento
func (c Counters) Add(other Counters) Counters {
	return Counters{
		EmailsSent:          c.EmailsSent + other.EmailsSent,
		Opened:              c.Opened + other.Opened,
		UniqueOpened:        c.UniqueOpened + other.UniqueOpened,
		UniqueReplies:       c.UniqueReplies + other.UniqueReplies,
		Bounced:             c.Bounced + other.Bounced,
		Interested:          c.Interested + other.Interested,
		TotalLeadsContacted: c.TotalLeadsContacted + other.TotalLeadsContacted,
	}
}

// MonthlyStat são os contadores de um mês (Month de 1 a 12).
// Stats é nil quando a plataforma não devolveu dados para o mês.
type MonthlyStat struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Stats *Counters `json:"stats"`
}

// AggregatedStats são os contadores somados mais os percentuais derivados
type AggregatedStats struct {
	Counters
	ReplyPercentage  string `json:"reply_percentage"`
	BouncePercentage string `json:"bounce_percentage"`
}

func NewAggregatedStats(counters Counters) AggregatedStats {
	return AggregatedStats{
		Counters:         counters,
		ReplyPercentage:  utils.FormatPercentage(counters.UniqueReplies, counters.TotalLeadsContacted),
		BouncePercentage: utils.FormatPercentage(counters.Bounced, counters.EmailsSent),
	}
}

// SumMonthlyStats soma os contadores de todos os meses, ignorando meses sem payload
func SumMonthlyStats(months []MonthlyStat) Counters {
	var total Counters
	for _, month := range months {
		if month.Stats == nil {
			continue
		}
		total = total.Add(*month.Stats)
	}

	return total
}

func AggregateMonthlyStats(months []MonthlyStat) AggregatedStats {
	return NewAggregatedStats(SumMonthlyStats(months))
}

type monthKey struct {
	year  int
	month int
}

// MergeMonthlyStats une as séries mensais de várias campanhas pela chave (ano, mês),
// somando os contadores de quem reporta aquele mês. O resultado é ordenado por ano e mês.
// Um mês reportado sem payload registra a chave mas não soma nada.
func MergeMonthlyStats(series ...[]MonthlyStat) []MonthlyStat {
	merged := make(map[monthKey]*Counters)

	for _, months := range series {
		for _, month := range months {
			key := monthKey{year: month.Year, month: month.Month}

			acc, exists := merged[key]
			if !exists {
				acc = &Counters{}
				merged[key] = acc
			}

			if month.Stats != nil {
				*acc = acc.Add(*month.Stats)
			}
		}
	}

	result := make([]MonthlyStat, 0, len(merged))
	for key, counters := range merged {
		result = append(result, MonthlyStat{
			Year:  key.year,
			Month: key.month,
			Stats: counters,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})

	return result
}
