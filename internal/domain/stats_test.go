package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func counters(sent, replies, bounced int64) *Counters {
	return &Counters{EmailsSent: sent, UniqueReplies: replies, Bounced: bounced, TotalLeadsContacted: sent}
}

func TestAggregateMonthlyStats(t *testing.T) {
	tests := []struct {
		name     string
		months   []MonthlyStat
		expected AggregatedStats
	}{
		{
			name:   "sem meses retorna zeros e percentuais 0.00",
			months: []MonthlyStat{},
			expected: AggregatedStats{
				ReplyPercentage:  "0.00",
				BouncePercentage: "0.00",
			},
		},
		{
			name: "ignora meses sem payload",
			months: []MonthlyStat{
				{Year: 2024, Month: 3, Stats: counters(100, 10, 2)},
				{Year: 2024, Month: 2, Stats: nil},
				{Year: 2024, Month: 1, Stats: counters(50, 5, 3)},
			},
			expected: AggregatedStats{
				Counters:         Counters{EmailsSent: 150, UniqueReplies: 15, Bounced: 5, TotalLeadsContacted: 150},
				ReplyPercentage:  "10.00",
				BouncePercentage: "3.33",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AggregateMonthlyStats(tt.months))
		})
	}
}

func TestMergeMonthlyStats(t *testing.T) {
	t.Run("soma meses em comum e ordena de forma crescente", func(t *testing.T) {
		campaignA := []MonthlyStat{
			{Year: 2024, Month: 3, Stats: counters(10, 1, 0)},
			{Year: 2024, Month: 1, Stats: counters(20, 2, 1)},
		}
		campaignB := []MonthlyStat{
			{Year: 2024, Month: 3, Stats: counters(5, 1, 1)},
			{Year: 2023, Month: 12, Stats: counters(7, 0, 0)},
		}

		merged := MergeMonthlyStats(campaignA, campaignB)

		assert.Len(t, merged, 3)
		assert.Equal(t, 2023, merged[0].Year)
		assert.Equal(t, 12, merged[0].Month)
		assert.Equal(t, int64(7), merged[0].Stats.EmailsSent)

		assert.Equal(t, 1, merged[1].Month)
		assert.Equal(t, int64(20), merged[1].Stats.EmailsSent)

		assert.Equal(t, 3, merged[2].Month)
		assert.Equal(t, int64(15), merged[2].Stats.EmailsSent)
		assert.Equal(t, int64(2), merged[2].Stats.UniqueReplies)
		assert.Equal(t, int64(1), merged[2].Stats.Bounced)
	})

	t.Run("mês sem payload registra a chave com zeros", func(t *testing.T) {
		merged := MergeMonthlyStats([]MonthlyStat{{Year: 2024, Month: 5, Stats: nil}})

		assert.Len(t, merged, 1)
		assert.Equal(t, Counters{}, *merged[0].Stats)
	})

	t.Run("campanha ausente no mês não cria entrada", func(t *testing.T) {
		merged := MergeMonthlyStats(
			[]MonthlyStat{{Year: 2024, Month: 5, Stats: counters(1, 0, 0)}},
			[]MonthlyStat{},
		)

		assert.Len(t, merged, 1)
	})

	t.Run("sem séries retorna lista vazia", func(t *testing.T) {
		merged := MergeMonthlyStats()

		assert.NotNil(t, merged)
		assert.Empty(t, merged)
	})
}

func TestNewCampaignDetail(t *testing.T) {
	campaign := Campaign{ID: 1, Name: "Q1 Outreach"}
	months := []MonthlyStat{{Year: 2024, Month: 1, Stats: counters(150, 15, 5)}}

	detail := NewCampaignDetail(campaign, 80, 5, months)

	assert.Equal(t, int64(80), detail.MaxDailyCapacity)
	assert.Equal(t, int64(5), detail.ScheduledEmailsCount)
	assert.Equal(t, int64(75), detail.RemainingCapacity)
	assert.Equal(t, int64(150), detail.AggregatedStats.EmailsSent)
	assert.Equal(t, int64(15), detail.AggregatedStats.UniqueReplies)
	assert.Equal(t, int64(5), detail.AggregatedStats.Bounced)

	t.Run("capacidade restante pode ser negativa", func(t *testing.T) {
		detail := NewCampaignDetail(campaign, 10, 12, nil)

		assert.Equal(t, int64(-2), detail.RemainingCapacity)
		assert.NotNil(t, detail.MonthlyStats)
	})
}

func TestZeroCampaignDetail(t *testing.T) {
	detail := ZeroCampaignDetail(Campaign{ID: 9, Name: "Falhou"})

	assert.Equal(t, int64(9), detail.ID)
	assert.Equal(t, "Falhou", detail.Name)
	assert.Zero(t, detail.MaxDailyCapacity)
	assert.Zero(t, detail.ScheduledEmailsCount)
	assert.Zero(t, detail.RemainingCapacity)
	assert.Empty(t, detail.MonthlyStats)
	assert.Equal(t, "0.00", detail.AggregatedStats.ReplyPercentage)
}
