package outreachdomain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected int64
	}{
		{name: "número inteiro", payload: `{"v": 50}`, expected: 50},
		{name: "número decimal é truncado", payload: `{"v": 12.9}`, expected: 12},
		{name: "string numérica", payload: `{"v": "30"}`, expected: 30},
		{name: "string com sufixo", payload: `{"v": "30 emails"}`, expected: 30},
		{name: "string não numérica", payload: `{"v": "abc"}`, expected: 0},
		{name: "string vazia", payload: `{"v": ""}`, expected: 0},
		{name: "null", payload: `{"v": null}`, expected: 0},
		{name: "ausente", payload: `{}`, expected: 0},
		{name: "booleano", payload: `{"v": true}`, expected: 0},
		{name: "objeto", payload: `{"v": {"a": 1}}`, expected: 0},
		{name: "negativo", payload: `{"v": "-5"}`, expected: -5},
		{name: "número acima de int64", payload: `{"v": 1e30}`, expected: 0},
		{name: "número abaixo de int64", payload: `{"v": -1e30}`, expected: 0},
		{name: "string acima de int64", payload: `{"v": "99999999999999999999"}`, expected: 0},
		{name: "string com sufixo acima de int64", payload: `{"v": "99999999999999999999 emails"}`, expected: 0},
		{name: "maior int64", payload: `{"v": 9223372036854775807}`, expected: 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V FlexInt `json:"v"`
			}

			err := json.Unmarshal([]byte(tt.payload), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.V.Int64())
		})
	}
}

func TestCampaignStats_CamposAusentes(t *testing.T) {
	var stats CampaignStats
	err := json.Unmarshal([]byte(`{"emails_sent": "100", "unique_replies_per_contact": 10, "bounced": null}`), &stats)
	require.NoError(t, err)

	assert.Equal(t, int64(100), stats.EmailsSent.Int64())
	assert.Equal(t, int64(10), stats.UniqueRepliesPerContact.Int64())
	assert.Equal(t, int64(0), stats.Bounced.Int64())
	assert.Equal(t, int64(0), stats.TotalLeadsContacted.Int64())
}
