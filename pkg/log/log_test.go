package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	_, err := uuid.Parse(correlationID)
	assert.NoError(t, err)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestGetCorrelationID_SemID(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestWithFields_Desenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: L.(*logger).entry}

	t.Run("descarta campos irrelevantes", func(t *testing.T) {
		filtered := base.WithFields(Fields{"campaign_id": 1})
		assert.Same(t, base, filtered)
	})

	t.Run("mantém o workspace", func(t *testing.T) {
		filtered := base.WithFields(Fields{"workspace": "Acme", "campaign_id": 1}).(*logger)
		assert.Equal(t, "Acme", filtered.entry.Data["workspace"])
		assert.NotContains(t, filtered.entry.Data, "campaign_id")
	})
}

func TestWithFields_Producao(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	filtered := L.WithFields(Fields{"campaign_id": 1}).(*logger)
	assert.Equal(t, 1, filtered.entry.Data["campaign_id"])
}
