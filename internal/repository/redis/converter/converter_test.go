package converter

import (
	"testing"
	"time"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProducts_ToRedisModelCopiesPointers(t *testing.T) {
	p := domain.Product{ID: 3, Name: "Collar", Price: 450, Description: domain.Ptr("loto")}

	m := Products{}.ToRedisModel(p)
	*p.Description = "changed"

	assert.Equal(t, "loto", *m.Description)
}

func TestProducts_ToEntityReturnsUTC(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("UTC-6", -6*60*60))

	p := Products{}.ToEntity(ProductRedisModel{ID: 3, ReviewCount: 18, CreatedAt: created})

	assert.Equal(t, time.UTC, p.CreatedAt.Location())
	assert.True(t, created.Equal(p.CreatedAt))
	assert.Equal(t, 18, p.ReviewCount)
}
