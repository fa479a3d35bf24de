package tr

import (
	"context"
	"testing"

	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
}

type fakeQuerier struct {
	Querier
}

func TestTxFromCtx_Missing(t *testing.T) {
	_, err := TxFromCtx(context.Background())
	require.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestTxFromCtx_StringKeyIgnored(t *testing.T) {
	//nolint:staticcheck // строковый ключ не должен совпадать с типизированным
	ctx := context.WithValue(context.Background(), "tx", &fakeTx{})

	_, err := TxFromCtx(ctx)
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestQuerierFromCtx(t *testing.T) {
	pool := &fakeQuerier{}
	tx := &fakeTx{}

	assert.Same(t, pool, QuerierFromCtx(context.Background(), pool))

	got := QuerierFromCtx(WithTx(context.Background(), tx), pool)
	assert.Same(t, tx, got)
}
