package voting

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextLogger(t *testing.T) {
	bg := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(bg))

	var buf bytes.Buffer
	logger := log.NewTMLogger(&buf)
	ctx := WithLogger(bg, logger)
	assert.Equal(t, logger, GetLogger(ctx))

	ctx = WithLogInfo(ctx, "module", "ballot")
	GetLogger(ctx).Info("cast")
	assert.Contains(t, buf.String(), "module=ballot")
}

func TestContextHeight(t *testing.T) {
	ctx := context.Background()
	h, ok := GetHeight(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(0), h)

	ctx = WithHeight(ctx, 3)
	h, ok = GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(3), h)

	// Height is assigned once per operation.
	assert.Panics(t, func() { WithHeight(ctx, 4) })
}

func TestContextChainID(t *testing.T) {
	cases := map[string]bool{
		"general-assembly":            true,
		"round_2019":                  true,
		"abc":                         false,
		"with space":                  false,
		"":                            false,
		"far-too-long-for-a-chain-id": false,
	}
	for chainID, valid := range cases {
		t.Run(chainID, func(t *testing.T) {
			assert.Equal(t, valid, IsValidChainID(chainID))
			if !valid {
				assert.Panics(t, func() { WithChainID(context.Background(), chainID) })
				return
			}
			ctx := WithChainID(context.Background(), chainID)
			assert.Equal(t, chainID, GetChainID(ctx))
			assert.Panics(t, func() { WithChainID(ctx, "another-ledger") })
		})
	}
	assert.Equal(t, "", GetChainID(context.Background()))
}
