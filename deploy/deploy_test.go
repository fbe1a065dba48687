package deploy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubBlockchain struct {
	Blockchain
}

func TestDeployMissingParams(t *testing.T) {
	_, err := Deploy(context.Background(), Prm{})
	require.ErrorContains(t, err, "missing blockchain client")

	_, err = Deploy(context.Background(), Prm{Blockchain: stubBlockchain{}})
	require.ErrorContains(t, err, "missing local account")
}
