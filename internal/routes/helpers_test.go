package routes_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/money"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func mustAmount(s string) money.Amount {
	return money.MustParse(s)
}

func mustVersion(t *testing.T, m *invalidate.Memory, v invalidate.View) int64 {
	t.Helper()
	n, err := m.Version(context.Background(), v)
	require.NoError(t, err)
	return n
}
