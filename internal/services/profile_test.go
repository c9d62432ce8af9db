package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportOrders(t *testing.T) {
	s := NewProfileService(zap.NewNop())

	var buf bytes.Buffer
	require.NoError(t, s.ExportOrders(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Order ID", "Service", "Status", "Date"}, rows[0])
	assert.Equal(t, []string{"2", "Dry Clean", "In Progress", "2025-12-05"}, rows[2])
}

func TestOrdersReturnsCopy(t *testing.T) {
	s := NewProfileService(zap.NewNop())
	orders := s.Orders()
	orders[0].Service = "changed"
	assert.Equal(t, "Wash & Fold", s.Orders()[0].Service)
	assert.Equal(t, "J", s.Profile().Initial())
}
