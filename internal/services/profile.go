package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"elaundry/internal/entities"
)

const ordersSheet = "My Orders"

var orderHeaders = []interface{}{"Order ID", "Service", "Status", "Date"}

// ProfileService serves the demo customer profile. There are no accounts;
// the data is fixed.
type ProfileService struct {
	profile entities.Profile
	orders  []entities.OrderRecord
	logger  *zap.Logger
}

func NewProfileService(logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profile: entities.Profile{
			Name:    "John Doe",
			Email:   "john@example.com",
			Phone:   "+880123456789",
			Address: "123 Main Street, Dhaka, Bangladesh",
		},
		orders: []entities.OrderRecord{
			{ID: 1, Service: "Wash & Fold", Status: entities.OrderCompleted, Date: "2025-12-01"},
			{ID: 2, Service: "Dry Clean", Status: entities.OrderInProgress, Date: "2025-12-05"},
			{ID: 3, Service: "Ironing", Status: entities.OrderPending, Date: "2025-12-08"},
		},
		logger: logger,
	}
}

func (s *ProfileService) Profile() entities.Profile { return s.profile }

func (s *ProfileService) Orders() []entities.OrderRecord {
	return append([]entities.OrderRecord(nil), s.orders...)
}

// ExportOrders writes the order history as an xlsx workbook.
func (s *ProfileService) ExportOrders(w io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &orderHeaders); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ordersSheet, "A1", "D1", style); err != nil {
		return err
	}

	for i, o := range s.orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{o.ID, o.Service, string(o.Status), o.Date}
		if err := f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(ordersSheet, "B", "C", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(ordersSheet, "D", "D", 14); err != nil {
		return err
	}

	return f.Write(w)
}
