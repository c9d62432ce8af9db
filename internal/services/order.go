package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"elaundry/internal/entities"
	"elaundry/internal/events"
	"elaundry/internal/orderform"
	"elaundry/internal/repositories"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/eventbus"
	"elaundry/pkg/scheduler"
	"elaundry/pkg/validation"
)

// OrderService accepts validated drafts. Orders are not stored; they are
// announced on the event bus.
type OrderService struct {
	branchRepository repositories.BranchRepositoryInterface
	bus              *eventbus.Bus
	validator        *validation.CustomValidator
	formOptions      orderform.Options
	clock            scheduler.Clock
	logger           *zap.Logger
}

func NewOrderService(
	branchRepository repositories.BranchRepositoryInterface,
	bus *eventbus.Bus,
	validator *validation.CustomValidator,
	formOptions orderform.Options,
	clock scheduler.Clock,
	logger *zap.Logger,
) *OrderService {
	if clock == nil {
		clock = scheduler.RealClock
	}
	return &OrderService{
		branchRepository: branchRepository,
		bus:              bus,
		validator:        validator,
		formOptions:      formOptions,
		clock:            clock,
		logger:           logger,
	}
}

// NewForm starts an empty order form over the given branches.
func (s *OrderService) NewForm(branches []entities.Branch) *orderform.Form {
	return orderform.New(branches, s, s.validator, s.formOptions)
}

// SubmitOrder implements orderform.Submitter.
func (s *OrderService) SubmitOrder(ctx context.Context, draft entities.OrderDraft) (orderform.Acknowledgment, error) {
	var branch *entities.Branch
	if !draft.BranchID.IsZero() {
		b, err := s.branchRepository.FindBranch(ctx, draft.BranchID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return orderform.Acknowledgment{}, fmt.Errorf("%w: unknown branch %q", apperrors.ErrValidation, draft.BranchID)
		}
		if err != nil {
			return orderform.Acknowledgment{}, err
		}
		branch = b
	}

	receivedAt := s.clock.Now()
	s.logger.Info("order accepted",
		zap.String("service", string(draft.ServiceType)),
		zap.String("branch", draft.BranchID.String()),
		zap.String("date", draft.Date),
		zap.String("time", draft.Time),
	)

	if s.bus != nil {
		s.bus.Publish(ctx, events.OrderSubmittedEvent{Draft: draft, Branch: branch, ReceivedAt: receivedAt})
	}

	return orderform.Acknowledgment{Message: orderform.MessageSubmitted, ReceivedAt: receivedAt}, nil
}
