package commands

import (
	"context"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New("CreateRouteCommand must be created via NewCreateRouteCommand constructor")
	ErrRouteCodeIsRequired                = errs.NewValueIsRequiredError("routeCode")
)

type CreateRouteCommand struct {
	routeID    kernel.UUID
	code       string
	definition route.Definition

	guard guard.ConstructorGuard
}

func NewCreateRouteCommand(routeID kernel.UUID, code string, definition route.Definition) (CreateRouteCommand, error) {
	code = strings.TrimSpace(code)

	var codeErr error
	if code == "" {
		codeErr = ErrRouteCodeIsRequired
	}
	if err := errors.Join(routeID.Validate(), codeErr); err != nil {
		return CreateRouteCommand{}, err
	}

	return CreateRouteCommand{
		routeID:    routeID,
		code:       code,
		definition: definition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c CreateRouteCommand) Code() string {
	return c.code
}

func (c CreateRouteCommand) Definition() route.Definition {
	return c.definition
}

type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	clock      ports.Clock
}

func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory, clock ports.Clock) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := route.NewRoute(cmd.RouteID(), cmd.Code(), cmd.Definition(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.RouteRepository()
		exists, existsErr := repo.ExistsByCode(ctx, r.Code())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("routeCode", r.Code())
		}
		return repo.Add(ctx, r)
	})
}

// RefreshRouteStatisticsCommandHandler recomputes the statistics of every route from its
// completed trips and saves the routes whose numbers moved. It runs in one transaction
// and returns how many routes were written.
type RefreshRouteStatisticsCommandHandler struct {
	uowFactory   RouteUoWFactory
	clock        ports.Clock
	statistician services.RouteStatistician
}

func NewRefreshRouteStatisticsCommandHandler(
	uowFactory RouteUoWFactory,
	clock ports.Clock,
	statistician services.RouteStatistician,
) RefreshRouteStatisticsCommandHandler {
	return RefreshRouteStatisticsCommandHandler{uowFactory: uowFactory, clock: clock, statistician: statistician}
}

func (h RefreshRouteStatisticsCommandHandler) Handle(ctx context.Context) (int, error) {
	var refreshed int

	uow := h.uowFactory.Create()
	err := inTransaction(ctx, uow, func() error {
		routes, err := uow.RouteRepository().GetAll(ctx)
		if err != nil {
			return err
		}

		now := h.clock.Now()
		for _, r := range routes {
			trips, tripsErr := uow.TripRepository().GetCompletedByRoute(ctx, r.ID())
			if tripsErr != nil {
				return tripsErr
			}

			changed, applyErr := r.ApplyStatistics(h.statistician.Compute(trips), now)
			if applyErr != nil {
				return applyErr
			}
			if !changed {
				continue
			}
			if err = uow.RouteRepository().Update(ctx, r); err != nil {
				return err
			}
			refreshed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return refreshed, nil
}
