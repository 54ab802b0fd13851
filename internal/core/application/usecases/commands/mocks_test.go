package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/deliverynote"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func getOrNil[T any](args mock.Arguments, i int) T {
	var zero T
	if v, ok := args.Get(i).(T); ok {
		return v
	}
	return zero
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	return getOrNil[*shipment.Shipment](args, 0), args.Error(1)
}
func (m *MockShipmentRepository) Delete(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	return getOrNil[*trip.Trip](args, 0), args.Error(1)
}
func (m *MockTripRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}
func (m *MockTripRepository) GetCompletedByRoute(ctx context.Context, routeID kernel.UUID) ([]*trip.Trip, error) {
	args := m.Called(ctx, routeID)
	return getOrNil[[]*trip.Trip](args, 0), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	return getOrNil[*driver.Driver](args, 0), args.Error(1)
}
func (m *MockDriverRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockDriverRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error) {
	args := m.Called(ctx, licenseNumber)
	return args.Bool(0), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	return getOrNil[*vehicle.Vehicle](args, 0), args.Error(1)
}
func (m *MockVehicleRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockVehicleRepository) ExistsByRegistrationNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	return getOrNil[*route.Route](args, 0), args.Error(1)
}
func (m *MockRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	return getOrNil[[]*route.Route](args, 0), args.Error(1)
}
func (m *MockRouteRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryNoteRepository struct{ mock.Mock }

func (m *MockDeliveryNoteRepository) Add(ctx context.Context, n *deliverynote.DeliveryNote) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockDeliveryNoteRepository) Update(ctx context.Context, n *deliverynote.DeliveryNote) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error) {
	args := m.Called(ctx, id)
	return getOrNil[*deliverynote.DeliveryNote](args, 0), args.Error(1)
}
func (m *MockDeliveryNoteRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockTrackingEventRepository struct{ mock.Mock }

func (m *MockTrackingEventRepository) Add(ctx context.Context, e *tracking.Event) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockTrackingEventRepository) Update(ctx context.Context, e *tracking.Event) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockTrackingEventRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Event, error) {
	args := m.Called(ctx, id)
	return getOrNil[*tracking.Event](args, 0), args.Error(1)
}
func (m *MockTrackingEventRepository) Delete(ctx context.Context, e *tracking.Event) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockTrackingEventRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}
func (m *MockTrackingEventRepository) GetByShipment(ctx context.Context, id kernel.UUID) ([]*tracking.Event, error) {
	args := m.Called(ctx, id)
	return getOrNil[[]*tracking.Event](args, 0), args.Error(1)
}
func (m *MockTrackingEventRepository) GetByTrip(ctx context.Context, id kernel.UUID) ([]*tracking.Event, error) {
	args := m.Called(ctx, id)
	return getOrNil[[]*tracking.Event](args, 0), args.Error(1)
}

type MockFreightChargeRepository struct{ mock.Mock }

func (m *MockFreightChargeRepository) Add(ctx context.Context, c *freight.Charge) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockFreightChargeRepository) Update(ctx context.Context, c *freight.Charge) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockFreightChargeRepository) Get(ctx context.Context, id kernel.UUID) (*freight.Charge, error) {
	args := m.Called(ctx, id)
	return getOrNil[*freight.Charge](args, 0), args.Error(1)
}
func (m *MockFreightChargeRepository) Delete(ctx context.Context, c *freight.Charge) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockFreightChargeRepository) GetByShipment(ctx context.Context, id kernel.UUID) ([]*freight.Charge, error) {
	args := m.Called(ctx, id)
	return getOrNil[[]*freight.Charge](args, 0), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) TripRepository() ports.TripRepository {
	return m.Called().Get(0).(ports.TripRepository)
}
func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}
func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}
func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}
func (m *MockUoW) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	return m.Called().Get(0).(ports.DeliveryNoteRepository)
}
func (m *MockUoW) TrackingEventRepository() ports.TrackingEventRepository {
	return m.Called().Get(0).(ports.TrackingEventRepository)
}
func (m *MockUoW) FreightChargeRepository() ports.FreightChargeRepository {
	return m.Called().Get(0).(ports.FreightChargeRepository)
}

type (
	shipmentUoWFactory     struct{ uow *MockUoW }
	tripUoWFactory         struct{ uow *MockUoW }
	driverUoWFactory       struct{ uow *MockUoW }
	vehicleUoWFactory      struct{ uow *MockUoW }
	routeUoWFactory        struct{ uow *MockUoW }
	deliveryNoteUoWFactory struct{ uow *MockUoW }
	trackingUoWFactory     struct{ uow *MockUoW }
	freightUoWFactory      struct{ uow *MockUoW }
)

func (f shipmentUoWFactory) Create() commands.ShipmentUoW         { return f.uow }
func (f tripUoWFactory) Create() commands.TripUoW                 { return f.uow }
func (f driverUoWFactory) Create() commands.DriverUoW             { return f.uow }
func (f vehicleUoWFactory) Create() commands.VehicleUoW           { return f.uow }
func (f routeUoWFactory) Create() commands.RouteUoW               { return f.uow }
func (f deliveryNoteUoWFactory) Create() commands.DeliveryNoteUoW { return f.uow }
func (f trackingUoWFactory) Create() commands.TrackingEventUoW    { return f.uow }
func (f freightUoWFactory) Create() commands.FreightChargeUoW     { return f.uow }

// expectCommit registers a successful Begin/Commit pair followed by the deferred Rollback.
func expectCommit(ctx context.Context, uow *MockUoW) {
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
}

// expectRollback registers a Begin that ends in the deferred Rollback only.
func expectRollback(ctx context.Context, uow *MockUoW) {
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
}
