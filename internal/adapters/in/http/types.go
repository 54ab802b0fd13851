package http

import (
	"time"

	"logistics/internal/core/domain/model/deliverynote"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Created is returned by every create operation.
type Created struct {
	ID openapi_types.UUID `json:"id"`
}

type RefreshedRoutes struct {
	Updated int `json:"updated"`
}

type Address struct {
	Line1        string `json:"line1"`
	Line2        string `json:"line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

func (a Address) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(kernel.AddressFields{
		Line1:        a.Line1,
		Line2:        a.Line2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		ContactName:  a.ContactName,
		ContactPhone: a.ContactPhone,
	})
}

type ShipmentItem struct {
	LineNumber        int             `json:"lineNumber"`
	ProductCode       string          `json:"productCode"`
	Description       string          `json:"description,omitempty"`
	OrderedQuantity   int             `json:"orderedQuantity"`
	ShippedQuantity   int             `json:"shippedQuantity"`
	DeliveredQuantity int             `json:"deliveredQuantity"`
	DamagedQuantity   int             `json:"damagedQuantity"`
	ReturnedQuantity  int             `json:"returnedQuantity"`
	UnitWeight        decimal.Decimal `json:"unitWeight"`
}

// ShipmentBody is the body of POST and PUT /shipments. The number is ignored on update.
type ShipmentBody struct {
	ShipmentNumber      string              `json:"shipmentNumber"`
	ShipmentType        string              `json:"shipmentType"`
	Priority            string              `json:"priority"`
	TransportMode       string              `json:"transportMode"`
	Origin              Address             `json:"origin"`
	Destination         Address             `json:"destination"`
	TripID              *openapi_types.UUID `json:"tripId,omitempty"`
	VehicleID           *openapi_types.UUID `json:"vehicleId,omitempty"`
	DriverID            *openapi_types.UUID `json:"driverId,omitempty"`
	RouteID             *openapi_types.UUID `json:"routeId,omitempty"`
	PackageCount        int                 `json:"packageCount"`
	TotalWeight         decimal.Decimal     `json:"totalWeight"`
	TotalVolume         decimal.Decimal     `json:"totalVolume"`
	DeclaredValue       decimal.Decimal     `json:"declaredValue"`
	PlannedPickupDate   *time.Time          `json:"plannedPickupDate,omitempty"`
	PlannedDeliveryDate *time.Time          `json:"plannedDeliveryDate,omitempty"`
	FreightCharges      decimal.Decimal     `json:"freightCharges"`
	TaxAmount           decimal.Decimal     `json:"taxAmount"`
	TotalAmount         decimal.Decimal     `json:"totalAmount"`
	Notes               string              `json:"notes,omitempty"`
	Items               []ShipmentItem      `json:"items"`
}

func (b ShipmentBody) toDomain() (shipment.Details, []shipment.ItemFields, error) {
	origin, err := b.Origin.toDomain()
	if err != nil {
		return shipment.Details{}, nil, err
	}
	destination, err := b.Destination.toDomain()
	if err != nil {
		return shipment.Details{}, nil, err
	}
	tripID, err := optionalID("tripId", b.TripID)
	if err != nil {
		return shipment.Details{}, nil, err
	}
	vehicleID, err := optionalID("vehicleId", b.VehicleID)
	if err != nil {
		return shipment.Details{}, nil, err
	}
	driverID, err := optionalID("driverId", b.DriverID)
	if err != nil {
		return shipment.Details{}, nil, err
	}
	routeID, err := optionalID("routeId", b.RouteID)
	if err != nil {
		return shipment.Details{}, nil, err
	}

	items := make([]shipment.ItemFields, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, shipment.ItemFields{
			LineNumber:  item.LineNumber,
			ProductCode: item.ProductCode,
			Description: item.Description,
			Quantities: shipment.Quantities{
				Ordered:   item.OrderedQuantity,
				Shipped:   item.ShippedQuantity,
				Delivered: item.DeliveredQuantity,
				Damaged:   item.DamagedQuantity,
				Returned:  item.ReturnedQuantity,
			},
			UnitWeight: item.UnitWeight,
		})
	}

	return shipment.Details{
		Type:        shipment.Type(b.ShipmentType),
		Priority:    shipment.Priority(b.Priority),
		Mode:        shipment.Mode(b.TransportMode),
		Origin:      origin,
		Destination: destination,
		TripID:      tripID,
		VehicleID:   vehicleID,
		DriverID:    driverID,
		RouteID:     routeID,
		Packages: shipment.Packages{
			Count:         b.PackageCount,
			TotalWeight:   b.TotalWeight,
			TotalVolume:   b.TotalVolume,
			DeclaredValue: b.DeclaredValue,
		},
		PlannedPickupAt:   b.PlannedPickupDate,
		PlannedDeliveryAt: b.PlannedDeliveryDate,
		Charges: shipment.Charges{
			FreightCharges: b.FreightCharges,
			TaxAmount:      b.TaxAmount,
			TotalAmount:    b.TotalAmount,
		},
		Notes: b.Notes,
	}, items, nil
}

type InTransitBody struct {
	LocationName string `json:"locationName,omitempty"`
}

type DeliverShipmentBody struct {
	DeliveredToName string `json:"deliveredToName,omitempty"`
	DeliveryRemarks string `json:"deliveryRemarks,omitempty"`
}

type CancelBody struct {
	Reason string `json:"reason,omitempty"`
}

type TripStop struct {
	Sequence         int        `json:"sequence"`
	LocationName     string     `json:"locationName"`
	PlannedArrivalAt *time.Time `json:"plannedArrivalAt,omitempty"`
}

type TripBody struct {
	TripNumber       string              `json:"tripNumber"`
	VehicleID        openapi_types.UUID  `json:"vehicleId"`
	DriverID         openapi_types.UUID  `json:"driverId"`
	CoDriverID       *openapi_types.UUID `json:"coDriverId,omitempty"`
	RouteID          *openapi_types.UUID `json:"routeId,omitempty"`
	PlannedStartTime *time.Time          `json:"plannedStartTime,omitempty"`
	PlannedEndTime   *time.Time          `json:"plannedEndTime,omitempty"`
	PlannedDistance  decimal.Decimal     `json:"plannedDistance"`
	Stops            []TripStop          `json:"stops,omitempty"`
	FuelExpense      decimal.Decimal     `json:"fuelExpense"`
	TollExpense      decimal.Decimal     `json:"tollExpense"`
	OtherExpense     decimal.Decimal     `json:"otherExpense"`
}

func (b TripBody) toDomain() (trip.Plan, error) {
	vehicleID, err := requiredID("vehicleId", b.VehicleID)
	if err != nil {
		return trip.Plan{}, err
	}
	driverID, err := requiredID("driverId", b.DriverID)
	if err != nil {
		return trip.Plan{}, err
	}
	coDriverID, err := optionalID("coDriverId", b.CoDriverID)
	if err != nil {
		return trip.Plan{}, err
	}
	routeID, err := optionalID("routeId", b.RouteID)
	if err != nil {
		return trip.Plan{}, err
	}

	stops := make([]trip.Stop, 0, len(b.Stops))
	for _, s := range b.Stops {
		stops = append(stops, trip.Stop{
			Sequence:         s.Sequence,
			LocationName:     s.LocationName,
			PlannedArrivalAt: s.PlannedArrivalAt,
		})
	}

	return trip.Plan{
		VehicleID:       vehicleID,
		DriverID:        driverID,
		CoDriverID:      coDriverID,
		RouteID:         routeID,
		PlannedStartAt:  b.PlannedStartTime,
		PlannedEndAt:    b.PlannedEndTime,
		PlannedDistance: b.PlannedDistance,
		Stops:           stops,
		Expenses: trip.Expenses{
			Fuel:  b.FuelExpense,
			Toll:  b.TollExpense,
			Other: b.OtherExpense,
		},
	}, nil
}

type LocationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type VehicleLocationBody struct {
	Latitude               float64          `json:"latitude"`
	Longitude              float64          `json:"longitude"`
	CurrentOdometerReading *decimal.Decimal `json:"currentOdometerReading,omitempty"`
}

type DriverBody struct {
	DriverCode    string `json:"driverCode"`
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Phone         string `json:"phone,omitempty"`
}

func (b DriverBody) toDomain() driver.Profile {
	return driver.Profile{Name: b.Name, LicenseNumber: b.LicenseNumber, Phone: b.Phone}
}

type MarkOnTripBody struct {
	TripID openapi_types.UUID `json:"tripId"`
}

type VehicleBody struct {
	VehicleCode        string `json:"vehicleCode"`
	RegistrationNumber string `json:"registrationNumber"`
	VehicleTypeCode    string `json:"vehicleTypeCode,omitempty"`
	Make               string `json:"make,omitempty"`
	Model              string `json:"model,omitempty"`
}

func (b VehicleBody) toDomain() vehicle.Registration {
	return vehicle.Registration{
		RegistrationNumber: b.RegistrationNumber,
		VehicleTypeCode:    b.VehicleTypeCode,
		Make:               b.Make,
		Model:              b.Model,
	}
}

type RouteBody struct {
	RouteCode                string          `json:"routeCode"`
	Name                     string          `json:"name"`
	Origin                   string          `json:"origin,omitempty"`
	Destination              string          `json:"destination,omitempty"`
	TotalDistance            decimal.Decimal `json:"totalDistance"`
	EstimatedDurationMinutes int             `json:"estimatedDurationMinutes"`
}

func (b RouteBody) toDomain() route.Definition {
	return route.Definition{
		Name:                     b.Name,
		Origin:                   b.Origin,
		Destination:              b.Destination,
		TotalDistance:            b.TotalDistance,
		EstimatedDurationMinutes: b.EstimatedDurationMinutes,
	}
}

type DeliveryNoteBody struct {
	DeliveryNoteNumber string              `json:"deliveryNoteNumber"`
	ShipmentID         *openapi_types.UUID `json:"shipmentId,omitempty"`
	ItemCount          int                 `json:"itemCount"`
	TotalQuantity      int                 `json:"totalQuantity"`
}

type DeliveryProofBody struct {
	ReceiverName    string   `json:"receiverName,omitempty"`
	SignatureURL    string   `json:"signatureUrl,omitempty"`
	PhotoURLs       []string `json:"photoUrls,omitempty"`
	PartialDelivery bool     `json:"partialDelivery"`
}

func (b DeliveryProofBody) toDomain() deliverynote.Proof {
	return deliverynote.Proof{
		ReceiverName: b.ReceiverName,
		SignatureURL: b.SignatureURL,
		PhotoURLs:    b.PhotoURLs,
		Partial:      b.PartialDelivery,
	}
}

type TrackingEventBody struct {
	EventNumber      string              `json:"eventNumber,omitempty"`
	EventType        string              `json:"eventType"`
	Severity         string              `json:"severity,omitempty"`
	ShipmentID       *openapi_types.UUID `json:"shipmentId,omitempty"`
	TripID           *openapi_types.UUID `json:"tripId,omitempty"`
	EventTimestamp   *time.Time          `json:"eventTimestamp,omitempty"`
	LocationName     string              `json:"locationName,omitempty"`
	Latitude         *float64            `json:"latitude,omitempty"`
	Longitude        *float64            `json:"longitude,omitempty"`
	Description      string              `json:"description,omitempty"`
	ExceptionType    string              `json:"exceptionType,omitempty"`
	ExceptionDetails string              `json:"exceptionDetails,omitempty"`
}

func (b TrackingEventBody) toDomain() (tracking.Details, error) {
	shipmentID, err := optionalID("shipmentId", b.ShipmentID)
	if err != nil {
		return tracking.Details{}, err
	}
	tripID, err := optionalID("tripId", b.TripID)
	if err != nil {
		return tracking.Details{}, err
	}

	var location *kernel.GeoPoint
	switch {
	case b.Latitude != nil && b.Longitude != nil:
		point, pointErr := kernel.NewGeoPoint(*b.Latitude, *b.Longitude)
		if pointErr != nil {
			return tracking.Details{}, pointErr
		}
		location = &point
	case b.Latitude != nil || b.Longitude != nil:
		return tracking.Details{}, errs.NewValueIsRequiredError("latitude and longitude")
	}

	details := tracking.Details{
		Type:             tracking.EventType(b.EventType),
		Severity:         tracking.Severity(b.Severity),
		ShipmentID:       shipmentID,
		TripID:           tripID,
		LocationName:     b.LocationName,
		Location:         location,
		Description:      b.Description,
		ExceptionType:    b.ExceptionType,
		ExceptionDetails: b.ExceptionDetails,
	}
	if b.EventTimestamp != nil {
		details.Timestamp = *b.EventTimestamp
	}
	return details, nil
}

type ResolveBody struct {
	ResolutionNotes string `json:"resolutionNotes,omitempty"`
}

type FreightChargeBody struct {
	ShipmentID         *openapi_types.UUID `json:"shipmentId,omitempty"`
	TripID             *openapi_types.UUID `json:"tripId,omitempty"`
	ChargeType         string              `json:"chargeType"`
	CalculationMethod  string              `json:"calculationMethod"`
	Quantity           decimal.Decimal     `json:"quantity"`
	Rate               decimal.Decimal     `json:"rate"`
	SlabRates          []freight.SlabRate  `json:"slabRates,omitempty"`
	BaseAmount         decimal.Decimal     `json:"baseAmount"`
	DiscountPercentage decimal.Decimal     `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal     `json:"discountAmount"`
	TaxPercentage      decimal.Decimal     `json:"taxPercentage"`
	Description        string              `json:"description,omitempty"`
}

func (b FreightChargeBody) toDomain() (freight.Terms, error) {
	shipmentID, err := optionalID("shipmentId", b.ShipmentID)
	if err != nil {
		return freight.Terms{}, err
	}
	tripID, err := optionalID("tripId", b.TripID)
	if err != nil {
		return freight.Terms{}, err
	}
	return freight.Terms{
		ShipmentID:         shipmentID,
		TripID:             tripID,
		Type:               freight.ChargeType(b.ChargeType),
		Method:             freight.CalculationMethod(b.CalculationMethod),
		Quantity:           b.Quantity,
		Rate:               b.Rate,
		SlabRates:          b.SlabRates,
		BaseAmount:         b.BaseAmount,
		DiscountPercentage: b.DiscountPercentage,
		DiscountAmount:     b.DiscountAmount,
		TaxPercentage:      b.TaxPercentage,
		Description:        b.Description,
	}, nil
}

func requiredID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	out, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return out, nil
}

func optionalID(param string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := requiredID(param, *id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
