package shipment

import (
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
)

// Type classifies the business flow a shipment belongs to.
type Type string

const (
	TypeInbound          Type = "Inbound"
	TypeOutbound         Type = "Outbound"
	TypeInterWarehouse   Type = "InterWarehouse"
	TypeReturn           Type = "Return"
	TypeCustomerDelivery Type = "CustomerDelivery"
	TypeSupplierDelivery Type = "SupplierDelivery"
)

var allTypes = []Type{
	TypeInbound, TypeOutbound, TypeInterWarehouse, TypeReturn, TypeCustomerDelivery, TypeSupplierDelivery,
}

func (t Type) Validate() error {
	if !slices.Contains(allTypes, t) {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a shipment type", string(t)))
	}
	return nil
}

// Priority orders shipments competing for the same capacity.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

var allPriorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

func (p Priority) Validate() error {
	if !slices.Contains(allPriorities, p) {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a shipment priority", string(p)))
	}
	return nil
}

// Mode is the transport mode.
type Mode string

const (
	ModeRoad       Mode = "Road"
	ModeRail       Mode = "Rail"
	ModeAir        Mode = "Air"
	ModeSea        Mode = "Sea"
	ModeCourier    Mode = "Courier"
	ModeMultimodal Mode = "Multimodal"
)

var allModes = []Mode{ModeRoad, ModeRail, ModeAir, ModeSea, ModeCourier, ModeMultimodal}

func (m Mode) Validate() error {
	if !slices.Contains(allModes, m) {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is not a transport mode", string(m)))
	}
	return nil
}
