package freight

import (
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
)

type ChargeType string

const (
	ChargeBaseFreight      ChargeType = "BaseFreight"
	ChargeFuelSurcharge    ChargeType = "FuelSurcharge"
	ChargeHandling         ChargeType = "Handling"
	ChargeLoading          ChargeType = "Loading"
	ChargeUnloading        ChargeType = "Unloading"
	ChargeToll             ChargeType = "Toll"
	ChargeInsurance        ChargeType = "Insurance"
	ChargeDetention        ChargeType = "Detention"
	ChargeDemurrage        ChargeType = "Demurrage"
	ChargeCOD              ChargeType = "COD"
	ChargeDocumentation    ChargeType = "Documentation"
	ChargeCustomsClearance ChargeType = "CustomsClearance"
	ChargeWarehousing      ChargeType = "Warehousing"
	ChargeOther            ChargeType = "Other"
)

var allChargeTypes = []ChargeType{
	ChargeBaseFreight, ChargeFuelSurcharge, ChargeHandling, ChargeLoading, ChargeUnloading, ChargeToll,
	ChargeInsurance, ChargeDetention, ChargeDemurrage, ChargeCOD, ChargeDocumentation,
	ChargeCustomsClearance, ChargeWarehousing, ChargeOther,
}

func (t ChargeType) Validate() error {
	if !slices.Contains(allChargeTypes, t) {
		return errs.NewValueIsInvalidErrorWithCause("chargeType", fmt.Errorf("%q is not a charge type", string(t)))
	}
	return nil
}

// CalculationMethod is stored with the line. Calculate ignores it.
type CalculationMethod string

const (
	MethodFlatRate   CalculationMethod = "FlatRate"
	MethodPerKg      CalculationMethod = "PerKg"
	MethodPerKm      CalculationMethod = "PerKm"
	MethodPerPackage CalculationMethod = "PerPackage"
	MethodPerHour    CalculationMethod = "PerHour"
	MethodPerDay     CalculationMethod = "PerDay"
	MethodPercentage CalculationMethod = "Percentage"
	MethodSlabRate   CalculationMethod = "SlabRate"
)

var allMethods = []CalculationMethod{
	MethodFlatRate, MethodPerKg, MethodPerKm, MethodPerPackage, MethodPerHour, MethodPerDay,
	MethodPercentage, MethodSlabRate,
}

func (m CalculationMethod) Validate() error {
	if !slices.Contains(allMethods, m) {
		return errs.NewValueIsInvalidErrorWithCause("calculationMethod", fmt.Errorf("%q is not a calculation method", string(m)))
	}
	return nil
}
