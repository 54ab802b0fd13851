package seed

import "github.com/shopspring/decimal"

func defaultVehicleTypes() []VehicleTypeDTO {
	return []VehicleTypeDTO{
		{Code: "BIKE", Name: "Two-wheeler", Category: "LIGHT", MaxLoadKg: decimal.NewFromInt(25), MaxVolumeCbm: decimal.RequireFromString("0.1")},
		{Code: "VAN", Name: "Panel van", Category: "LIGHT", MaxLoadKg: decimal.NewFromInt(1000), MaxVolumeCbm: decimal.NewFromInt(8)},
		{Code: "LCV", Name: "Light commercial vehicle", Category: "LIGHT", MaxLoadKg: decimal.NewFromInt(3500), MaxVolumeCbm: decimal.NewFromInt(18)},
		{Code: "TRUCK-10T", Name: "Rigid truck 10t", Category: "MEDIUM", MaxLoadKg: decimal.NewFromInt(10000), MaxVolumeCbm: decimal.NewFromInt(40)},
		{Code: "TRUCK-REEFER", Name: "Refrigerated truck", Category: "MEDIUM", MaxLoadKg: decimal.NewFromInt(8000), MaxVolumeCbm: decimal.NewFromInt(32), IsRefrigerated: true},
		{Code: "TRAILER-40FT", Name: "Container trailer 40ft", Category: "HEAVY", MaxLoadKg: decimal.NewFromInt(26000), MaxVolumeCbm: decimal.NewFromInt(67)},
		{Code: "TANKER", Name: "Liquid tanker", Category: "HEAVY", MaxLoadKg: decimal.NewFromInt(24000), MaxVolumeCbm: decimal.NewFromInt(30)},
	}
}

func defaultTransportCompanies() []TransportCompanyDTO {
	return []TransportCompanyDTO{
		{Code: "OWN-FLEET", Name: "Own fleet", Modes: "ROAD"},
		{Code: "BLUEDART", Name: "Blue Dart Express", ContactEmail: "support@bluedart.com", Modes: "ROAD,AIR"},
		{Code: "DHL", Name: "DHL Express", ContactEmail: "support@dhl.com", Modes: "ROAD,AIR,SEA"},
		{Code: "MAERSK", Name: "Maersk Line", ContactEmail: "support@maersk.com", Modes: "SEA"},
		{Code: "CONCOR", Name: "Container Corporation", Modes: "RAIL"},
	}
}
