package pgutil

import "logistics/internal/core/domain/model/kernel"

// AddressDTO is embedded by tables holding postal address blocks.
type AddressDTO struct {
	Line1        string `gorm:"type:varchar(255)"`
	Line2        string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100);not null"`
	State        string `gorm:"type:varchar(100)"`
	PostalCode   string `gorm:"type:varchar(20)"`
	Country      string `gorm:"type:varchar(100)"`
	ContactName  string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(50)"`
}

func FromAddress(a kernel.Address) AddressDTO {
	f := a.Fields()
	return AddressDTO{
		Line1:        f.Line1,
		Line2:        f.Line2,
		City:         f.City,
		State:        f.State,
		PostalCode:   f.PostalCode,
		Country:      f.Country,
		ContactName:  f.ContactName,
		ContactPhone: f.ContactPhone,
	}
}

func (d AddressDTO) ToAddress() (kernel.Address, error) {
	return kernel.NewAddress(kernel.AddressFields{
		Line1:        d.Line1,
		Line2:        d.Line2,
		City:         d.City,
		State:        d.State,
		PostalCode:   d.PostalCode,
		Country:      d.Country,
		ContactName:  d.ContactName,
		ContactPhone: d.ContactPhone,
	})
}

// LatLon splits an optional point into nullable columns.
func LatLon(p *kernel.GeoPoint) (*float64, *float64) {
	if p == nil {
		return nil, nil
	}
	lat, lon := p.Latitude(), p.Longitude()
	return &lat, &lon
}

// GeoPointFrom rebuilds an optional point. Both columns must be set for a point to exist.
func GeoPointFrom(lat, lon *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	p, err := kernel.NewReportedGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
