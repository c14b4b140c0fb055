package pricing

import "strings"

// Zone is a geographic pricing bucket for delivery cost and the
// free-shipping threshold.
type Zone struct {
	Name                  string   `json:"name"`
	Countries             []string `json:"countries,omitempty"`
	Price                 float64  `json:"price"`
	FreeShippingThreshold float64  `json:"free_shipping_threshold"`
	EstimatedDelivery     string   `json:"estimated_delivery"`
}

// The "International" zone carries no country list: any country not
// claimed by an explicit zone falls into it.
var zones = []Zone{
	{
		Name:                  "Tunisie",
		Countries:             []string{"Tunisia", "Tunisie"},
		Price:                 8,
		FreeShippingThreshold: 120,
		EstimatedDelivery:     "2-3 jours",
	},
	{
		Name:                  "France",
		Countries:             []string{"France"},
		Price:                 4.90,
		FreeShippingThreshold: 50,
		EstimatedDelivery:     "3-5 jours",
	},
	{
		Name: "Europe",
		Countries: []string{
			"Germany", "Italy", "Spain", "Belgium",
			"Netherlands", "Portugal", "Switzerland", "Luxembourg",
		},
		Price:                 9.90,
		FreeShippingThreshold: 100,
		EstimatedDelivery:     "5-8 jours",
	},
	{
		Name:                  "International",
		Price:                 19.90,
		FreeShippingThreshold: 200,
		EstimatedDelivery:     "8-15 jours",
	},
}

// Zones returns the delivery pricing table.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// ZoneForCountry resolves a country to its zone by explicit membership,
// defaulting to International.
func ZoneForCountry(country string) Zone {
	for _, z := range zones {
		for _, c := range z.Countries {
			if strings.EqualFold(c, country) {
				return z
			}
		}
	}
	return zones[len(zones)-1]
}

// DeliveryPriceForCountry returns the flat zone price, waived when the
// order amount meets the zone's free-shipping threshold.
func DeliveryPriceForCountry(country string, orderAmount float64) float64 {
	zone := ZoneForCountry(country)
	if orderAmount >= zone.FreeShippingThreshold {
		return 0
	}
	return zone.Price
}
