package service

import "context"

// Location is the coarse result of a pincode lookup, used by the client to
// pre-fill form fields. It is never authoritative; submitted values still go
// through the full rule set.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Geocoder resolves a postal code to a location via an external provider.
type Geocoder interface {
	LookupPincode(ctx context.Context, pincode string) (*Location, error)
}
