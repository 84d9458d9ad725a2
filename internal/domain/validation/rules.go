// Package validation defines the registration rule set once, as data.
// The same ordered table drives server-side enforcement, tests, and any
// client that wants to mirror the checks; the server copy is authoritative.
package validation

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Categories is the fixed list of business categories the form offers.
var Categories = []string{"Restaurant", "Cafe", "Bakery", "Juice Shop", "Coolbar"}

// Cuisines is the fixed list of cuisine options the form offers. Membership
// is not enforced at persistence time; the list exists for form generation.
var Cuisines = []string{"Indian", "Chinese", "Italian", "Mexican"}

var (
	phonePattern       = regexp.MustCompile(`^\d{10}$`)
	emailPattern       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodePattern     = regexp.MustCompile(`^\d{5,6}$`)
	contactPattern     = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)*$`)
	coordinatesPattern = regexp.MustCompile(`^[-+]?([1-8]?\d(\.\d+)?|90(\.0+)?),\s*[-+]?(180(\.0+)?|((1[0-7]\d)|([1-9]?\d))(\.\d+)?)$`)
	hoursPattern       = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):[0-5][0-9]\s?(AM|PM)$`)
	descriptionPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.,!?()'-]{3,}$`)
	licensePattern     = regexp.MustCompile(`^\d{14}$`)
	gstPattern         = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z]{1}[A-Z\d]{1}[Z]{1}[A-Z\d]{1}$`)
	websitePattern     = regexp.MustCompile(`^www\.[a-zA-Z0-9-]+\.[a-z]{2,}(\.[a-z]{2,})?$`)
)

// allowedLogoExtensions is the accepted set of logo file formats.
var allowedLogoExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// Candidate is a registration submission before persistence. All values are
// raw form input; rules decide trimming per field. LogoFilename is empty when
// no logo was uploaded.
type Candidate struct {
	Name          string
	Category      string
	CuisineTypes  []string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Pincode       string
	City          string
	State         string
	Country       string
	Coordinates   string
	Hours         string
	Website       string
	SocialLinks   string
	Description   string
	LicenseNumber string
	GSTNumber     string
	Status        string
	LogoFilename  string
}

// FieldError names the offending field and carries the user-facing message.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// Rule is one row of the rule table. OK returns true when the candidate
// passes; optional-field rules pass on empty input.
type Rule struct {
	Field   string
	Message string
	OK      func(c *Candidate) bool
}

// Rules is the ordered rule table. Order matches the registration form, so
// the first failing rule is the first error a user would see.
var Rules = []Rule{
	{
		Field:   "name",
		Message: "Name is required",
		OK:      func(c *Candidate) bool { return strings.TrimSpace(c.Name) != "" },
	},
	{
		Field:   "category",
		Message: "Category is required",
		OK: func(c *Candidate) bool {
			for _, cat := range Categories {
				if c.Category == cat {
					return true
				}
			}

			return false
		},
	},
	{
		Field:   "contactPerson",
		Message: "Contact person is required",
		OK:      func(c *Candidate) bool { return strings.TrimSpace(c.ContactPerson) != "" },
	},
	{
		Field:   "contactPerson",
		Message: "Only letters and single spaces allowed (no digits or special characters)",
		OK: func(c *Candidate) bool {
			trimmed := strings.TrimSpace(c.ContactPerson)

			return trimmed == "" || contactPattern.MatchString(trimmed)
		},
	},
	{
		Field:   "phone",
		Message: "Phone must be 10 digits",
		OK:      func(c *Candidate) bool { return phonePattern.MatchString(c.Phone) },
	},
	{
		Field:   "email",
		Message: "Email is invalid",
		OK:      func(c *Candidate) bool { return emailPattern.MatchString(c.Email) },
	},
	{
		Field:   "address",
		Message: "Address is required",
		OK:      func(c *Candidate) bool { return strings.TrimSpace(c.Address) != "" },
	},
	{
		Field:   "address",
		Message: "Address is too short",
		OK: func(c *Candidate) bool {
			return strings.TrimSpace(c.Address) == "" || len(c.Address) >= 5
		},
	},
	{
		Field:   "pincode",
		Message: "Invalid pincode",
		OK:      func(c *Candidate) bool { return pincodePattern.MatchString(c.Pincode) },
	},
	{
		Field:   "city",
		Message: "City is required",
		OK:      func(c *Candidate) bool { return strings.TrimSpace(c.City) != "" },
	},
	{
		Field:   "state",
		Message: "State is required",
		OK:      func(c *Candidate) bool { return strings.TrimSpace(c.State) != "" },
	},
	{
		Field:   "country",
		Message: "Country is required",
		OK:      func(c *Candidate) bool { return strings.TrimSpace(c.Country) != "" },
	},
	{
		Field:   "coordinates",
		Message: "Coordinates must be in format: latitude,longitude",
		OK: func(c *Candidate) bool {
			return c.Coordinates == "" || coordinatesPattern.MatchString(c.Coordinates)
		},
	},
	{
		Field:   "hours",
		Message: "Time must be in format HH:MM AM/PM",
		OK: func(c *Candidate) bool {
			return c.Hours == "" || hoursPattern.MatchString(c.Hours)
		},
	},
	{
		Field:   "website",
		Message: `Only format like "www.example.com" is allowed`,
		OK: func(c *Candidate) bool {
			return c.Website == "" || websitePattern.MatchString(c.Website)
		},
	},
	{
		Field:   "description",
		Message: "Only letters, numbers & basic punctuation allowed",
		OK: func(c *Candidate) bool {
			return c.Description == "" || descriptionPattern.MatchString(c.Description)
		},
	},
	{
		Field:   "licenseNumber",
		Message: "License number must be exactly 14 digits",
		OK: func(c *Candidate) bool {
			return c.LicenseNumber == "" || licensePattern.MatchString(c.LicenseNumber)
		},
	},
	{
		Field:   "gstNumber",
		Message: "Invalid GST format. Must be 15 alphanumeric characters",
		OK: func(c *Candidate) bool {
			return c.GSTNumber == "" || gstPattern.MatchString(c.GSTNumber)
		},
	},
	{
		Field:   "status",
		Message: "Status must be Active or Inactive",
		OK: func(c *Candidate) bool {
			return c.Status == "" || c.Status == "Active" || c.Status == "Inactive"
		},
	},
	{
		Field:   "logo",
		Message: "Only PNG or JPG files are allowed for logo.",
		OK: func(c *Candidate) bool {
			return c.LogoFilename == "" || IsAllowedLogoFile(c.LogoFilename)
		},
	},
}

// Validate runs every rule against the candidate and returns the failures in
// rule order. An empty result means the candidate is acceptable.
func Validate(c *Candidate) []FieldError {
	var errs []FieldError
	for _, rule := range Rules {
		if !rule.OK(c) {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}

	return errs
}

// IsAllowedLogoFile reports whether the filename carries an accepted
// logo extension (png, jpg or jpeg, case-insensitive).
func IsAllowedLogoFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedLogoExtensions[ext]

	return ok
}
