package locale

import "strings"

const (
	DefaultTimezone = "Asia/Baku"
	DefaultRegion   = "AZ"
)

type Country struct {
	Code            string   // ISO 3166-1 alpha-2 country code
	Name            string   // Human-readable country name
	PhonePrefixes   []string // Valid phone number prefixes (e.g., ["+994", "994"])
	DefaultTimezone string   // IANA timezone identifier
}

// Countries lists the regions the school takes bookings from. Azerbaijan is
// home; Turkey and Georgia show up often enough among customers to support.
var Countries = map[string]Country{
	"AZ": {
		Code:            "AZ",
		Name:            "Azerbaijan",
		PhonePrefixes:   []string{"+994", "994"},
		DefaultTimezone: "Asia/Baku",
	},
	"TR": {
		Code:            "TR",
		Name:            "Turkey",
		PhonePrefixes:   []string{"+90", "90"},
		DefaultTimezone: "Europe/Istanbul",
	},
	"GE": {
		Code:            "GE",
		Name:            "Georgia",
		PhonePrefixes:   []string{"+995", "995"},
		DefaultTimezone: "Asia/Tbilisi",
	},
}

// Regions returns the supported region codes with the home region first, the
// order phone parsing should try them in.
func Regions() []string {
	regions := []string{DefaultRegion}
	for code := range Countries {
		if code != DefaultRegion {
			regions = append(regions, code)
		}
	}
	return regions
}

// DetectRegion guesses the region from a phone number's country prefix.
// Numbers without a recognizable prefix fall back to the home region.
func DetectRegion(phone string) string {
	normalized := strings.TrimSpace(phone)
	for code, country := range Countries {
		for _, prefix := range country.PhonePrefixes {
			if strings.HasPrefix(normalized, prefix) {
				return code
			}
		}
	}
	return DefaultRegion
}

// TimezoneFor returns the IANA timezone for a region code.
func TimezoneFor(region string) string {
	if country, ok := Countries[region]; ok {
		return country.DefaultTimezone
	}
	return DefaultTimezone
}
