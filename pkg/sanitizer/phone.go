package sanitizer

import (
	"strings"

	"motovasiya/pkg/locale"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone parses a phone number against the supported regions and
// returns it in E.164 form, or "" when it parses under none of them.
// Numbers already carrying a +country prefix parse under any region.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	for _, region := range locale.Regions() {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			continue
		}
		return phonenumbers.Format(parsed, phonenumbers.E164)
	}
	return ""
}
