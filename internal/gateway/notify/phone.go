package notify

import "strings"

const DefaultCountryCode = "+91"

// NormalizePhone prefixes countryCode to numbers that do not already start
// with "+". The number is otherwise left as given.
func NormalizePhone(countryCode, phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return countryCode + phone
}
