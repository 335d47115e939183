package daterange

import (
	"strings"
	"time"
)

func timezoneAliases() map[string]string {
	return map[string]string{
		"amsterdam": "Europe/Amsterdam", "nl": "Europe/Amsterdam", "nederland": "Europe/Amsterdam",
		"netherlands": "Europe/Amsterdam", "holland": "Europe/Amsterdam", "cet": "Europe/Amsterdam",
		"brussel": "Europe/Brussels", "brussels": "Europe/Brussels", "belgie": "Europe/Brussels", "belgium": "Europe/Brussels",
		"london": "Europe/London", "londen": "Europe/London", "uk": "Europe/London", "engeland": "Europe/London",
		"england": "Europe/London", "bst": "Europe/London",
		"dublin": "Europe/Dublin", "ierland": "Europe/Dublin", "ireland": "Europe/Dublin",
		"paris": "Europe/Paris", "parijs": "Europe/Paris", "frankrijk": "Europe/Paris", "france": "Europe/Paris",
		"berlin": "Europe/Berlin", "berlijn": "Europe/Berlin", "duitsland": "Europe/Berlin", "germany": "Europe/Berlin",
		"madrid": "Europe/Madrid", "spanje": "Europe/Madrid", "spain": "Europe/Madrid",
		"rome": "Europe/Rome", "italie": "Europe/Rome", "italy": "Europe/Rome",
		"lisbon": "Europe/Lisbon", "lissabon": "Europe/Lisbon", "portugal": "Europe/Lisbon",
		"zurich": "Europe/Zurich", "zwitserland": "Europe/Zurich", "switzerland": "Europe/Zurich",
		"wenen": "Europe/Vienna", "vienna": "Europe/Vienna",
		"stockholm": "Europe/Stockholm", "oslo": "Europe/Oslo", "kopenhagen": "Europe/Copenhagen",
		"copenhagen": "Europe/Copenhagen", "helsinki": "Europe/Helsinki", "warschau": "Europe/Warsaw",
		"warsaw": "Europe/Warsaw", "praag": "Europe/Prague", "prague": "Europe/Prague",
		"athene": "Europe/Athens", "athens": "Europe/Athens", "istanbul": "Europe/Istanbul",
		"moskou": "Europe/Moscow", "moscow": "Europe/Moscow", "kiev": "Europe/Kyiv", "kyiv": "Europe/Kyiv",
		"new york": "America/New_York", "nyc": "America/New_York", "ny": "America/New_York",
		"boston": "America/New_York", "washington": "America/New_York", "miami": "America/New_York",
		"est": "America/New_York", "edt": "America/New_York", "eastern": "America/New_York",
		"chicago": "America/Chicago", "cst": "America/Chicago", "central": "America/Chicago",
		"denver": "America/Denver", "mst": "America/Denver", "phoenix": "America/Phoenix",
		"los angeles": "America/Los_Angeles", "la": "America/Los_Angeles", "san francisco": "America/Los_Angeles",
		"sf": "America/Los_Angeles", "seattle": "America/Los_Angeles", "pst": "America/Los_Angeles",
		"pdt": "America/Los_Angeles", "pacific": "America/Los_Angeles",
		"toronto": "America/Toronto", "vancouver": "America/Vancouver", "mexico city": "America/Mexico_City",
		"sao paulo": "America/Sao_Paulo", "buenos aires": "America/Argentina/Buenos_Aires",
		"bogota": "America/Bogota", "lima": "America/Lima", "santiago": "America/Santiago",
		"curacao": "America/Curacao", "aruba": "America/Aruba", "paramaribo": "America/Paramaribo",
		"suriname": "America/Paramaribo", "anchorage": "America/Anchorage", "honolulu": "Pacific/Honolulu",
		"hawaii": "Pacific/Honolulu",
		"tokyo": "Asia/Tokyo", "japan": "Asia/Tokyo", "jst": "Asia/Tokyo",
		"seoul": "Asia/Seoul", "beijing": "Asia/Shanghai", "peking": "Asia/Shanghai", "shanghai": "Asia/Shanghai",
		"china": "Asia/Shanghai", "hong kong": "Asia/Hong_Kong", "singapore": "Asia/Singapore",
		"singapur": "Asia/Singapore", "bangkok": "Asia/Bangkok", "jakarta": "Asia/Jakarta",
		"ho chi minh": "Asia/Ho_Chi_Minh", "saigon": "Asia/Ho_Chi_Minh", "hanoi": "Asia/Ho_Chi_Minh",
		"manila": "Asia/Manila", "mumbai": "Asia/Kolkata", "delhi": "Asia/Kolkata", "india": "Asia/Kolkata",
		"ist": "Asia/Kolkata", "dubai": "Asia/Dubai", "karachi": "Asia/Karachi", "tehran": "Asia/Tehran",
		"jerusalem": "Asia/Jerusalem", "tel aviv": "Asia/Jerusalem",
		"sydney": "Australia/Sydney", "melbourne": "Australia/Melbourne", "brisbane": "Australia/Brisbane",
		"perth": "Australia/Perth", "adelaide": "Australia/Adelaide", "auckland": "Pacific/Auckland",
		"nieuw-zeeland": "Pacific/Auckland", "new zealand": "Pacific/Auckland",
		"cairo": "Africa/Cairo", "johannesburg": "Africa/Johannesburg", "lagos": "Africa/Lagos",
		"nairobi": "Africa/Nairobi", "casablanca": "Africa/Casablanca",
		"utc": "UTC", "gmt": "UTC", "z": "UTC", "zulu": "UTC",
	}
}

func knownTimezones() []string {
	return []string{
		"UTC",
		"Europe/Amsterdam", "Europe/Athens", "Europe/Berlin", "Europe/Brussels", "Europe/Bucharest",
		"Europe/Budapest", "Europe/Copenhagen", "Europe/Dublin", "Europe/Helsinki", "Europe/Istanbul",
		"Europe/Kyiv", "Europe/Lisbon", "Europe/London", "Europe/Luxembourg", "Europe/Madrid",
		"Europe/Moscow", "Europe/Oslo", "Europe/Paris", "Europe/Prague", "Europe/Rome",
		"Europe/Stockholm", "Europe/Vienna", "Europe/Warsaw", "Europe/Zurich",
		"America/Anchorage", "America/Argentina/Buenos_Aires", "America/Aruba", "America/Bogota",
		"America/Chicago", "America/Curacao", "America/Denver", "America/Halifax", "America/Lima",
		"America/Los_Angeles", "America/Mexico_City", "America/New_York", "America/Paramaribo",
		"America/Phoenix", "America/Santiago", "America/Sao_Paulo", "America/Toronto", "America/Vancouver",
		"Asia/Bangkok", "Asia/Dubai", "Asia/Ho_Chi_Minh", "Asia/Hong_Kong", "Asia/Jakarta",
		"Asia/Jerusalem", "Asia/Karachi", "Asia/Kolkata", "Asia/Manila", "Asia/Seoul", "Asia/Shanghai",
		"Asia/Singapore", "Asia/Tehran", "Asia/Tokyo",
		"Australia/Adelaide", "Australia/Brisbane", "Australia/Melbourne", "Australia/Perth", "Australia/Sydney",
		"Africa/Cairo", "Africa/Casablanca", "Africa/Johannesburg", "Africa/Lagos", "Africa/Nairobi",
		"Pacific/Auckland", "Pacific/Honolulu",
	}
}

// NormalizeTimezone maps an alias, a case-insensitive IANA name or a city name
// ("new york" -> "America/New_York") to its canonical IANA identifier. Unknown
// values are returned trimmed; an empty value yields fallback.
func (v *Vocabulary) NormalizeTimezone(tz, fallback string) string {
	trimmed := strings.TrimSpace(tz)
	if trimmed == "" {
		return fallback
	}

	key := strings.ToLower(trimmed)
	if canonical, ok := v.TimezoneAliases[key]; ok {
		return canonical
	}

	city := strings.ReplaceAll(key, " ", "_")
	for _, known := range v.Timezones {
		lower := strings.ToLower(known)
		if lower == key {
			return known
		}
		if i := strings.LastIndex(lower, "/"); i >= 0 && lower[i+1:] == city {
			return known
		}
	}
	return trimmed
}

// LoadLocation normalizes tz and loads it.
func (v *Vocabulary) LoadLocation(tz, fallback string) (*time.Location, string, error) {
	name := v.NormalizeTimezone(tz, fallback)
	loc, err := time.LoadLocation(name)
	if err != nil || name == "" || name == "Local" {
		return nil, name, inputError(ErrUnknownTimezone, tz)
	}
	return loc, name, nil
}
