package worldtime

// TimeInfo is the /timezone/{zone} payload of WorldTimeAPI.
type TimeInfo struct {
	Abbreviation string  `json:"abbreviation"`
	Datetime     string  `json:"datetime"`
	DayOfWeek    int     `json:"day_of_week"`
	DayOfYear    int     `json:"day_of_year"`
	DST          bool    `json:"dst"`
	DSTFrom      *string `json:"dst_from"`
	DSTOffset    int     `json:"dst_offset"`
	DSTUntil     *string `json:"dst_until"`
	RawOffset    int     `json:"raw_offset"`
	Timezone     string  `json:"timezone"`
	Unixtime     int64   `json:"unixtime"`
	UTCDatetime  string  `json:"utc_datetime"`
	UTCOffset    string  `json:"utc_offset"`
	WeekNumber   int     `json:"week_number"`
}

// IPInfo is the /ip payload. Only the zone is used.
type IPInfo struct {
	ClientIP string `json:"client_ip"`
	Timezone string `json:"timezone"`
}

// ErrorResponse is returned by WorldTimeAPI for unknown zones.
type ErrorResponse struct {
	Error string `json:"error"`
}
