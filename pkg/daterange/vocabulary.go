package daterange

import (
	"sort"
	"time"

	"time-range-parser/pkg/datemath"
)

// Season is a span of whole months. Winter wraps into the next year.
type Season struct {
	StartMonth time.Month
	EndMonth   time.Month
}

// FixedHoliday is a holiday on the same calendar day every year.
type FixedHoliday struct {
	Name  string
	Month time.Month
	Day   int
}

// DayPart is a part of a day in whole hours. End may be smaller than Start
// when the part crosses midnight.
type DayPart struct {
	Start int
	End   int
}

// Vocabulary holds every word table the engine matches against. It is built
// once by BuildVocabulary and must not be mutated afterwards.
type Vocabulary struct {
	// WeekdayNames lists full weekday names, Dutch first, in matching order.
	WeekdayNames []string
	Weekdays     map[string]int
	Months       map[string]time.Month

	// RelativeDays maps relative day words to a day offset from today.
	RelativeDays map[string]int
	NumberWords  map[string]int
	Ordinals     map[string]int
	HalfYears    map[string]int
	Seasons      map[string]Season

	// DayNumbers holds spelled out day numbers, cardinal and ordinal.
	DayNumbers map[string]int

	// FixedHolidays is ordered longest name first so that "tweede kerstdag"
	// wins over "kerstdag".
	FixedHolidays []FixedHoliday

	// MovingHolidays maps a holiday name to its day offset from Easter Sunday.
	MovingHolidays map[string]int
	DayParts       map[string]DayPart
	Vague          map[string]VagueExpression

	// DurationUnitNames lists duration unit words in matching order.
	DurationUnitNames  []string
	DurationUnits      map[string]datemath.Unit
	PeriodUnits        map[string]datemath.Unit
	RecurrenceKeywords []string
	NowKeywords        map[string]bool
	TimezoneAliases    map[string]string
	Timezones          []string
}

// BuildVocabulary returns the complete Dutch and English vocabulary.
func BuildVocabulary() *Vocabulary {
	v := &Vocabulary{
		WeekdayNames: []string{
			"maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag", "zondag",
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		},
		Weekdays: map[string]int{},
		Months: map[string]time.Month{
			"januari": time.January, "februari": time.February, "maart": time.March,
			"april": time.April, "mei": time.May, "juni": time.June, "juli": time.July,
			"augustus": time.August, "september": time.September, "oktober": time.October,
			"november": time.November, "december": time.December,
			"january": time.January, "february": time.February, "march": time.March,
			"may": time.May, "june": time.June, "july": time.July, "august": time.August,
			"october": time.October,
			"jan": time.January, "feb": time.February, "mrt": time.March, "apr": time.April,
			"jun": time.June, "jul": time.July, "aug": time.August, "sep": time.September,
			"sept": time.September, "okt": time.October, "oct": time.October,
			"nov": time.November, "dec": time.December,
		},
		RelativeDays: map[string]int{
			"eergisteren": -2, "gisteren": -1, "vandaag": 0, "morgen": 1, "overmorgen": 2,
			"yesterday": -1, "today": 0, "tomorrow": 1,
		},
		NumberWords: map[string]int{},
		Ordinals: map[string]int{
			"eerste": 1, "tweede": 2, "derde": 3, "vierde": 4, "vijfde": 5,
			"1e": 1, "2e": 2, "3e": 3, "4e": 4, "5e": 5,
			"1ste": 1, "2de": 2, "3de": 3, "4de": 4, "5de": 5,
			"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
			"1st": 1, "2nd": 2, "3rd": 3, "4th": 4, "5th": 5,
			"laatste": -1, "last": -1,
		},
		HalfYears: map[string]int{
			"h1": 1, "h2": 2,
			"eerste helft": 1, "tweede helft": 2, "1e helft": 1, "2e helft": 2,
			"eerste semester": 1, "tweede semester": 2, "1e semester": 1, "2e semester": 2,
			"first half": 1, "second half": 2, "1st half": 1, "2nd half": 2,
			"first semester": 1, "second semester": 2,
		},
		Seasons: map[string]Season{
			"lente": {time.March, time.May}, "voorjaar": {time.March, time.May}, "spring": {time.March, time.May},
			"zomer": {time.June, time.August}, "summer": {time.June, time.August},
			"herfst": {time.September, time.November}, "najaar": {time.September, time.November},
			"autumn": {time.September, time.November}, "fall": {time.September, time.November},
			"winter": {time.December, time.February},
		},
		FixedHolidays: []FixedHoliday{
			{"nieuwjaarsdag", time.January, 1}, {"nieuwjaar", time.January, 1}, {"new year's day", time.January, 1},
			{"new year", time.January, 1},
			{"valentijnsdag", time.February, 14}, {"valentijn", time.February, 14}, {"valentine's day", time.February, 14},
			{"koningsdag", time.April, 27}, {"king's day", time.April, 27},
			{"dodenherdenking", time.May, 4},
			{"bevrijdingsdag", time.May, 5}, {"liberation day", time.May, 5},
			{"halloween", time.October, 31},
			{"sint-maarten", time.November, 11}, {"sint maarten", time.November, 11},
			{"sinterklaasavond", time.December, 5}, {"pakjesavond", time.December, 5},
			{"sinterklaas", time.December, 5},
			{"kerstavond", time.December, 24}, {"christmas eve", time.December, 24},
			{"eerste kerstdag", time.December, 25}, {"kerstmis", time.December, 25}, {"kerst", time.December, 25},
			{"christmas", time.December, 25},
			{"tweede kerstdag", time.December, 26}, {"boxing day", time.December, 26},
			{"oudejaarsavond", time.December, 31}, {"oudjaar", time.December, 31},
			{"oudejaarsdag", time.December, 31}, {"new year's eve", time.December, 31},
		},
		MovingHolidays: map[string]int{
			"carnaval": -49, "aswoensdag": -46, "ash wednesday": -46,
			"witte donderdag": -3, "goede vrijdag": -2, "good friday": -2,
			"pasen": 0, "eerste paasdag": 0, "paaszondag": 0, "easter": 0, "easter sunday": 0,
			"tweede paasdag": 1, "paasmaandag": 1, "easter monday": 1,
			"hemelvaart": 39, "hemelvaartsdag": 39, "ascension day": 39,
			"pinksteren": 49, "eerste pinksterdag": 49, "pinksterzondag": 49, "pentecost": 49, "whitsun": 49,
			"tweede pinksterdag": 50, "pinkstermaandag": 50, "whit monday": 50,
		},
		DayParts: map[string]DayPart{
			"ochtend": {6, 12},
			"middag":  {12, 18},
			"avond":   {18, 23},
			"nacht":   {23, 6},
		},
		Vague: map[string]VagueExpression{
			"straks":      {Kind: VagueFuture, Offset: 2 * time.Hour},
			"zo meteen":   {Kind: VagueFuture, Offset: 30 * time.Minute},
			"zometeen":    {Kind: VagueFuture, Offset: 30 * time.Minute},
			"in a bit":    {Kind: VagueFuture, Offset: 30 * time.Minute},
			"later":       {Kind: VagueFuture, Offset: 3 * time.Hour},
			"later today": {Kind: VagueFuture, Offset: 3 * time.Hour},

			"zojuist":        {Kind: VaguePast, Offset: 10 * time.Minute},
			"just now":       {Kind: VaguePast, Offset: 10 * time.Minute},
			"eerder vandaag": {Kind: VaguePast, Offset: 3 * time.Hour},
			"earlier today":  {Kind: VaguePast, Offset: 3 * time.Hour},

			"binnenkort":       {Kind: VagueFutureRange, Days: 7},
			"soon":             {Kind: VagueFutureRange, Days: 7},
			"komende tijd":     {Kind: VagueFutureRange, Days: 14},
			"onlangs":          {Kind: VaguePastRange, Days: 7},
			"recent":           {Kind: VaguePastRange, Days: 7},
			"recently":         {Kind: VaguePastRange, Days: 7},
			"laatst":           {Kind: VaguePastRange, Days: 14},
			"lately":           {Kind: VaguePastRange, Days: 14},
			"deze dagen":       {Kind: VagueCurrentRange, Days: 3},
			"these days":       {Kind: VagueCurrentRange, Days: 3},
			"rond deze tijd":   {Kind: VagueAroundNow, Hours: 1},
			"around this time": {Kind: VagueAroundNow, Hours: 1},

			"vanochtend":     {Kind: VagueFixedToday, Hour: 9},
			"vanmorgen":      {Kind: VagueFixedToday, Hour: 9},
			"this morning":   {Kind: VagueFixedToday, Hour: 9},
			"lunchtijd":      {Kind: VagueFixedToday, Hour: 12, Minute: 30},
			"lunchtime":      {Kind: VagueFixedToday, Hour: 12, Minute: 30},
			"vanmiddag":      {Kind: VagueFixedToday, Hour: 14},
			"this afternoon": {Kind: VagueFixedToday, Hour: 14},
			"vanavond":       {Kind: VagueFixedToday, Hour: 20},
			"tonight":        {Kind: VagueFixedToday, Hour: 20},
			"this evening":   {Kind: VagueFixedToday, Hour: 20},
			"vannacht":       {Kind: VagueFixedToday, Hour: 23},

			"vroeg": {Kind: VagueTimeOfDay, Hour: 7},
			"early": {Kind: VagueTimeOfDay, Hour: 7},
			"laat":  {Kind: VagueTimeOfDay, Hour: 22},
			"late":  {Kind: VagueTimeOfDay, Hour: 22},
		},
		DurationUnitNames: []string{
			"dag", "dagen", "day", "days",
			"week", "weken", "weeks",
			"maand", "maanden", "month", "months",
			"jaar", "jaren", "year", "years",
		},
		DurationUnits: map[string]datemath.Unit{},
		PeriodUnits: map[string]datemath.Unit{
			"week": datemath.Week, "weken": datemath.Week, "weeks": datemath.Week,
			"maand": datemath.Month, "maanden": datemath.Month, "month": datemath.Month, "months": datemath.Month,
			"kwartaal": datemath.Quarter, "kwartalen": datemath.Quarter, "quarter": datemath.Quarter, "quarters": datemath.Quarter,
			"jaar": datemath.Year, "jaren": datemath.Year, "year": datemath.Year, "years": datemath.Year,
		},
		RecurrenceKeywords: []string{"elke", "iedere", "ieder", "every", "each"},
		NowKeywords:        map[string]bool{"nu": true, "now": true, "right now": true, "op dit moment": true},
		TimezoneAliases:    timezoneAliases(),
		Timezones:          knownTimezones(),
	}

	for i, name := range v.WeekdayNames {
		v.Weekdays[name] = i % 7
	}
	for _, name := range v.DurationUnitNames {
		switch name {
		case "dag", "dagen", "day", "days":
			v.DurationUnits[name] = datemath.Day
		case "week", "weken", "weeks":
			v.DurationUnits[name] = datemath.Week
		case "maand", "maanden", "month", "months":
			v.DurationUnits[name] = datemath.Month
		default:
			v.DurationUnits[name] = datemath.Year
		}
	}

	dutch := []string{
		"een", "twee", "drie", "vier", "vijf", "zes", "zeven", "acht", "negen", "tien",
		"elf", "twaalf", "dertien", "veertien", "vijftien", "zestien", "zeventien", "achttien",
		"negentien", "twintig", "eenentwintig", "tweeentwintig", "drieentwintig", "vierentwintig",
		"vijfentwintig", "zesentwintig", "zevenentwintig", "achtentwintig", "negenentwintig",
		"dertig", "eenendertig",
	}
	english := []string{
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen",
		"nineteen", "twenty", "twenty-one", "twenty-two", "twenty-three", "twenty-four",
		"twenty-five", "twenty-six", "twenty-seven", "twenty-eight", "twenty-nine",
		"thirty", "thirty-one",
	}
	for i := range dutch {
		v.NumberWords[dutch[i]] = i + 1
		v.NumberWords[english[i]] = i + 1
	}

	v.DayNumbers = dayNumbers(v)

	sort.SliceStable(v.FixedHolidays, func(i, j int) bool {
		return len(v.FixedHolidays[i].Name) > len(v.FixedHolidays[j].Name)
	})
	return v
}

// sortedByLength returns the keys of m, longest first, for use in regexp alternations.
func sortedByLength[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func dayNumbers(v *Vocabulary) map[string]int {
	words := make(map[string]int, len(v.NumberWords)+len(v.Ordinals))
	for w, n := range v.Ordinals {
		if w[0] < '0' || w[0] > '9' {
			words[w] = n
		}
	}
	for w, n := range v.NumberWords {
		words[w] = n
	}
	return words
}
