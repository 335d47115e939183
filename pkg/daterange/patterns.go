package daterange

import (
	"regexp"
	"strings"
)

// patterns holds every compiled expression. Inputs are folded (lowercase, no
// diacritics) before matching, so none of them need case folding.
type patterns struct {
	timeHint    *regexp.Regexp
	dateHint    *regexp.Regexp
	dateExtract *regexp.Regexp

	timeRange   *regexp.Regexp
	dutchHour   *regexp.Regexp
	half        *regexp.Regexp
	quarterPast *regexp.Regexp
	quarterTo   *regexp.Regexp
	atDigit     *regexp.Regexp
	number      *regexp.Regexp
	fourDigits  *regexp.Regexp
	bareHour    *regexp.Regexp

	nextWeekday *regexp.Regexp
	prevWeekday *regexp.Regexp
	weekday     *regexp.Regexp
	periodUnit  *regexp.Regexp
	duration    *regexp.Regexp
	unitWords   []*regexp.Regexp

	quarter        *regexp.Regexp
	invalidQuarter *regexp.Regexp
	weekNumber     *regexp.Regexp
	halfYear       *regexp.Regexp
	pastPeriod     *regexp.Regexp
	futurePeriod   *regexp.Regexp
	weekend        *regexp.Regexp
	yearBoundary   *regexp.Regexp
	season         *regexp.Regexp
	monthExpr      *regexp.Regexp
	dayMonth       *regexp.Regexp
	inDuration     *regexp.Regexp
	ago            *regexp.Regexp
	movingHoliday  *regexp.Regexp
	vague          *regexp.Regexp
	ordinalWeekday *regexp.Regexp
	compoundDay    *regexp.Regexp

	recurrenceInterval *regexp.Regexp

	rangeBetween *regexp.Regexp
	rangeFromTo  *regexp.Regexp
	rangeDash    *regexp.Regexp
}

const (
	ordinalAlt        = `eerste|tweede|derde|vierde|vijfde|laatste|1e|2e|3e|4e|5e|1ste|2de|3de|4de|5de|first|second|third|fourth|fifth|last|1st|2nd|3rd|4th|5th`
	quarterOrdinalAlt = `1e|2e|3e|4e|eerste|tweede|derde|vierde|1ste|2de|3de|4de|1st|2nd|3rd|4th|first|second|third|fourth`
	fullMonthAlt      = `januari|februari|maart|april|mei|juni|juli|augustus|september|oktober|november|december|january|february|march|may|june|july|august|october`
	amountUnitAlt     = `dagen|dag|weken|week|maanden|maand|jaren|jaar|days|day|weeks|months|month|years|year`
)

func compilePatterns(v *Vocabulary) *patterns {
	weekdays := alternation(v.WeekdayNames)
	dutchWeekdays := alternation(v.WeekdayNames[:7])
	months := alternation(sortedByLength(v.Months))
	periodUnits := alternation(sortedByLength(v.PeriodUnits))
	dayWords := alternation(sortedByLength(v.DayNumbers))

	unitWords := make([]*regexp.Regexp, len(v.DurationUnitNames))
	for i, name := range v.DurationUnitNames {
		unitWords[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	}

	return &patterns{
		unitWords: unitWords,
		timeHint: regexp.MustCompile(`\b\d{1,2}:\d{2}\b|\b\d{1,2}\.\d{2}\b|\b\d{1,2}\s*(?:am|pm)\b|\b\d{1,2}\s*u\b|\b\d{1,2}\s*uur\b|` +
			`\b(?:ochtend|middag|avond|nacht)\b|\b(?:kwart\s+(?:voor|over)|half)\b`),
		dateHint: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?\b|` +
			`\b(?:` + months + `)\b|` +
			`\b(?:` + weekdays + `)\b|` +
			`\b(?:vandaag|morgen|overmorgen|gisteren|eergisteren|today|tomorrow|yesterday)\b|` +
			`\b(?:volgende|komende|aanstaande|deze|vorige|afgelopen|next|this|last|previous)\b`),
		dateExtract: regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?|` +
			`\d{1,2}\s+(?:` + months + `)(?:\s+\d{4})?`),

		timeRange:   regexp.MustCompile(`\b(van|from)\s+(\d{1,2}(?::\d{2})?)\s*(uur\s*)?(tot|to|until|-)\s*(\d{1,2}(?::\d{2})?)(?:\s*(uur))?\b`),
		dutchHour:   regexp.MustCompile(`\b(\d{1,2})\s*uur\b`),
		half:        regexp.MustCompile(`\bhalf\s+(\d{1,2})\b`),
		quarterPast: regexp.MustCompile(`\bkwart\s+over\s+(\d{1,2})\b`),
		quarterTo:   regexp.MustCompile(`\bkwart\s+voor\s+(\d{1,2})\b`),
		atDigit:     regexp.MustCompile(`\bat\s+(\d)`),
		number:      regexp.MustCompile(`\d+`),
		fourDigits:  regexp.MustCompile(`\d{4}`),
		bareHour:    regexp.MustCompile(`\b\d{1,2}\b`),

		nextWeekday: regexp.MustCompile(`\b(?:volgende|komende|aanstaande|next)\s+(` + weekdays + `)\b`),
		prevWeekday: regexp.MustCompile(`\b(?:vorige|afgelopen|laatste|last|previous)\s+(` + weekdays + `)\b`),
		weekday:     regexp.MustCompile(`\b(?:` + weekdays + `)\b`),
		periodUnit:  regexp.MustCompile(`\b(` + periodUnits + `)\b`),
		duration: regexp.MustCompile(`\b(?P<n>\d+)\s*(?P<u>minuten|minuut|mins|min|uren|uur|hours|hour|h|dagen|dag|days|day|d|` +
			`weken|week|weeks|w|maanden|maand|months|month|jaren|jaar|years|year)\b`),

		quarter: regexp.MustCompile(`\b(?:(?P<ordinal>` + quarterOrdinalAlt + `)\s*(?:kwartaal|quarter)|(?P<qnotation>q[1-4])|` +
			`(?:kwartaal|quarter)\s*(?P<quarternum>[1-4]))(?:\s+(?P<year>\d{4}))?\b`),
		invalidQuarter: regexp.MustCompile(`\b(?:q(?:0|[5-9]|\d{2,})|(?:kwartaal|quarter)\s*(?:0|[5-9]|\d{2,}))\b`),
		weekNumber:     regexp.MustCompile(`\b(?:week|wk)\.?\s*(?P<week>\d{1,2})(?:\s+(?P<year>\d{4}))?\b`),
		halfYear: regexp.MustCompile(`\b(?:(?P<hnotation>h[12])|(?P<text>(?:eerste|tweede|1e|2e)\s+(?:helft|semester)|` +
			`(?:first|second)\s+(?:half|semester)|(?:1st|2nd)\s+half))(?:\s+(?P<year>\d{4}))?\b`),
		pastPeriod:   regexp.MustCompile(`\b(?:afgelopen|vorige|vorig|laatste|last|previous)\s+(?P<unit>` + periodUnits + `)\b`),
		futurePeriod: regexp.MustCompile(`\b(?:volgende|volgend|komende|komend|aanstaande|next)\s+(?P<unit>` + periodUnits + `)\b`),
		weekend:      regexp.MustCompile(`\b(?:(?P<modifier>dit|deze|this|volgende|volgend|next|vorige|vorig|last|afgelopen)\s+)?weekend\b`),
		yearBoundary: regexp.MustCompile(`\b(?P<type>begin|start|eind|end)(?:\s+(?:van|of))?(?:\s+(?:het|the))?(?:\s+(?:jaar|year))?\s+(?P<year>\d{4})\b`),
		season: regexp.MustCompile(`\b(?:(?P<modifier>deze|dit|this|volgende|volgend|next|vorige|vorig|last|previous|afgelopen)\s+)?` +
			`(?P<season>` + alternation(sortedByLength(v.Seasons)) + `)(?:\s+(?P<year>\d{4}))?\b`),
		monthExpr: regexp.MustCompile(`\b(?:(?P<position>begin|start|eind|end|medio|half|midden|mid)\s+)?(?P<month>` + months + `)(?:\s+(?P<year>\d{4}))?\b`),
		dayMonth: regexp.MustCompile(`\b(?:op\s+|the\s+|on\s+)?(?P<day>\d{1,2}(?:ste|st|nd|rd|th|de|e)?|` + dayWords +
			`)\s+(?:(?:van|of)\s+)?(?P<month>` + months + `)(?:\s+(?P<year>\d{4}))?\b`),
		inDuration:    regexp.MustCompile(`\b(?:over|in)\s+(?P<n>\d+|een|an|a)\s+(?P<unit>` + amountUnitAlt + `)\b`),
		ago:           regexp.MustCompile(`\b(?P<n>\d+|een|an|a)\s+(?P<unit>` + amountUnitAlt + `)\s+(?:geleden|ago)\b`),
		movingHoliday: regexp.MustCompile(`\b(?P<holiday>` + alternation(sortedByLength(v.MovingHolidays)) + `)(?:\s+(?P<year>\d{4}))?\b`),
		vague:         regexp.MustCompile(`\b(` + alternation(sortedByLength(v.Vague)) + `)\b`),
		ordinalWeekday: regexp.MustCompile(`\b(?P<ordinal>` + ordinalAlt + `)\s+(?P<weekday>` + weekdays + `)` +
			`(?:\s+(?:van|of|in)(?:\s+(?:de|the))?\s+(?P<month>` + fullMonthAlt + `|maand|month)(?:\s+(?P<year>\d{4}))?)?\b`),
		compoundDay: regexp.MustCompile(`\b(?P<day>eergisteren|gisteren|overmorgen|morgen|vandaag|` + dutchWeekdays + `)` +
			`(?P<part>` + alternation(sortedByLength(v.DayParts)) + `)\b`),

		recurrenceInterval: regexp.MustCompile(`\b(?:` + alternation(v.RecurrenceKeywords) + `|om\s+de)\s+(\d+)(?:\s|$)`),

		rangeBetween: regexp.MustCompile(`\b(tussen)\b\s+(?P<a>.+?)\s+\b(en)\b\s+(?P<b>.+)$`),
		rangeFromTo:  regexp.MustCompile(`\b(van|from)\b\s+(?P<a>.+?)\s+\b(tot|t/m|tm|to|until)\b\s+(?P<b>.+)$`),
		rangeDash:    regexp.MustCompile(`^(?P<a>.+?)\s+-\s+(?P<b>.+)$`),
	}
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// group returns the named submatch of m, or "" when it did not participate.
func group(re *regexp.Regexp, m []string, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || i >= len(m) {
		return ""
	}
	return m[i]
}

// submatch returns the named submatch for loc as produced by FindStringSubmatchIndex.
func submatch(re *regexp.Regexp, s string, loc []int, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return s[loc[2*i]:loc[2*i+1]]
}
