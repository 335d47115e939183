package naturaldate

import "time"

var weekdays = map[string]int{
	"maandag": 0, "dinsdag": 1, "woensdag": 2, "donderdag": 3, "vrijdag": 4, "zaterdag": 5, "zondag": 6,
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3, "friday": 4, "saturday": 5, "sunday": 6,
	"mon": 0, "tue": 1, "tues": 1, "wed": 2, "thu": 3, "thur": 3, "thurs": 3, "fri": 4, "sat": 5, "sun": 6,
}

var months = map[string]time.Month{
	"januari": time.January, "februari": time.February, "maart": time.March, "april": time.April,
	"mei": time.May, "juni": time.June, "juli": time.July, "augustus": time.August,
	"september": time.September, "oktober": time.October, "november": time.November, "december": time.December,
	"january": time.January, "february": time.February, "march": time.March, "may": time.May,
	"june": time.June, "july": time.July, "august": time.August, "october": time.October,
	"jan": time.January, "feb": time.February, "mrt": time.March, "mar": time.March, "apr": time.April,
	"jun": time.June, "jul": time.July, "aug": time.August, "sep": time.September, "sept": time.September,
	"okt": time.October, "oct": time.October, "nov": time.November, "dec": time.December,
}

var relativeDays = map[string]int{
	"vandaag": 0, "today": 0,
	"morgen": 1, "tomorrow": 1,
	"overmorgen": 2,
	"gisteren": -1, "yesterday": -1,
	"eergisteren": -2,
}

// direction of a modifier word: 0 for "this", +1 for "next", -1 for "last".
var modifiers = map[string]int{
	"deze": 0, "dit": 0, "this": 0,
	"volgende": 1, "volgend": 1, "komende": 1, "komend": 1, "aanstaande": 1, "next": 1,
	"vorige": -1, "vorig": -1, "afgelopen": -1, "last": -1, "previous": -1,
}

var units = map[string]unit{
	"seconde": unitSecond, "seconden": unitSecond, "sec": unitSecond, "second": unitSecond, "seconds": unitSecond,
	"minuut": unitMinute, "minuten": unitMinute, "min": unitMinute, "mins": unitMinute, "minute": unitMinute, "minutes": unitMinute,
	"uur": unitHour, "uren": unitHour, "hour": unitHour, "hours": unitHour,
	"dag": unitDay, "dagen": unitDay, "day": unitDay, "days": unitDay,
	"week": unitWeek, "weken": unitWeek, "weeks": unitWeek,
	"maand": unitMonth, "maanden": unitMonth, "month": unitMonth, "months": unitMonth,
	"kwartaal": unitQuarter, "kwartalen": unitQuarter, "quarter": unitQuarter, "quarters": unitQuarter,
	"jaar": unitYear, "jaren": unitYear, "year": unitYear, "years": unitYear,
}

var counts = map[string]int{
	"een": 1, "a": 1, "an": 1, "one": 1,
	"twee": 2, "two": 2, "drie": 3, "three": 3, "vier": 4, "four": 4, "vijf": 5, "five": 5,
	"zes": 6, "six": 6, "zeven": 7, "seven": 7, "acht": 8, "eight": 8, "negen": 9, "nine": 9,
	"tien": 10, "ten": 10, "elf": 11, "eleven": 11, "twaalf": 12, "twelve": 12,
}

// dayParts maps a part of the day to the hour it starts at.
var dayParts = map[string]int{
	"ochtend": 6, "morning": 6,
	"middag": 12, "afternoon": 12,
	"avond": 18, "evening": 18,
	"nacht": 23, "night": 23,
	"noon": 12,
	"middernacht": 0, "midnight": 0,
}

var fillers = map[string]bool{
	"op": true, "on": true, "the": true, "de": true, "het": true, "om": true, "at": true,
	"van": true, "of": true, "rond": true, "around": true, "uur": true, "o'clock": true,
}

var agoWords = map[string]bool{"geleden": true, "ago": true}

var inWords = map[string]bool{"in": true, "over": true, "binnen": true}
