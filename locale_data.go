package chronia

// Built-in locale name tables. Hand-maintained from CLDR gregorian
// calendar data; a generator could replace this file if the set grows.

var localeEN = &Locale{
	Code: "en",
	Eras: NameTable{
		Narrow:      []string{"B", "A"},
		Abbreviated: []string{"BC", "AD"},
		Wide:        []string{"Before Christ", "Anno Domini"},
	},
	Months: NameTable{
		Narrow: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		Abbreviated: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Wide: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	},
	Weekdays: NameTable{
		Narrow:      []string{"S", "M", "T", "W", "T", "F", "S"},
		Abbreviated: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Wide:        []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	},
	DayPeriods: NameTable{
		Narrow:      []string{"a", "p"},
		Abbreviated: []string{"AM", "PM"},
		Wide:        []string{"AM", "PM"},
	},
	EraAliases: [2][]string{
		{"BCE", "Before Common Era"},
		{"CE", "Common Era"},
	},
}

var localeES = &Locale{
	Code: "es",
	Eras: NameTable{
		Narrow:      []string{"a. C.", "d. C."},
		Abbreviated: []string{"a. C.", "d. C."},
		Wide:        []string{"antes de Cristo", "después de Cristo"},
	},
	Months: NameTable{
		Narrow: []string{"E", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		Abbreviated: []string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		Wide: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
	},
	Weekdays: NameTable{
		Narrow:      []string{"D", "L", "M", "X", "J", "V", "S"},
		Abbreviated: []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		Wide:        []string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	},
	DayPeriods: NameTable{
		Narrow:      []string{"a", "p"},
		Abbreviated: []string{"a. m.", "p. m."},
		Wide:        []string{"a. m.", "p. m."},
	},
	EraAliases: [2][]string{
		{"a.C.", "AEC"},
		{"d.C.", "EC"},
	},
}

var localeFR = &Locale{
	Code: "fr",
	Eras: NameTable{
		Narrow:      []string{"av. J.-C.", "ap. J.-C."},
		Abbreviated: []string{"av. J.-C.", "ap. J.-C."},
		Wide:        []string{"avant Jésus-Christ", "après Jésus-Christ"},
	},
	Months: NameTable{
		Narrow: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		Abbreviated: []string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		Wide: []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
	},
	Weekdays: NameTable{
		Narrow:      []string{"D", "L", "M", "M", "J", "V", "S"},
		Abbreviated: []string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		Wide:        []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	},
	DayPeriods: NameTable{
		Narrow:      []string{"AM", "PM"},
		Abbreviated: []string{"AM", "PM"},
		Wide:        []string{"AM", "PM"},
	},
	EraAliases: [2][]string{
		{"AEC"},
		{"EC"},
	},
}

var localeDE = &Locale{
	Code: "de",
	Eras: NameTable{
		Narrow:      []string{"v. Chr.", "n. Chr."},
		Abbreviated: []string{"v. Chr.", "n. Chr."},
		Wide:        []string{"vor Christus", "nach Christus"},
	},
	Months: NameTable{
		Narrow: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		Abbreviated: []string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		Wide: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
	},
	Weekdays: NameTable{
		Narrow:      []string{"S", "M", "D", "M", "D", "F", "S"},
		Abbreviated: []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		Wide:        []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	},
	DayPeriods: NameTable{
		Narrow:      []string{"AM", "PM"},
		Abbreviated: []string{"AM", "PM"},
		Wide:        []string{"AM", "PM"},
	},
	EraAliases: [2][]string{
		{"v. u. Z."},
		{"u. Z."},
	},
}

var localeJA = &Locale{
	Code: "ja",
	Eras: NameTable{
		Narrow:      []string{"BC", "AD"},
		Abbreviated: []string{"紀元前", "西暦"},
		Wide:        []string{"紀元前", "西暦"},
	},
	Months: NameTable{
		Narrow: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
		Abbreviated: []string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
		Wide: []string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
	},
	Weekdays: NameTable{
		Narrow:      []string{"日", "月", "火", "水", "木", "金", "土"},
		Abbreviated: []string{"日", "月", "火", "水", "木", "金", "土"},
		Wide:        []string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
	},
	DayPeriods: NameTable{
		Narrow:      []string{"午前", "午後"},
		Abbreviated: []string{"午前", "午後"},
		Wide:        []string{"午前", "午後"},
	},
	EraAliases: [2][]string{
		{"B.C."},
		{"A.D."},
	},
}

func builtinLocales() map[string]*Locale {
	return map[string]*Locale{
		"en": localeEN,
		"es": localeES,
		"fr": localeFR,
		"de": localeDE,
		"ja": localeJA,
	}
}
