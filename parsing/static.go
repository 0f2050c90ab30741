package parsing

// specialNumber is a token with a fixed decoded value and spoken form. A nil
// value means the token is descriptive only (no magnitude).
type specialNumber struct {
	value  *float64
	spoken string
}

func num(v float64) *float64 { return &v }

// specialNumbers maps non-numeric tokens that still decode to a Number.
var specialNumbers = map[string]specialNumber{
	"CAVOK":  {num(9999), "ceiling and visibility ok"},
	"M1":     {nil, "less than one"},
	"M1/2":   {nil, "less than one half"},
	"M1/2SM": {nil, "less than one half"},
	"M1/4":   {nil, "less than one quarter"},
	"M1/4SM": {nil, "less than one quarter"},
	"M1/8":   {nil, "less than one eighth"},
	"M1/8SM": {nil, "less than one eighth"},
	"P49":    {nil, "greater than four nine"},
	"P6":     {nil, "greater than six"},
	"P6SM":   {nil, "greater than six"},
	"P99":    {nil, "greater than nine nine"},
	"VRB":    {nil, "variable"},
	"CLM":    {num(0), "calm"},
	"SFC":    {num(0), "surface"},
	"GND":    {num(0), "ground"},
	"STNR":   {num(0), "stationary"},
	"LTL":    {num(0), "little"},
	"FRZLVL": {nil, "freezing level"},
	"UNL":    {num(999), "Unlimited"},
}

// cardinals maps named compass directions to degrees.
var cardinals = map[string]int{
	"N":     360,
	"NORTH": 360,
	"NE":    45,
	"E":     90,
	"EAST":  90,
	"SE":    135,
	"S":     180,
	"SOUTH": 180,
	"SW":    225,
	"W":     270,
	"WEST":  270,
	"NW":    315,
}

// spokenDigits maps number characters to their radio-spoken words.
var spokenDigits = map[rune]string{
	'.': "point",
	'-': "minus",
	'M': "minus",
	'0': "zero",
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "nine",
}

// spokenFractions maps common fraction strings to their spoken words.
var spokenFractions = map[string]string{
	"1/4": "one quarter",
	"1/2": "one half",
	"3/4": "three quarters",
}

// WxTranslations expands two-letter weather phenomenon codes.
var WxTranslations = map[string]string{
	"BC": "Patchy",
	"BL": "Blowing",
	"BR": "Mist",
	"DR": "Low Drifting",
	"DS": "Duststorm",
	"DU": "Wide Dust",
	"DZ": "Drizzle",
	"FC": "Funnel Cloud",
	"FG": "Fog",
	"FU": "Smoke",
	"FZ": "Freezing",
	"GR": "Hail",
	"GS": "Small Hail",
	"HZ": "Haze",
	"IC": "Ice Crystals",
	"MI": "Shallow",
	"PL": "Ice Pellets",
	"PO": "Dust Whirls",
	"PR": "Partial",
	"PY": "Spray",
	"RA": "Rain",
	"SA": "Sand",
	"SG": "Snow Grains",
	"SH": "Showers",
	"SN": "Snow",
	"SQ": "Squall",
	"SS": "Sandstorm",
	"SY": "Spray",
	"TS": "Thunderstorm",
	"UP": "Unknown Precip",
	"VA": "Volcanic Ash",
	"VC": "Vicinity",
}

// CloudDescriptors covers both layer amounts and cloud genus qualifiers that
// may trail a layer group, e.g. OVC022 CB.
var CloudDescriptors = map[string]bool{
	"OVC": true, "BKN": true, "SCT": true, "FEW": true, "VV": true,
	"CLR": true, "SKC": true,
	"AC": true, "ACC": true, "AS": true, "CB": true, "CC": true, "CI": true,
	"CS": true, "CU": true, "FC": true, "FS": true, "NS": true, "SC": true,
	"ST": true, "TCU": true,
}
