package sanitize

import (
	"regexp"
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/parsing"
)

// Whole-string replacement tables. Order matters within each table, so they
// are slices rather than maps.

var sharedReplacements = []replacement{
	{"!", "1"},
	{"@", "2"},
	{"#", "3"},
	{"%", "5"},
	{"^", "6"},
	{"&", "7"},
	{"*", "8"},
	{"?", " "},
	{`"`, ""},
	{"'", ""},
	{"`", ""},
	{".", ""},
	{"(", " "},
	{")", " "},
	{";", " "},
}

var windStringReplacements = []replacement{
	{"MISSINGKT", ""},
	{" 0I0", " 090"},
	{"NOSIGKT ", "KT NOSIG "},
	{"KNOSIGT ", "KT NOSIG "},
	{"/VRB", " VRB"},
	{"CALMKT ", "CALM "},
	{"CLMKT ", "CALM "},
	{"CLRKT ", "CALM "},
}

var visibilityStringReplacements = []replacement{
	{" <1/", " M1/"}, // <1/4SM <1/8SM
	{"/04SM", "/4SM"},
	{"/4SSM", "/4SM"},
	{"/08SM", "/8SM"},
	{" /34SM", "3/4SM"},
	{" 3/SM", " 3/4SM"},
	{"PQ6SM ", "P6SM "},
	{"P6000F ", "P6000FT "},
	{"P6000FTQ ", "P6000FT "},
}

var cloudStringReplacements = []replacement{
	{" C A V O K ", " CAVOK "},
	{"N0SIG", "NOSIG"},
	{"SCATTERED", "SCT"},
	{"BROKEN", "BKN"},
	{"OVERCAST", "OVC"},
}

// currentReplacements is the base string table shared by observation and
// forecast reports.
var currentReplacements = concatReplacements(
	sharedReplacements,
	windStringReplacements,
	visibilityStringReplacements,
	cloudStringReplacements,
)

func concatReplacements(tables ...[]replacement) []replacement {
	var out []replacement
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// Token removal sets.

var sharedRemovals = []string{"$", "KT", "M", ".", "1/SM"}
var currentRemovals = []string{"AUTO", "NSC", "NCD", "RTD", "SPECI", "CORR"}

func removalSet(extra ...string) map[string]bool {
	set := make(map[string]bool)
	for _, s := range sharedRemovals {
		set[s] = true
	}
	for _, s := range currentRemovals {
		set[s] = true
	}
	for _, s := range extra {
		set[s] = true
	}
	return set
}

// Token substitution map applied after the report has been split.
var itemReplacements = map[string]string{
	"CALM":   "00000KT",
	"A01":    "AO1",
	"A02":    "AO2",
	"PROB3O": "PROB30",
}

var windUnitSet = map[string]bool{"KT": true, "KTS": true, "MPS": true, "KMH": true, "MPH": true}

// Single-token rules.

// onlySlashes removes placeholder-only tokens.
var onlySlashes = rule{remove: parsing.IsUnknown}

// emptyWind removes an empty wind token: /////KT.
var emptyWind = rule{remove: func(item string) bool {
	return strings.HasSuffix(item, "KT") && parsing.IsUnknown(item[:len(item)-2])
}}

// trimWxCode strips a recent-weather prefix from a recognized code: REVCTS -> VCTS.
var trimWxCode = rule{replace: func(item string) (string, bool) {
	if !strings.HasPrefix(item, "RE") || item == "RE" {
		return "", false
	}
	rest := item[2:]
	if len(rest)%2 != 0 {
		return "", false
	}
	for i := 0; i < len(rest); i += 2 {
		if _, ok := parsing.WxTranslations[rest[i:i+2]]; !ok {
			return "", false
		}
	}
	return rest, true
}}

func removeInSet(set map[string]bool) rule {
	return rule{remove: func(item string) bool { return set[item] }}
}

// replaceItem substitutes fixed mistyped tokens, e.g. CALM -> 00000KT.
var replaceItem = rule{replace: func(item string) (string, bool) {
	rep, ok := itemReplacements[item]
	return rep, ok
}}

// removeTafAmend drops a 3-character amendment flag: CCA, CCB, ...
var removeTafAmend = rule{remove: func(item string) bool {
	return len(item) == 3 && strings.HasPrefix(item, "CC") && item[2] >= 'A' && item[2] <= 'Z'
}}

// visPermutations holds every scrambling of P6SM that still means "greater
// than six miles", minus the one that collides with a real MPS wind.
var visPermutations = buildVisPermutations()

func buildVisPermutations() map[string]bool {
	set := make(map[string]bool)
	var permute func(prefix, rest string)
	permute = func(prefix, rest string) {
		if rest == "" {
			set[prefix] = true
			return
		}
		for i := range rest {
			permute(prefix+string(rest[i]), rest[:i]+rest[i+1:])
		}
	}
	permute("", "P6SM")
	delete(set, "6MPS")
	set["6+SM"] = true
	return set
}

// visibilityGreaterThan fixes inconsistent P6SM: TP6SM or 6PSM -> P6SM.
var visibilityGreaterThan = rule{replace: func(item string) (string, bool) {
	if len(item) > 3 && visPermutations[item[len(item)-4:]] {
		return "P6SM", true
	}
	return "", false
}}

// runwayVisibilityUnit completes an RVR FT unit cut short.
var runwayVisibilityUnit = rule{replace: func(item string) (string, bool) {
	if parsing.IsRunwayVisibility(item) && strings.HasSuffix(item, "F") {
		return item + "T", true
	}
	return "", false
}}

// Wind-specific token rules.

// misplaceWindKT fixes a misplaced unit: 22022KTG40 -> 22022G40KT.
var misplaceWindKT = rule{replace: func(item string) (string, bool) {
	if len(item) == 10 && strings.Contains(item, "KTG") && parsing.IsDigits(item[:5]) {
		return strings.Replace(item, "KTG", "G", 1) + "KT", true
	}
	return "", false
}}

// doubleGust fixes a duplicated gust marker: 360G17G32KT -> 36017G32KT.
var doubleGust = rule{replace: func(item string) (string, bool) {
	if len(item) > 10 && strings.HasSuffix(item, "KT") && item[3] == 'G' {
		return item[:3] + item[4:], true
	}
	return "", false
}}

// windLeadingMistype strips leading garbage from a wind group.
var windLeadingMistype = rule{replace: func(item string) (string, bool) {
	if len(item) <= 7 || isDigit(item[0]) || strings.HasPrefix(item, "VRB") ||
		!strings.HasSuffix(item, "KT") || strings.HasPrefix(item, "WS") {
		return "", false
	}
	for item != "" && !isDigit(item[0]) && !strings.HasPrefix(item, "VRB") {
		item = item[1:]
	}
	return item, true
}}

// nonGGust fixes a gust separated by the wrong character: 14010-15KT.
var nonGGust = rule{replace: func(item string) (string, bool) {
	if len(item) == 10 && strings.HasSuffix(item, "KT") && item[5] != 'G' {
		return item[:5] + "G" + item[6:], true
	}
	return "", false
}}

// removeVrbLeadingDigits fixes leading digits on VRB wind: 2VRB02KT.
var removeVrbLeadingDigits = rule{replace: func(item string) (string, bool) {
	if len(item) <= 7 || !strings.HasSuffix(item, "KT") || !strings.Contains(item, "VRB") ||
		!isDigit(item[0]) || strings.Contains(item, "Z") {
		return "", false
	}
	for item != "" && isDigit(item[0]) {
		item = item[1:]
	}
	return item, true
}}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Combine rules: the token merges into its left neighbor when the pair
// matches a wrongly-split pattern.

// separatedDistance merges a distance digit and unit: 10 SM.
var separatedDistance = rule{combine: func(first, second string) bool {
	return parsing.IsDigits(first) && (second == "SM" || second == "0SM")
}}

// separatedFirstTemperature merges a temperature before the slash: 12 /10.
var separatedFirstTemperature = rule{combine: func(first, second string) bool {
	return parsing.IsDigits(first) && len(second) > 2 && second[0] == '/' && parsing.IsDigits(second[1:])
}}

// separatedCloudAltitude merges a cloud type and altitude: OVC 040.
var separatedCloudAltitude = rule{combine: func(first, second string) bool {
	return parsing.IsDigits(second) && bulletin.IsCloudType(first)
}}

// separatedSecondTemperature merges a dewpoint after the slash: 12/ 10.
var separatedSecondTemperature = rule{combine: func(first, second string) bool {
	return parsing.IsDigits(second) && len(first) > 2 && strings.HasSuffix(first, "/") &&
		parsing.IsDigits(first[:len(first)-1])
}}

// separatedAltimeterLetter merges an altimeter letter prefix: Q 1001, A 2992.
var separatedAltimeterLetter = rule{combine: func(first, second string) bool {
	if !parsing.IsDigits(second) {
		return false
	}
	switch first {
	case "Q":
		return second[0] == '0' || second[0] == '1'
	case "A":
		return second[0] == '2' || second[0] == '3'
	}
	return false
}}

// separatedTemperatureTrailingDigit merges a split dewpoint: 12/1 0.
var separatedTemperatureTrailingDigit = rule{combine: func(first, second string) bool {
	return len(second) == 1 && parsing.IsDigits(second) &&
		len(first) > 3 && parsing.IsDigits(first[:2]) &&
		strings.Contains(first, "/") && parsing.IsDigits(first[3:])
}}

// separatedWindUnit merges a wind unit that came loose: 36010G20 KT, 36010K T.
var separatedWindUnit = rule{combine: func(first, second string) bool {
	if first == "" {
		return false
	}
	windBody := func(s string) bool {
		if len(s) >= 5 && parsing.IsDigits(s[:5]) {
			return true
		}
		return strings.HasPrefix(s, "VRB") && len(s) >= 5 && parsing.IsDigits(s[3:5])
	}
	// 36010G20 KT
	if windUnitSet[second] && isDigit(first[len(first)-1]) && windBody(first) {
		return true
	}
	// 36010K T
	return second == "T" && len(first) >= 6 && windBody(first) && first[len(first)-1] == 'K'
}}

// separatedCloudQualifier merges a trailing cloud descriptor: OVC022 CB.
var separatedCloudQualifier = rule{combine: func(first, second string) bool {
	return parsing.CloudDescriptors[second] && !bulletin.IsCloudType(second) &&
		len(first) >= 3 && bulletin.IsCloudType(first[:3])
}}

// separatedTafTimePrefix merges a TAF period prefix: FM 122400.
var separatedTafTimePrefix = rule{combine: func(first, second string) bool {
	if first != "FM" && first != "TL" {
		return false
	}
	return parsing.IsDigits(second) ||
		(strings.HasSuffix(second, "Z") && parsing.IsDigits(second[:len(second)-1]))
}}

// separatedMinMaxTemperaturePrefix merges a TAF temperature prefix: TX 20/10.
var separatedMinMaxTemperaturePrefix = rule{combine: func(first, second string) bool {
	return (first == "TX" || first == "TN") && strings.Contains(second, "/")
}}

// Split rules: two glued elements separate at the returned index.

var cloudSpacePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(FEW|SCT|BKN|OVC)\d{3}(\w{2,3})?$`), // SCT010BKN021
	regexp.MustCompile(`M?\d{2}/M?\d{2}$`),                  // BKN01826/25
}

// joinedCloud splits a token that starts with a cloud layer and embeds more.
var joinedCloud = rule{split: func(item string) int {
	if len(item) < 3 || !bulletin.IsCloudType(item[:3]) {
		return 0
	}
	for _, pattern := range cloudSpacePatterns {
		if loc := pattern.FindStringIndex(item); loc != nil && loc[0] > 0 {
			return loc[0]
		}
	}
	return 0
}}

// joinedTimestamp splits a timestamp or time range glued to a next element.
var joinedTimestamp = rule{split: func(item string) int {
	if len(item) > 7 && parsing.IsTimestamp(item[:7]) {
		return 7
	}
	if len(item) > 9 && parsing.IsTimerange(item[:9]) {
		return 9
	}
	return 0
}}

// joinedWind splits a wind group glued to the following element.
var joinedWind = rule{split: func(item string) int {
	if len(item) > 5 && strings.Contains(item, "KT") && !strings.HasSuffix(item, "KT") {
		if index := strings.Index(item, "KT"); index > 4 {
			return index + 2
		}
	}
	return 0
}}

var tafNewLineMarkers = []string{"INTER", "BECMG", "TEMPO"}
var tafNewLinePrefixes = []string{"FM", "PROB"}

// joinedTafNewLine splits a TAF period marker glued to the previous element.
var joinedTafNewLine = rule{split: func(item string) int {
	for _, key := range tafNewLineMarkers {
		if strings.Contains(item, key) && !strings.HasPrefix(item, key) {
			return strings.Index(item, key)
		}
	}
	for _, key := range tafNewLinePrefixes {
		if strings.Contains(item, key) && !strings.HasPrefix(item, key) {
			index := strings.Index(item, key)
			if parsing.IsDigits(item[index+len(key):]) {
				return index
			}
		}
	}
	return 0
}}

// joinedMinMaxTemperature splits glued TX/TN groups: TX20/19ZTN15/07Z.
var joinedMinMaxTemperature = rule{split: func(item string) int {
	if strings.Contains(item, "TX") && strings.Contains(item, "TN") &&
		strings.HasSuffix(item, "Z") && strings.Contains(item, "/") {
		tx, tn := strings.Index(item, "TX"), strings.Index(item, "TN")
		if tx > tn {
			return tx
		}
		return tn
	}
	return 0
}}

var rvrPattern = regexp.MustCompile(`R\d{2}[RCL]?/\S+`)

// joinedRunwayVisibility splits connected RVR elements: R36/1500DR18/P2000.
var joinedRunwayVisibility = rule{split: func(item string) int {
	if len(item) < 2 {
		return 0
	}
	if loc := rvrPattern.FindStringIndex(item[1:]); loc != nil {
		return loc[0] + 1
	}
	return 0
}}
