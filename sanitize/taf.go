package sanitize

import "github.com/couchcryptid/flightwx/bulletin"

var tafReplacements = append(concatReplacements(currentReplacements),
	replacement{"Z/ ", "Z "},
	replacement{" PROBB", " PROB"},
	replacement{" PROBN", " PROB"},
	replacement{" PROB3P", "PROB30"},
	replacement{" TMM", " TNM"},
	replacement{" TMN", " TNM"},
	replacement{" TXN", " TXM"},
	replacement{" TNTN", " TN"},
	replacement{" TXTX", " TX"},
	replacement{" TXX", " TX"},
)

var tafRemovals = removalSet("TAF", "TTF")

var tafRules = []rule{
	onlySlashes,
	emptyWind,
	trimWxCode,
	separatedDistance,
	separatedFirstTemperature,
	separatedCloudAltitude,
	separatedSecondTemperature,
	separatedAltimeterLetter,
	separatedTemperatureTrailingDigit,
	separatedWindUnit,
	separatedCloudQualifier,
	separatedTafTimePrefix,
	separatedMinMaxTemperaturePrefix,
	removeInSet(tafRemovals),
	replaceItem,
	removeTafAmend,
	visibilityGreaterThan,
	misplaceWindKT,
	doubleGust,
	windLeadingMistype,
	nonGGust,
	removeVrbLeadingDigits,
	joinedCloud,
	joinedTimestamp,
	joinedWind,
	joinedTafNewLine,
	joinedMinMaxTemperature,
}

// CleanTAFString repairs a raw TAF while it is still one string.
func CleanTAFString(text string, sans *bulletin.Sanitization) string {
	return cleanString(text, tafReplacements, sans)
}

// CleanTAFList repairs a tokenized TAF period line.
func CleanTAFList(data []string, sans *bulletin.Sanitization) []string {
	return cleanList(data, tafRules, sans)
}
