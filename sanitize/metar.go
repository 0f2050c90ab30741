package sanitize

import "github.com/couchcryptid/flightwx/bulletin"

var metarReplacements = append(concatReplacements(currentReplacements), replacement{"Z/ ", "Z "})

var metarRemovals = removalSet("METAR", "CLR", "SKC", "COR")

var metarRules = []rule{
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
	removeInSet(metarRemovals),
	replaceItem,
	visibilityGreaterThan,
	misplaceWindKT,
	runwayVisibilityUnit,
	doubleGust,
	windLeadingMistype,
	nonGGust,
	removeVrbLeadingDigits,
	joinedCloud,
	joinedTimestamp,
	joinedWind,
	joinedRunwayVisibility,
}

// CleanMETARString repairs a raw METAR while it is still one string.
func CleanMETARString(text string, sans *bulletin.Sanitization) string {
	return cleanString(text, metarReplacements, sans)
}

// CleanMETARList repairs a tokenized METAR.
func CleanMETARList(data []string, sans *bulletin.Sanitization) []string {
	return cleanList(data, metarRules, sans)
}
