package parsing

import (
	"strconv"
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
)

// specialMileVis are statute-mile tokens kept whole so their less/greater-than
// prefixes survive into the decoded Number.
var specialMileVis = map[string]bool{
	"P6SM": true, "M1SM": true, "M1/2SM": true, "M1/4SM": true, "M1/8SM": true,
}

// GetVisibility consumes the first remaining token when it is a recognized
// visibility form: statute miles (plain or fractional), meters (plain,
// directional-suffixed, M/P/B-prefixed, or km), or the two-token split
// fractional-mile form (2 1/2SM). Updates the visibility unit accordingly.
func GetVisibility(data []string, units *bulletin.Units) ([]string, *bulletin.Number) {
	visibility := ""
	if len(data) > 0 {
		item := data[0]
		switch {
		// Vis reported in statute miles: 10SM
		case strings.HasSuffix(item, "SM"):
			switch {
			case specialMileVis[item]:
				visibility = item[:len(item)-2]
			case IsDigits(item[:len(item)-2]):
				n, _ := strconv.Atoi(item[:len(item)-2])
				visibility = strconv.Itoa(n)
			case strings.Contains(item, "/"):
				visibility = item[:strings.Index(item, "SM")] // 1/2SM
			}
			data = data[1:]
			units.Visibility = "sm"
		// Vis reported in meters: 9999
		case len(item) == 4 && IsDigits(item):
			visibility = item
			data = data[1:]
			units.Visibility = "m"
		// Directional or NDV suffix: 1500S, 3000NDV
		case len(item) >= 5 && len(item) <= 7 && IsDigits(item[:4]) &&
			(strings.ContainsAny(item[4:5], "MNSEW") || item[4:] == "NDV"):
			visibility = item[:4]
			data = data[1:]
			units.Visibility = "m"
		// Less/greater-than prefix: M0150, P6000
		case len(item) == 5 && IsDigits(item[1:]) && strings.ContainsAny(item[:1], "MPB"):
			visibility = item[1:]
			data = data[1:]
			units.Visibility = "m"
		// Kilometers: 5KM
		case strings.HasSuffix(item, "KM") && IsDigits(strings.TrimSuffix(item, "KM")):
			visibility = strings.TrimSuffix(item, "KM") + "000"
			data = data[1:]
			units.Visibility = "m"
		// Vis statute miles but split: 2 1/2SM
		case len(data) > 1 && strings.HasSuffix(data[1], "SM") && strings.Contains(data[1], "/") && IsDigits(item):
			vis1 := item                              // 2
			vis2 := strings.TrimSuffix(data[1], "SM") // 1/2
			data = data[2:]
			if len(vis2) >= 3 && IsDigits(vis1) && IsDigits(vis2[:1]) && IsDigits(vis2[2:3]) {
				whole, _ := strconv.Atoi(vis1)
				num, _ := strconv.Atoi(vis2[:1])
				den, _ := strconv.Atoi(vis2[2:3])
				visibility = strconv.Itoa(whole*den+num) + vis2[1:] // 5/2
			}
			units.Visibility = "sm"
		}
	}
	return data, MakeNumber(visibility)
}
