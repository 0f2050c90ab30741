package bulletin

// Cloud is a decoded cloud layer group. Type is one of FEW, SCT, BKN, OVC, a
// hyphen-joined pair for combined layers, or VV for vertical visibility; empty
// when unknown. Base and Top are hundreds of feet AGL, nil when unreported.
// Modifier holds trailing qualifiers such as CB or TCU.
type Cloud struct {
	Repr     string
	Type     string
	Base     *int
	Top      *int
	Modifier string
}

// CloudTypes are the recognized layer amount codes in increasing coverage order.
var CloudTypes = []string{"FEW", "SCT", "BKN", "OVC"}

// IsCloudType reports whether s is a recognized layer amount code.
func IsCloudType(s string) bool {
	for _, c := range CloudTypes {
		if s == c {
			return true
		}
	}
	return false
}
