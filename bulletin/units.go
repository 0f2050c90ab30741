package bulletin

// Units records the unit inferred for each quantity during a single parse.
// It starts from a regional default and is mutated when an explicit unit
// token is seen, then treated as read-only by callers.
type Units struct {
	Accumulation string
	Altimeter    string
	Altitude     string
	Temperature  string
	Visibility   string
	WindSpeed    string
}

// NorthAmerican returns the unit defaults for US/Canada format reports.
func NorthAmerican() Units {
	return Units{
		Accumulation: "in",
		Altimeter:    "inHg",
		Altitude:     "ft",
		Temperature:  "C",
		Visibility:   "sm",
		WindSpeed:    "kt",
	}
}

// International returns the unit defaults for ICAO international format reports.
func International() Units {
	return Units{
		Accumulation: "in",
		Altimeter:    "hPa",
		Altitude:     "ft",
		Temperature:  "C",
		Visibility:   "m",
		WindSpeed:    "kt",
	}
}
