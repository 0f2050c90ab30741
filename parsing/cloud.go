package parsing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
)

// SanitizeCloud fixes rare cloud layer issues the token sanitizer is too
// broad to catch: a bad O standing in for zero (FEWO03) and a modifier typed
// before the base (BKNC015 -> BKN015C).
func SanitizeCloud(cloud string) string {
	if len(cloud) < 4 {
		return cloud
	}
	ch := cloud[3]
	if ch >= '0' && ch <= '9' || ch == '/' || ch == '-' {
		return cloud
	}
	if ch == 'O' {
		return cloud[:3] + "0" + cloud[4:]
	}
	if ch != 'U' && cloud[:4] != "BASE" && cloud[:4] != "UNKN" {
		return cloud[:3] + cloud[4:] + string(ch)
	}
	return cloud
}

var topOffsets = []string{"-TOPS", "-TOP"}

// nullOrBase converts a base/top digit run to a value, nulling placeholders.
func nullOrBase(val string) *int {
	if val == "" || IsUnknown(val) {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return bulletin.IntPtr(n)
}

// MakeCloud decodes a cloud layer token into its type, base, top, and
// modifier. Placeholder-only fields become absent.
func MakeCloud(cloud string) bulletin.Cloud {
	raw := cloud
	var cloudType, top string
	var base string
	cloud = strings.ReplaceAll(SanitizeCloud(cloud), "/", "")
	// Separate top
	for _, target := range topOffsets {
		if topi := strings.Index(cloud, target); topi > -1 {
			top = cloud[topi+len(target):]
			cloud = cloud[:topi]
			break
		}
	}
	// Separate type
	switch {
	case strings.HasPrefix(cloud, "BASES"):
		cloud = cloud[5:]
	case strings.HasPrefix(cloud, "BASE"):
		cloud = cloud[4:]
	case strings.HasPrefix(cloud, "VV"):
		cloudType, cloud = cloud[:2], cloud[2:]
	case len(cloud) >= 3 && bulletin.IsCloudType(cloud[:3]):
		cloudType, cloud = cloud[:3], cloud[3:]
	}
	// Hyphen-chained combined layer: BKN-OVC065
	if len(cloud) > 4 && cloud[0] == '-' && bulletin.IsCloudType(cloud[1:4]) {
		cloudType += cloud[:4]
		cloud = cloud[4:]
	}
	// Separate base
	if len(cloud) >= 3 && IsDigits(cloud[:3]) {
		base, cloud = cloud[:3], cloud[3:]
	} else if len(cloud) >= 4 && cloud[:4] == "UNKN" {
		cloud = cloud[4:]
	}
	return bulletin.Cloud{
		Repr:     raw,
		Type:     cloudType,
		Base:     nullOrBase(base),
		Top:      nullOrBase(top),
		Modifier: cloud,
	}
}

// GetClouds removes every token starting with a layer or vertical-visibility
// code and decodes each. The result is sorted by (base, type) ascending when
// all bases are known, otherwise left in original report order.
func GetClouds(data []string) ([]string, []bulletin.Cloud) {
	var clouds []bulletin.Cloud
	remaining := data[:0:0]
	for _, item := range data {
		if len(item) >= 3 && bulletin.IsCloudType(item[:3]) || strings.HasPrefix(item, "VV") {
			clouds = append(clouds, MakeCloud(item))
			continue
		}
		remaining = append(remaining, item)
	}
	sortable := true
	for _, c := range clouds {
		if c.Base == nil {
			sortable = false
			break
		}
	}
	if sortable {
		sort.SliceStable(clouds, func(i, j int) bool {
			if *clouds[i].Base != *clouds[j].Base {
				return *clouds[i].Base < *clouds[j].Base
			}
			return clouds[i].Type < clouds[j].Type
		})
	}
	return remaining, clouds
}

// IsRunwayVisibility reports whether the item is a runway visual range token.
// R28/CLRD70 is a runway state group, not an RVR.
func IsRunwayVisibility(item string) bool {
	return len(item) > 4 &&
		item[0] == 'R' &&
		(item[3] == '/' || item[4] == '/') &&
		IsDigits(item[1:3]) &&
		!strings.Contains(item, "CLRD")
}
