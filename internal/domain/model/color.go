package model

import (
	"strconv"
	"strings"
)

// namedColors maps the color names used in the catalog to hex values.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#FFFFFF",
	"red":    "#FF0000",
	"green":  "#008000",
	"blue":   "#0000FF",
	"yellow": "#FFFF00",
	"orange": "#FFA500",
	"purple": "#800080",
	"pink":   "#FFC0CB",
	"gray":   "#808080",
	"brown":  "#A52A2A",
}

// IsLightColor reports whether a named or #RRGGBB color has a perceived
// brightness above the midpoint. Unknown colors are treated as dark.
func IsLightColor(color string) bool {
	hex := strings.TrimSpace(color)
	if v, ok := namedColors[strings.ToLower(hex)]; ok {
		hex = v
	}
	if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
		return false
	}

	r, errR := strconv.ParseUint(hex[1:3], 16, 8)
	g, errG := strconv.ParseUint(hex[3:5], 16, 8)
	b, errB := strconv.ParseUint(hex[5:7], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return false
	}

	brightness := float64(r*299+g*587+b*114) / 1000
	return brightness > 128
}
