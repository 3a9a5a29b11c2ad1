package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func Capitalize(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

// PrettyHotspotName turns an on-chain hotspot name like
// "happy-tall-penguin" into "Happy Tall Penguin".
func PrettyHotspotName(name string) string {
	return Capitalize(strings.ReplaceAll(name, "-", " "))
}
