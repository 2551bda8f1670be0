// Package datapath builds the dated output layout shared by collection
// and extraction: base/site/region/experience/ddmmyyyy.ext.
package datapath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const stampLayout = "02012006" //ddmmyyyy

var siteAbbreviations = map[string]string{
	"justjoinit": "jjit",
	"pracujplit": "ppl",
}

var regionAbbreviations = map[string]string{
	"warszawa":      "waw",
	"warsaw":        "waw",
	"gdansk":        "gd",
	"trojmiasto":    "tri",
	"all-locations": "all",
	"all":           "all",
}

var experienceAbbreviations = map[string]string{
	"junior":      "j",
	"mid":         "m",
	"senior":      "s",
	"intern":      "i",
	"c-level":     "man",
	"c-level,mid": "man",
	"1":           "i",
	"3":           "as",
	"17":          "j",
	"4":           "m",
	"18":          "s",
	"19":          "ex",
	"20":          "man",
	"20%2c6":      "man",
}

// Abbreviations resolves the directory names for a (site, city, experience)
// triple. Unknown values fall back to clipped literals so new search
// parameters still land on stable paths.
func Abbreviations(site, city, experience string) (string, string, string) {
	siteAbbr, ok := siteAbbreviations[strings.ToLower(site)]
	if !ok {
		siteAbbr = clip(strings.ToLower(site), 4)
	}

	regionKey := strings.ToLower(city)
	if regionKey == "" {
		regionKey = "all"
	}
	regionAbbr, ok := regionAbbreviations[regionKey]
	if !ok {
		regionAbbr = clip(regionKey, 3)
	}

	expKey := strings.ToLower(experience)
	expAbbr, ok := experienceAbbreviations[expKey]
	if !ok {
		expAbbr = clip(expKey, 1)
	}

	return siteAbbr, regionAbbr, expAbbr
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Build returns the output path for one collection dated today, creating
// the directory chain.
func Build(baseDir, site, city, experience, extension string) (string, error) {
	siteAbbr, regionAbbr, expAbbr := Abbreviations(site, city, experience)

	dir := filepath.Join(baseDir, siteAbbr, regionAbbr, expAbbr)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	name := time.Now().Format(stampLayout) + "." + extension
	return filepath.Join(dir, name), nil
}

// Latest returns the newest file for the triple, ordered by the date in
// the file name. Lexical order would put 01092025 ahead of 31082025, so
// stems are parsed as dates; names that do not parse are ignored.
func Latest(baseDir, site, city, experience, extension string) (string, error) {
	siteAbbr, regionAbbr, expAbbr := Abbreviations(site, city, experience)
	dir := filepath.Join(baseDir, siteAbbr, regionAbbr, expAbbr)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", dir, err)
	}

	suffix := "." + extension
	var newestName string
	var newestDate time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		stamp, err := time.Parse(stampLayout, strings.TrimSuffix(entry.Name(), suffix))
		if err != nil {
			continue
		}
		if newestName == "" || stamp.After(newestDate) {
			newestName = entry.Name()
			newestDate = stamp
		}
	}

	if newestName == "" {
		return "", fmt.Errorf("no %s files under %s", extension, dir)
	}
	return filepath.Join(dir, newestName), nil
}
