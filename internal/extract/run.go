package extract

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"go-jobboard-automation/internal/collector"
	"go-jobboard-automation/internal/datapath"
)

// Run parses the newest raw collection for the given search parameters
// and writes the records as CSV into the matching staging path. It
// returns the CSV path and the parsed records.
func Run(site collector.Site, rawDir, stagingDir, city, experience string) (string, []Record, error) {
	extractor, err := For(site)
	if err != nil {
		return "", nil, err
	}

	inputPath, err := datapath.Latest(rawDir, string(site), city, experience, "html")
	if err != nil {
		return "", nil, fmt.Errorf("locate raw collection: %w", err)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", inputPath, err)
	}

	records, err := extractor.Parse(string(raw))
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", inputPath, err)
	}
	log.Printf("  📄 Parsed %s offers from %s", humanize.Comma(int64(len(records))), inputPath)

	outputPath, err := datapath.Build(stagingDir, string(site), city, experience, "csv")
	if err != nil {
		return "", nil, err
	}
	if err := WriteCSV(outputPath, records); err != nil {
		return "", nil, err
	}

	return outputPath, records, nil
}
