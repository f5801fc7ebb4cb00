package stock

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nodeadmin/pathway-search/internal/logging"
)

// Summary counts what happened to the lines of a defaults file.
type Summary struct {
	Applied int `json:"applied" yaml:"applied"`
	Invalid int `json:"invalid" yaml:"invalid"`
	Unknown int `json:"unknown" yaml:"unknown"`
}

// ReadDefaults applies "species_name=XX.X" lines from r to l. Blank lines
// and lines starting with '#' are ignored. Malformed lines and species the
// list does not know are logged and skipped; only read failures are
// returned.
func ReadDefaults(r io.Reader, l *List, source string, logger logging.Logger) (Summary, error) {
	var sum Summary
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		species, raw, ok := strings.Cut(line, "=")
		species = strings.TrimSpace(species)
		if !ok {
			sum.Invalid++
			logger.Warn("invalid line", logging.String("source", source), logging.Int("line", lineNo), logging.String("text", line))
			continue
		}
		quantity, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			sum.Invalid++
			logger.Warn("invalid quantity", logging.String("source", source), logging.Int("line", lineNo),
				logging.String("species", species), logging.String("value", raw))
			continue
		}
		if !l.SetQuantity(species, quantity) {
			sum.Unknown++
			logger.Warn("species does not exist in this pathway", logging.String("source", source),
				logging.Int("line", lineNo), logging.String("species", species))
			continue
		}
		sum.Applied++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("stock: read %s: %w", source, err)
	}
	return sum, nil
}

// ReadDefaultsFile opens path and applies it with ReadDefaults.
func ReadDefaultsFile(path string, l *List, logger logging.Logger) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("stock: %w", err)
	}
	defer f.Close()
	return ReadDefaults(f, l, path, logger)
}
