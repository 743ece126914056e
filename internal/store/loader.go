package store

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed seed.tsv
var seedTSV string

// ImportTSV loads tab-separated entries into the store. Each line is
// headword, descriptor, fanqie, gloss; the last two columns are optional.
// Blank lines and lines starting with # are skipped. Returns the number of
// entries added; a malformed line or invalid descriptor aborts the import.
func (s *Store) ImportTSV(r io.Reader, source string) (int, error) {
	scanner := bufio.NewScanner(r)
	added := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return added, fmt.Errorf("line %d: want at least headword and descriptor", lineNo)
		}
		entry := Entry{
			Headword:   fields[0],
			Descriptor: fields[1],
			Source:     source,
		}
		if len(fields) > 2 {
			entry.Fanqie = fields[2]
		}
		if len(fields) > 3 {
			entry.Gloss = fields[3]
		}
		if _, err := s.Add(entry); err != nil {
			return added, fmt.Errorf("line %d (%s): %w", lineNo, entry.Headword, err)
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("reading entries: %w", err)
	}
	return added, nil
}

// Seed loads the bundled sample of Guangyun readings. It is idempotent in
// effect only when run against a fresh store.
func (s *Store) Seed() (int, error) {
	return s.ImportTSV(strings.NewReader(seedTSV), "seed")
}
