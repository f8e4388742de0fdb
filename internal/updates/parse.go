package updates

import "strings"

const arrowSeparator = " -> "

// ParseRecords extracts pending updates from the query output. Each non-empty
// line of the form "<name> -> <version>" with exactly one arrow separator
// yields a record; anything else is skipped without error.
func ParseRecords(output string) []Record {
	var records []Record
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Count(line, arrowSeparator) != 1 {
			continue
		}
		name, version, _ := strings.Cut(line, arrowSeparator)
		name = strings.TrimSpace(name)
		version = strings.TrimSpace(version)
		if name == "" || version == "" {
			continue
		}
		records = append(records, Record{Name: name, Version: version})
	}
	return records
}
