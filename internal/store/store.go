// Package store persists player state across sessions as a plain text file.
package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/feltworks/holdem/internal/fileutil"
)

// MaxRecords caps how many players a saved game may hold, matching the
// table's seat limit.
const MaxRecords = 6

// Record is one saved player: current chips plus lifetime statistics.
type Record struct {
	Name        string
	Chips       int
	GamesWon    int
	HandsPlayed int
	HandsWon    int
}

// Save writes records to path, one player per line, replacing the file
// atomically so a crash mid-save never corrupts an existing state file.
func Save(path string, records []Record) error {
	if len(records) > MaxRecords {
		return fmt.Errorf("too many records: %d exceeds %d", len(records), MaxRecords)
	}

	var sb strings.Builder
	for _, r := range records {
		if strings.ContainsAny(r.Name, " \t\n") {
			return fmt.Errorf("player name %q contains whitespace", r.Name)
		}
		fmt.Fprintf(&sb, "%s %d %d %d %d\n", r.Name, r.Chips, r.GamesWon, r.HandsPlayed, r.HandsWon)
	}

	if err := fileutil.WriteFileAtomic(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

// Load reads records from path in the order they were saved. A record line is
// five whitespace-delimited fields: name, chips, games won, hands played,
// hands won. Blank lines are skipped.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open game state: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 5 {
			return nil, fmt.Errorf("malformed record %q: want 5 fields, got %d", scanner.Text(), len(fields))
		}
		if len(records) == MaxRecords {
			return nil, fmt.Errorf("too many records: file exceeds %d players", MaxRecords)
		}

		r := Record{Name: fields[0]}
		nums := []*int{&r.Chips, &r.GamesWon, &r.HandsPlayed, &r.HandsWon}
		for i, dst := range nums {
			n, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return nil, fmt.Errorf("malformed record %q: %w", scanner.Text(), err)
			}
			*dst = n
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game state: %w", err)
	}
	return records, nil
}
