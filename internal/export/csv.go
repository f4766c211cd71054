// Package export serializes selected profiles to CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/leadscout/leadscout/internal/profile"
)

// Header is the fixed column order of every export.
var Header = []string{"Name", "Title", "Company", "Bio", "LinkedIn URL"}

// Write emits a header row plus one row per profile, in input order.
func Write(w io.Writer, profiles []*profile.Profile) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range profiles {
		row := []string{p.Name, p.Title, p.Company, p.Summary, p.LinkedInURL}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename returns the timestamped attachment name for a download started at
// the given time.
func Filename(now time.Time) string {
	return fmt.Sprintf("leads-%s.csv", now.Format("2006-01-02-150405"))
}

// WriteFile writes the CSV to a file in the current directory and returns its
// name.
func WriteFile(profiles []*profile.Profile, now time.Time) (string, error) {
	name := Filename(now)
	file, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := Write(file, profiles); err != nil {
		return "", err
	}
	return name, nil
}
