package scrape

import (
	"fmt"
	"time"
)

// maxPageSpread caps how many pages one run may walk, to stay polite to the
// server.
const maxPageSpread = 50

// Options configures one index scraping run. Validate and NormalizeDates
// must both succeed before the run starts; after that the value is treated
// as immutable.
type Options struct {
	StartPage      int
	EndPage        int
	Delay          int // seconds between listing page fetches
	StartDate      string
	EndDate        string
	Rubric         string
	ArticlePerPage int
	ExtractContent bool
	Categorize     bool
	FromFeed       bool // discover stubs via the rubric RSS feed instead of index pages
	OutputName     string
}

// Validate fails fast on malformed dates, inverted date ranges, and
// oversized page ranges, before any network activity happens.
func (o Options) Validate() error {
	if err := validateDateFormat(o.StartDate, "start-date"); err != nil {
		return err
	}
	if err := validateDateFormat(o.EndDate, "end-date"); err != nil {
		return err
	}

	if o.StartDate != "" && o.EndDate != "" {
		start, _ := time.Parse(isoDate, o.StartDate)
		end, _ := time.Parse(isoDate, o.EndDate)
		if start.After(end) {
			return fmt.Errorf("start-date cannot be later than end-date")
		}
	}

	if o.EndPage-o.StartPage > maxPageSpread {
		return fmt.Errorf("refusing to scrape more than %d pages in one run", maxPageSpread)
	}

	return nil
}

// NormalizeDates widens a one-sided date range into a one-day window, so
// both dates are always present once any is.
func (o *Options) NormalizeDates() {
	switch {
	case o.StartDate != "" && o.EndDate == "":
		if end, ok := shiftDate(o.StartDate, 1); ok {
			o.EndDate = end
		}
	case o.EndDate != "" && o.StartDate == "":
		if start, ok := shiftDate(o.EndDate, -1); ok {
			o.StartDate = start
		}
	}
}

func validateDateFormat(date, name string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(isoDate, date); err != nil {
		return fmt.Errorf("%s must be in YYYY-MM-DD format", name)
	}
	return nil
}
