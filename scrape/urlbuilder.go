package scrape

import (
	"fmt"
	"time"
)

// isoDate is the layout for all date parameters.
const isoDate = "2006-01-02"

// BuildIndexURL constructs the URL for one index listing page. A non-empty
// rubric takes precedence and suppresses the date filter entirely; with no
// rubric, a one-sided date range is widened to a one-day window. The rubric
// value is appended without escaping, a deliberate pass-through of whatever
// slug the caller supplies.
func BuildIndexURL(baseURL string, page int, startDate, endDate, rubric string) string {
	url := fmt.Sprintf("%s?page=%d", baseURL, page)

	switch {
	case rubric != "":
		url += "&category=rubrik&rubric_slug=" + rubric
	case startDate != "" && endDate != "":
		url += "&category=date&start_date=" + startDate + "&end_date=" + endDate
	case startDate != "":
		if end, ok := shiftDate(startDate, 1); ok {
			url += "&category=date&start_date=" + startDate + "&end_date=" + end
		}
	case endDate != "":
		if start, ok := shiftDate(endDate, -1); ok {
			url += "&category=date&start_date=" + start + "&end_date=" + endDate
		}
	}

	return url
}

// shiftDate moves an ISO date by the given number of calendar days.
func shiftDate(date string, days int) (string, bool) {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return "", false
	}
	return t.AddDate(0, 0, days).Format(isoDate), true
}
