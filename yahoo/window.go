// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yahoo

import (
	"strconv"
	"time"
)

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Check validates the window.
func (w Window) Check() error {
	return ValidateDates(w.Start, w.End)
}

// Period1 is the value of the "period1" query parameter.
func (w Window) Period1() string {
	return strconv.FormatInt(w.Start.Unix(), 10)
}

// Period2 is the value of the "period2" query parameter.
func (w Window) Period2() string {
	return strconv.FormatInt(w.End.Unix(), 10)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// YearToDate is the window from January 1 of the current year until now.
func YearToDate(now time.Time) Window {
	return Window{
		Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   now,
	}
}

// LastYear is the previous calendar year.
func LastYear(now time.Time) Window {
	return Window{
		Start: time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
	}
}

// LastMonth is the previous calendar month.
func LastMonth(now time.Time) Window {
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{Start: end.AddDate(0, -1, 0), End: end}
}

// Last30Days is the window of 30 days until now.
func Last30Days(now time.Time) Window {
	return Window{Start: now.AddDate(0, 0, -30), End: now}
}

// LastWeek is the previous calendar week, Monday through Sunday.
func LastWeek(now time.Time) Window {
	sinceMonday := (int(now.Weekday()) + 6) % 7
	end := midnight(now).AddDate(0, 0, -sinceMonday)
	return Window{Start: end.AddDate(0, 0, -7), End: end}
}

// Windows maps the names of the predefined windows to their functions.
var Windows = map[string]func(time.Time) Window{
	"ytd":       YearToDate,
	"lastyear":  LastYear,
	"lastmonth": LastMonth,
	"last30":    Last30Days,
	"lastweek":  LastWeek,
}
