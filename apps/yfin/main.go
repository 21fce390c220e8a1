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

// Command yfin prints a quote, a price history or similar securities from
// Yahoo Finance.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/yahoo/finance"
	"github.com/stockparfait/yahoo/message"
	"github.com/stockparfait/yahoo/table"
	"github.com/stockparfait/yahoo/yahoo"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const dateFormat = "2006-01-02"

type Flags struct {
	// Exactly one of Quote, History or Similar must be present.
	Quote    string
	History  string
	Similar  string
	Fields   string // comma-separated quote fields; default: all
	From     string // YYYY-MM-DD, for -history
	To       string // YYYY-MM-DD, for -history
	Window   string // one of yahoo.Windows, exclusive with -from / -to
	Interval string // overrides the config
	Raw      bool   // print the response body as is
	CSV      bool   // dump CSV format; default: text
	Stats    bool   // print the summary of the history instead of the points
	Conf     string // optional TOML config file
	LogLevel logging.Level
}

func windowNames() []string {
	names := maps.Keys(yahoo.Windows)
	slices.Sort(names)
	return names
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("yfin", flag.ExitOnError)
	fs.StringVar(&flags.Quote, "quote", "", "symbol to print the quote for")
	fs.StringVar(&flags.History, "history", "", "symbol to print the price history for")
	fs.StringVar(&flags.Similar, "similar", "", "symbol to print similar securities for")
	fs.StringVar(&flags.Fields, "fields", "", "comma-separated quote fields; default: all")
	fs.StringVar(&flags.From, "from", "", "history start date, YYYY-MM-DD")
	fs.StringVar(&flags.To, "to", "", "history end date (exclusive), YYYY-MM-DD")
	fs.StringVar(&flags.Window, "window", "",
		"predefined history window: "+strings.Join(windowNames(), ", "))
	fs.StringVar(&flags.Interval, "interval", "", "history interval: "+
		strings.Join(yahoo.Intervals, ", "))
	fs.BoolVar(&flags.Raw, "raw", false, "print the raw response")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")
	fs.BoolVar(&flags.Stats, "stats", false, "print history statistics")
	fs.StringVar(&flags.Conf, "conf", "", "configuration file in TOML format")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	kinds := 0
	for _, s := range []string{flags.Quote, flags.History, flags.Similar} {
		if s != "" {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, errors.Reason("expected exactly one of -quote, -history or -similar")
	}
	if flags.Window != "" && (flags.From != "" || flags.To != "") {
		return nil, errors.Reason("-window is exclusive with -from and -to")
	}
	if _, ok := yahoo.Windows[flags.Window]; flags.Window != "" && !ok {
		return nil, errors.Reason("unknown -window %s", flags.Window)
	}
	if flags.Interval != "" {
		if err := yahoo.CheckInterval(flags.Interval); err != nil {
			return nil, errors.Annotate(err, "invalid -interval")
		}
	}
	if flags.Stats && (flags.History == "" || flags.Raw) {
		return nil, errors.Reason("-stats requires -history and no -raw")
	}
	return &flags, nil
}

// window of the history request; defaults to the last 30 days.
func window(flags *Flags, now time.Time) (yahoo.Window, error) {
	if flags.Window != "" {
		return yahoo.Windows[flags.Window](now), nil
	}
	if flags.From == "" && flags.To == "" {
		return yahoo.Last30Days(now), nil
	}
	w := yahoo.Window{End: now}
	var err error
	if flags.From == "" {
		return w, errors.Reason("-to requires -from")
	}
	if w.Start, err = time.Parse(dateFormat, flags.From); err != nil {
		return w, errors.Annotate(err, "invalid -from")
	}
	if flags.To != "" {
		if w.End, err = time.Parse(dateFormat, flags.To); err != nil {
			return w, errors.Annotate(err, "invalid -to")
		}
	}
	if err := w.Check(); err != nil {
		return w, errors.Annotate(err, "invalid -from / -to")
	}
	return w, nil
}

// loadConfig reads the config file, if any, and applies the flag overrides.
func loadConfig(flags *Flags) (*yahoo.Config, error) {
	config := yahoo.DefaultConfig()
	if flags.Conf != "" {
		config = &yahoo.Config{}
		if err := message.FromTOMLFile(config, flags.Conf); err != nil {
			return nil, errors.Annotate(err, "failed to load config")
		}
	}
	if flags.Interval != "" {
		config.Interval = flags.Interval
	}
	if flags.Raw {
		config.QuoteOutput = string(finance.FormatRaw)
		config.HistoryOutput = string(finance.FormatRaw)
		config.SimilarOutput = string(finance.FormatRaw)
	}
	return config, nil
}

// toRows converts items to table rows.
func toRows[T any](items []T, row func(T) table.Row) []table.Row {
	return iterator.Reduce[T, []table.Row](iterator.FromSlice(items), []table.Row{},
		func(x T, rows []table.Row) []table.Row {
			return append(rows, row(x))
		})
}

func quoteTable(ctx context.Context, c *yahoo.Client, flags *Flags) (*table.Table, string, error) {
	var fields []string
	if flags.Fields != "" {
		fields = strings.Split(flags.Fields, ",")
	}
	q, err := c.Quote(ctx, flags.Quote, fields...)
	if err != nil || q.IsRaw() {
		return nil, q.Raw, err
	}
	tbl := table.NewTable(table.FieldRowHeader()...)
	tbl.AddRow(table.QuoteRows(q.Value)...)
	return tbl, "", nil
}

func historyTable(ctx context.Context, c *yahoo.Client, flags *Flags, now time.Time) (*table.Table, string, error) {
	w, err := window(flags, now)
	if err != nil {
		return nil, "", err
	}
	h, err := c.History(ctx, flags.History, w)
	if err != nil || h.IsRaw() {
		return nil, h.Raw, err
	}
	if flags.Stats {
		tbl := table.NewTable(table.FieldRowHeader()...)
		tbl.AddRow(table.SummaryRows(finance.Summarize(h.Value))...)
		return tbl, "", nil
	}
	tbl := table.NewTable(table.HistoricRowHeader()...)
	tbl.AddRow(toRows(h.Value, func(p finance.HistoricPoint) table.Row {
		return table.HistoricRow(p)
	})...)
	return tbl, "", nil
}

func similarTable(ctx context.Context, c *yahoo.Client, flags *Flags) (*table.Table, string, error) {
	s, err := c.Similar(ctx, flags.Similar)
	if err != nil || s.IsRaw() {
		return nil, s.Raw, err
	}
	tbl := table.NewTable(table.SymbolRowHeader()...)
	tbl.AddRow(toRows(s.Value, func(sym string) table.Row {
		return table.SymbolRow(sym)
	})...)
	return tbl, "", nil
}

// printData fetches the requested data with the client from the context and
// prints it to w.
func printData(ctx context.Context, flags *Flags, w io.Writer, now time.Time) error {
	c := yahoo.GetClient(ctx)
	if c == nil {
		return errors.Reason("no client in context")
	}
	var tbl *table.Table
	var raw string
	var err error
	params := table.Params{CSV: flags.CSV}
	switch {
	case flags.Quote != "":
		if tbl, raw, err = quoteTable(ctx, c, flags); err != nil {
			return errors.Annotate(err, "failed to get quote for %s", flags.Quote)
		}
		params.Left = []int{0}
	case flags.History != "":
		if tbl, raw, err = historyTable(ctx, c, flags, now); err != nil {
			return errors.Annotate(err, "failed to get history for %s", flags.History)
		}
	case flags.Similar != "":
		if tbl, raw, err = similarTable(ctx, c, flags); err != nil {
			return errors.Annotate(err, "failed to get similar securities for %s",
				flags.Similar)
		}
		params.Left = []int{0}
	}
	if tbl == nil {
		if _, err := fmt.Fprintln(w, raw); err != nil {
			return errors.Annotate(err, "failed to print raw response")
		}
		return nil
	}
	if err := tbl.Write(w, params); err != nil {
		return errors.Annotate(err, "failed to print table")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	config, err := loadConfig(flags)
	if err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
	httpClient, err := yahoo.NewHTTPClient()
	if err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
	ctx = fetch.UseClient(ctx, httpClient)
	ctx = yahoo.UseClient(ctx, yahoo.NewClient(config, nil))

	if err := printData(ctx, flags, os.Stdout, time.Now()); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
