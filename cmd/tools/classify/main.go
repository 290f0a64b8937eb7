// Command classify prints the intent of each message read from the arguments
// or, without arguments, from stdin one per line. It makes no network calls.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Vodeneev/betbrief/internal/pkg/intent"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type row struct {
	Message  string `json:"message"`
	Kind     string `json:"kind"`
	Home     string `json:"home,omitempty"`
	Away     string `json:"away,omitempty"`
	LeagueID int    `json:"league_id,omitempty"`
	Keyword  string `json:"league_keyword,omitempty"`
	Day      string `json:"day,omitempty"`
	Date     string `json:"date,omitempty"`
}

func main() {
	var tz string
	var asJSON bool
	var at string

	flag.StringVar(&tz, "tz", "UTC", "IANA timezone used to resolve today/tomorrow")
	flag.BoolVar(&asJSON, "json", false, "Print one JSON object per message")
	flag.StringVar(&at, "now", "", "Reference time in RFC3339 (default: current time)")
	flag.Parse()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", tz, err)
	}
	now := time.Now()
	if at != "" {
		if now, err = time.Parse(time.RFC3339, at); err != nil {
			log.Fatalf("Invalid -now: %v", err)
		}
	}

	c := intent.NewClassifier(loc)
	emit := func(msg string) {
		r := toRow(msg, c.Classify(msg, now))
		if asJSON {
			out, err := json.Marshal(r)
			if err != nil {
				log.Fatalf("marshal: %v", err)
			}
			fmt.Println(string(out))
			return
		}
		fmt.Println(format(r))
	}

	if flag.NArg() > 0 {
		for _, msg := range flag.Args() {
			emit(msg)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if msg := strings.TrimSpace(scanner.Text()); msg != "" {
			emit(msg)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
}

func toRow(msg string, in intent.Intent) row {
	return row{
		Message:  msg,
		Kind:     string(in.Kind),
		Home:     in.Home,
		Away:     in.Away,
		LeagueID: in.LeagueID,
		Keyword:  in.LeagueKeyword,
		Day:      string(in.Day),
		Date:     in.Date,
	}
}

func format(r row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %q", r.Kind, r.Message)
	if r.Home != "" {
		fmt.Fprintf(&b, " home=%q", r.Home)
	}
	if r.Away != "" {
		fmt.Fprintf(&b, " away=%q", r.Away)
	}
	if r.LeagueID != 0 {
		fmt.Fprintf(&b, " league=%d(%s)", r.LeagueID, r.Keyword)
	}
	if r.Day != "" {
		fmt.Fprintf(&b, " day=%s date=%s", r.Day, r.Date)
	}
	return b.String()
}
