package constraint

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Set accepts exactly the listed keywords.
type Set struct {
	name    string
	members []string
}

func NewSet(name string, members ...string) *Set {
	return &Set{name: name, members: slices.Clone(members)}
}

func (s *Set) Kind() Kind        { return Keyword }
func (s *Set) Name() string      { return s.name }
func (s *Set) Members() []string { return slices.Clone(s.members) }

func (s *Set) Check(raw string) error {
	if slices.Contains(s.members, raw) {
		return nil
	}
	return &ViolationError{Kind: Keyword, Type: s.name, Raw: raw, Rule: "one of " + quoteAll(s.members)}
}

func quoteAll(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = strconv.Quote(s)
	}
	return strings.Join(q, ",")
}

// List is a comma separated list whose items each match a pattern. A single
// space may follow each comma. When Ascending is set the items are read as
// integers and must strictly increase.
type List struct {
	name      string
	item      *Pattern
	ascending bool
}

func NewList(name string, item *Pattern, ascending bool) *List {
	return &List{name: name, item: item, ascending: ascending}
}

func (l *List) Kind() Kind   { return CommaList }
func (l *List) Name() string { return l.name }

func (l *List) Check(raw string) error {
	_, err := l.Items(raw)
	return err
}

// Items splits raw into its items after checking it.
func (l *List) Items(raw string) ([]string, error) {
	if raw == "" {
		return nil, &ViolationError{Kind: CommaList, Type: l.name, Raw: raw, Rule: "non-empty list"}
	}
	items := strings.Split(raw, ",")
	var prev int64
	for i, item := range items {
		if i > 0 {
			item = strings.TrimPrefix(item, " ")
			items[i] = item
		}
		if l.item.Check(item) != nil {
			return nil, &ViolationError{
				Kind: CommaList,
				Type: l.name,
				Raw:  raw,
				Rule: fmt.Sprintf("item %d pattern %s", i+1, l.item.expr),
			}
		}
		if !l.ascending {
			continue
		}
		n, err := strconv.ParseInt(item, 10, 64)
		if err != nil || (i > 0 && n <= prev) {
			return nil, &ViolationError{Kind: CommaList, Type: l.name, Raw: raw, Rule: "strictly ascending items"}
		}
		prev = n
	}
	return items, nil
}

var dateLexical = regexp.MustCompile(`^(-?(?:[1-9][0-9]{3,}|0[0-9]{3}))-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

// Date accepts calendar dates written yyyy-mm-dd without a time zone. The
// day must exist in the given month of the proleptic Gregorian calendar.
type Date struct {
	TypeName string
}

func (d Date) Kind() Kind   { return DateString }
func (d Date) Name() string { return d.TypeName }

func (d Date) Check(raw string) error {
	_, err := d.Time(raw)
	return err
}

// Time returns the date as midnight UTC.
func (d Date) Time(raw string) (time.Time, error) {
	m := dateLexical.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, &ViolationError{Kind: DateString, Type: d.TypeName, Raw: raw, Rule: "yyyy-mm-dd"}
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, &ViolationError{Kind: DateString, Type: d.TypeName, Raw: raw, Rule: "year range"}
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if day > daysIn(year, time.Month(month)) {
		return time.Time{}, &ViolationError{Kind: DateString, Type: d.TypeName, Raw: raw, Rule: "day of month"}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
