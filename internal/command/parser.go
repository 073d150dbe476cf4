package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"intrack/internal/model"
)

/*

Parser for the command line at the bottom of the window.

	add c/COMPANY r/ROLE [s/STATUS] [l/LOCATION] [d/YYYY-MM-DD] [m/REMARK]
	edit INDEX [c/COMPANY] [r/ROLE] [s/STATUS] [l/LOCATION] [d/YYYY-MM-DD] [m/REMARK]
	delete INDEX
	filter PREFIX VALUE        e.g. filter s/Offered
	sort PREFIX [asc|desc]     e.g. sort d/ desc
	list
	clear
	exit

INDEX is the 1-based position in the list as currently shown.

*/

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFormat  = errors.New("invalid command format")
)

var fieldPrefixes = []string{
	model.PrefixCompany,
	model.PrefixRole,
	model.PrefixStatus,
	model.PrefixLocation,
	model.PrefixDeadline,
	model.PrefixRemark,
}

func Parse(input string) (Command, error) {
	input = strings.TrimSpace(input)
	word, args := input, ""
	if at := strings.IndexFunc(input, unicode.IsSpace); at >= 0 {
		word, args = input[:at], strings.TrimSpace(input[at:])
	}
	switch strings.ToLower(word) {
	case "add":
		return parseAdd(args)
	case "edit":
		return parseEdit(args)
	case "delete":
		idx, err := parseIndex(args)
		if err != nil {
			return nil, err
		}
		return &DeleteCommand{Index: idx}, nil
	case "filter":
		return parseFilter(args)
	case "sort":
		return parseSort(args)
	case "list":
		return &ListCommand{}, nil
	case "clear":
		return &ClearCommand{}, nil
	case "exit", "quit":
		return &ExitCommand{}, nil
	case "":
		return nil, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, word)
}

// tokenize splits args into the text before the first prefix and the value after each prefix.
// A prefix only counts at the start of args or after whitespace.
func tokenize(args string) (string, map[string]string, error) {
	values := make(map[string]string)
	type mark struct {
		prefix string
		at     int
	}
	var marks []mark
	for i := 0; i < len(args); i++ {
		if r, _ := utf8.DecodeLastRuneInString(args[:i]); i > 0 && !unicode.IsSpace(r) {
			continue
		}
		for _, p := range fieldPrefixes {
			if strings.HasPrefix(args[i:], p) {
				marks = append(marks, mark{p, i})
				break
			}
		}
	}
	if len(marks) == 0 {
		return strings.TrimSpace(args), values, nil
	}
	preamble := strings.TrimSpace(args[:marks[0].at])
	for n, m := range marks {
		end := len(args)
		if n+1 < len(marks) {
			end = marks[n+1].at
		}
		if _, dup := values[m.prefix]; dup {
			return "", nil, fmt.Errorf("%w: %s given more than once", ErrInvalidFormat, m.prefix)
		}
		values[m.prefix] = strings.TrimSpace(args[m.at+len(m.prefix) : end])
	}
	return preamble, values, nil
}

func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("%w: index must be a positive number, got %q", ErrInvalidFormat, s)
	}
	return idx, nil
}

func parseDeadline(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: deadline must look like %s", ErrInvalidFormat, model.DateLayout)
	}
	return d, nil
}

func parseAdd(args string) (Command, error) {
	preamble, values, err := tokenize(args)
	if err != nil {
		return nil, err
	}
	if preamble != "" {
		return nil, fmt.Errorf("%w: unexpected %q before fields", ErrInvalidFormat, preamble)
	}
	var status model.Status
	if s, ok := values[model.PrefixStatus]; ok {
		if status, err = model.ParseStatus(s); err != nil {
			return nil, err
		}
	}
	deadline, err := parseDeadline(values[model.PrefixDeadline])
	if err != nil {
		return nil, err
	}
	i, err := model.NewInternship(values[model.PrefixCompany], values[model.PrefixRole], status,
		values[model.PrefixLocation], deadline, values[model.PrefixRemark])
	if err != nil {
		return nil, err
	}
	return &AddCommand{Internship: i}, nil
}

func parseEdit(args string) (Command, error) {
	preamble, values, err := tokenize(args)
	if err != nil {
		return nil, err
	}
	idx, err := parseIndex(preamble)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: at least one field to edit must be given", ErrInvalidFormat)
	}
	e := EditDescriptor{}
	for p, v := range values {
		v := v // per-iteration copy; go.mod targets go 1.21 loop semantics
		switch p {
		case model.PrefixCompany:
			e.Company = &v
		case model.PrefixRole:
			e.Role = &v
		case model.PrefixLocation:
			e.Location = &v
		case model.PrefixRemark:
			e.Remark = &v
		case model.PrefixStatus:
			s, err := model.ParseStatus(v)
			if err != nil {
				return nil, err
			}
			e.Status = &s
		case model.PrefixDeadline:
			d, err := parseDeadline(v)
			if err != nil {
				return nil, err
			}
			e.Deadline = &d
		}
	}
	return &EditCommand{Index: idx, Edit: e}, nil
}

func parseFilter(args string) (Command, error) {
	preamble, values, err := tokenize(args)
	if err != nil {
		return nil, err
	}
	if preamble != "" || len(values) != 1 {
		return nil, fmt.Errorf("%w: usage: filter PREFIX VALUE", ErrInvalidFormat)
	}
	for p, v := range values {
		pred, err := model.PredicateFor(p, v)
		if err != nil {
			return nil, err
		}
		return &FilterCommand{Parameter: p, Value: v, Predicate: pred}, nil
	}
	return nil, nil
}

func parseSort(args string) (Command, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("%w: usage: sort PREFIX [asc|desc]", ErrInvalidFormat)
	}
	order := model.Ascending
	if len(fields) == 2 {
		o, err := model.ParseSortOrder(fields[1])
		if err != nil {
			return nil, err
		}
		order = o
	}
	cmp, err := model.ComparatorFor(fields[0], order)
	if err != nil {
		return nil, err
	}
	return &SortCommand{Prefix: fields[0], Order: order, Comparator: cmp}, nil
}
