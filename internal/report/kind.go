package report

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects a report variant
type Kind string

const (
	KindStudentPerformance Kind = "student-performance"
)

// ErrUnknownKind is returned for a report kind with no variant
var ErrUnknownKind = errors.New("unknown report kind")

// Kinds lists every supported report kind
func Kinds() []Kind {
	return []Kind{KindStudentPerformance}
}

// KindNames lists the supported kinds as strings, for flag help
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ParseKind validates a report kind given on the command line
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q (choose from: %s)", ErrUnknownKind, s, strings.Join(KindNames(), ", "))
}

func (k Kind) String() string {
	return string(k)
}
