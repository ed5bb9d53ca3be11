package fragility

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// EvalScore is an engine evaluation attached to a ply, either in pawns from
// White's perspective or as a forced-mate distance.
type EvalScore struct {
	Pawns *float64 `json:"pawns,omitempty" bson:"pawns,omitempty"`
	Mate  *int     `json:"mate,omitempty" bson:"mate,omitempty"`
}

// Score renders the evaluation the way annotated PGNs do: "+0.56", "-1.20"
// or "#3", "#-4".
func (e *EvalScore) Score() string {
	if e.Mate != nil {
		return "#" + strconv.Itoa(*e.Mate)
	}
	if e.Pawns != nil {
		return fmt.Sprintf("%+.2f", *e.Pawns)
	}
	return "?"
}

var evalRegexp = regexp.MustCompile(`\[%eval ([+-]?[0-9.]+|#-?[0-9]+)\]`)

// ExtractEval pulls the [%eval ...] annotation out of a PGN move comment.
// Returns nil when the comment carries no evaluation.
func ExtractEval(comment string) *EvalScore {
	m := evalRegexp.FindStringSubmatch(comment)
	if m == nil {
		return nil
	}
	if strings.HasPrefix(m[1], "#") {
		mate, err := strconv.Atoi(m[1][1:])
		if err != nil {
			return nil
		}
		return &EvalScore{Mate: &mate}
	}
	pawns, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &EvalScore{Pawns: &pawns}
}
