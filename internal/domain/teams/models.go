package teams

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// FieldTeamID is the upstream key carrying a record's identifier.
const FieldTeamID = "team_id"

// TeamID identifies a team upstream. It is kept as canonical decimal text so
// identifiers beyond 2^53 (or 2^64) never lose precision.
type TeamID string

// ParseTeamID validates a non-negative decimal identifier and canonicalizes it.
func ParseTeamID(raw string) (TeamID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("team id is empty")
	}
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("team id %q is not a non-negative integer", raw)
	}
	return TeamID(n.String()), nil
}

// String returns the decimal form of the identifier.
func (id TeamID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (id *TeamID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return fmt.Errorf("team id is null")
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	parsed, err := ParseTeamID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON writes the identifier as a bare JSON number.
func (id TeamID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

// Record is one team's metadata exactly as the upstream API returned it.
// Normalization rewrites it in place.
type Record map[string]any

// ID returns the record's team_id as decimal text, or "" when absent or not numeric.
func (r Record) ID() string {
	return DecimalString(r[FieldTeamID])
}

// MatchesID reports whether the record describes the requested team.
func (r Record) MatchesID(id TeamID) bool {
	got := r.ID()
	if got == "" {
		return false
	}
	parsed, err := ParseTeamID(got)
	if err != nil {
		return false
	}
	return parsed == id
}

// DecimalString renders integral values as decimal text. It returns "" for
// anything that is not a number or a string of digits.
func DecimalString(v any) string {
	switch n := v.(type) {
	case json.Number:
		return n.String()
	case string:
		if _, err := ParseTeamID(n); err == nil {
			return strings.TrimSpace(n)
		}
		return ""
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case *big.Int:
		if n == nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}

// ResultSet is the run's sole output artifact.
type ResultSet struct {
	Results []Record `json:"results"`
}

// NewResultSet wraps records, substituting an empty slice for nil so the
// output always carries a results array.
func NewResultSet(records []Record) ResultSet {
	if records == nil {
		records = []Record{}
	}
	return ResultSet{Results: records}
}
