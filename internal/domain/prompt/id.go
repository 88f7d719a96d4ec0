package prompt

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ID is the canonical string form of a record identifier. The local backend
// synthesizes string ids; the remote backend assigns integers. Both decode
// into the same canonical form so membership tests never depend on the
// original wire type.
type ID string

func (id ID) String() string { return string(id) }

// NormalizeID converts any id value that may cross the boundary (string,
// json.Number, int) into the canonical form.
func NormalizeID(v any) ID {
	switch t := v.(type) {
	case ID:
		return t
	case string:
		return ID(t)
	case json.Number:
		return ID(t.String())
	case int:
		return ID(strconv.Itoa(t))
	case int64:
		return ID(strconv.FormatInt(t, 10))
	case float64:
		return ID(strconv.FormatInt(int64(t), 10))
	default:
		return ID(fmt.Sprintf("%v", t))
	}
}

// NewLocalID synthesizes a local-backend id: epoch milliseconds plus a random
// four-digit suffix.
func NewLocalID(now time.Time) ID {
	return ID(fmt.Sprintf("%d-%d", now.UnixMilli(), rand.Intn(10000)))
}

// UnmarshalJSON accepts both JSON numbers (remote backend) and strings
// (local backend).
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
