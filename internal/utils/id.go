package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewSubmissionID builds record identifiers like "CE-K3J9QHX7A": the prefix,
// a dash, the last six characters of the current unix-millisecond clock in
// upper-case base 36, then three random base-36 characters.  Short and
// roughly sortable; collision-resistant at this submission volume but not
// cryptographically unique.
func NewSubmissionID(prefix string) string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('-')
	sb.WriteString(ts)
	for i := 0; i < 3; i++ {
		sb.WriteByte(base36Upper[rand.Intn(len(base36Upper))])
	}
	return sb.String()
}
