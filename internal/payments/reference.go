package payments

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const referencePrefix = "TYN"

var ReferencePattern = regexp.MustCompile(`^TYN-\d+-[0-9A-Z]{6}$`)

// NewReference builds an InternalReference: TYN-<epoch millis>-<6 base36 chars>.
// Uniqueness is probabilistic; nothing checks for collisions.
func NewReference(now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", referencePrefix, now.UnixMilli(), randomTag())
}

// randomTag returns 6 uppercase base36 characters drawn from a v4 uuid.
func randomTag() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8])
	tag := strings.ToUpper(strconv.FormatUint(n, 36))
	if len(tag) < 6 {
		tag = strings.Repeat("0", 6-len(tag)) + tag
	}
	return tag[len(tag)-6:]
}
