package imaging

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewObjectName returns "<tag>-<unix millis>-<8 hex>.jpg". The random
// suffix keeps names unique without checking what the bucket already holds.
func NewObjectName(tag string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s.jpg", tag, time.Now().UnixMilli(), suffix)
}
