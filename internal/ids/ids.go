package ids

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// TempPrefix marks client-side ids for tasks not yet confirmed by the
// remote store
const TempPrefix = "tmp_"

// NewTempID returns a short random token used as the id of an optimistic
// task until the server echoes back the real row
func NewTempID() string {
	var b [10]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%s%d", TempPrefix, time.Now().UnixNano())
	}
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = alphabet[int(v)%len(alphabet)]
	}
	return TempPrefix + string(out)
}

// IsTemp reports whether id has the temporary-token shape
func IsTemp(id string) bool {
	return strings.HasPrefix(id, TempPrefix)
}
