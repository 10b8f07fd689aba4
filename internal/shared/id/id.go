// Package id generates identifiers for the drivers this module creates.
//
// Creation IDs are prefixed ULIDs ("drv_01J9..."): they sort by creation
// time, and the prefix makes them easy to pick out of logs next to the
// session IDs reported by the drivers themselves.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// CreationID identifies one driver creation.
type CreationID string

// CreationPrefix is the prefix of every CreationID.
const CreationPrefix = "drv"

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator
func NewGenerator() *Generator {
	return &Generator{
		entropy: rand.Reader,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewCreationID generates a new creation ID
func NewCreationID() CreationID {
	return CreationID(Default().GenerateWithPrefix(CreationPrefix))
}

func (id CreationID) String() string { return string(id) }

func (id CreationID) parse() (ulid.ULID, error) {
	raw, ok := strings.CutPrefix(string(id), CreationPrefix+"_")
	if !ok {
		return ulid.ULID{}, fmt.Errorf("creation id %q has no %q prefix", id, CreationPrefix)
	}
	return ulid.Parse(raw)
}

// Time returns when the ID was generated, to millisecond precision.
func (id CreationID) Time() (time.Time, error) {
	parsed, err := id.parse()
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
