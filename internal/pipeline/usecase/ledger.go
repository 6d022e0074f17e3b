package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"transcript-tasks/internal/extraction"
)

const defaultLedgerSize = 4096

// taskNamespace seeds the deterministic task fingerprints.
var taskNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("transcript-tasks/task"))

// ledger remembers which tracker key a task fingerprint was filed under.
// A nil ledger remembers nothing.
type ledger struct {
	filed *expirable.LRU[string, string]
}

func newLedger(size int, ttl time.Duration) *ledger {
	if ttl <= 0 {
		return nil
	}
	if size <= 0 {
		size = defaultLedgerSize
	}
	return &ledger{filed: expirable.NewLRU[string, string](size, nil, ttl)}
}

// fingerprint is a UUIDv5 over summary, description and due date.
func fingerprint(t extraction.Task) string {
	name := t.Summary + "\x00" + t.Description + "\x00" + t.DueDate
	return uuid.NewSHA1(taskNamespace, []byte(name)).String()
}

func (lg *ledger) lookup(fp string) (string, bool) {
	if lg == nil {
		return "", false
	}
	return lg.filed.Get(fp)
}

func (lg *ledger) remember(fp, key string) {
	if lg == nil {
		return
	}
	lg.filed.Add(fp, key)
}
