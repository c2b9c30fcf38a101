// Package preview persists client-submitted preview images, independently of
// the order workbooks.
package preview

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Store struct {
	dir       string
	urlPrefix string
}

func New(dir, urlPrefix string) *Store {
	return &Store{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// Filename is the on-disk naming convention. pos is 1-based within the order;
// resubmitting the same order overwrites the same names on purpose.
func Filename(orderID string, pos int) string {
	return fmt.Sprintf("order-preview-%s-%d.png", orderID, pos)
}

// Save decodes a data-URL payload ("<metadata>;base64,<data>", or bare
// base64) and writes it under the store directory, returning the relative
// URL. An empty payload is a no-op, not a failure. Host-prefixing the URL is
// the caller's job.
func (s *Store) Save(orderID string, pos int, payload string) (string, error) {
	if payload == "" {
		return "", nil
	}
	data := payload
	if i := strings.LastIndex(payload, ";base64,"); i >= 0 {
		data = payload[i+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		// tolerate unpadded payloads
		raw, err = base64.RawStdEncoding.DecodeString(data)
		if err != nil {
			return "", fmt.Errorf("decode preview %s-%d: %w", orderID, pos, err)
		}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create img dir: %w", err)
	}
	name := Filename(orderID, pos)
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("write preview %s: %w", name, err)
	}
	return s.urlPrefix + "/" + name, nil
}

// Lookup backfills the image URL for rows written before linkImg was always
// recorded. Best effort: "" when nothing matches. Lowest position suffix wins
// so the pick is deterministic when several candidates exist.
func (s *Store) Lookup(orderID string) string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return ""
	}
	prefix := fmt.Sprintf("order-preview-%s-", orderID)
	best, bestPos := "", -1
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		pos, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".png"))
		if err != nil {
			continue
		}
		if bestPos < 0 || pos < bestPos {
			best, bestPos = name, pos
		}
	}
	if best == "" {
		return ""
	}
	return s.urlPrefix + "/" + best
}
