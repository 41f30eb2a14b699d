package usedstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/adforge/internal/clients"
)

const (
	ElementHeadlines    = "headlines"
	ElementDescriptions = "descriptions"

	// Used copy stops being relevant once a campaign rotates creatives,
	// so entries expire after 30 days.
	usedTTLSeconds = 2592000
)

// Store remembers which headlines and descriptions a campaign has already
// shipped, so new generations can exclude them.
type Store struct {
	vc *clients.ValkeyClient
}

func New(vc *clients.ValkeyClient) *Store {
	return &Store{vc: vc}
}

func usedKey(campaignID, element string) string {
	return fmt.Sprintf("used:%s:%s", campaignID, element)
}

// MarkUsed records accepted copy under the campaign's used set and refreshes
// the TTL.
func (s *Store) MarkUsed(ctx context.Context, campaignID, element string, values []string) error {
	if len(values) == 0 {
		return nil
	}

	key := usedKey(campaignID, element)
	members := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			members = append(members, v)
		}
	}
	if len(members) == 0 {
		return nil
	}

	completed := []valkey.Completed{
		s.vc.Client.B().Sadd().Key(key).Member(members...).Build(),
		s.vc.Client.B().Expire().Key(key).Seconds(usedTTLSeconds).Build(),
	}

	responses := s.vc.DoMultiWithRetry(ctx, completed, 3)
	for _, res := range responses {
		if err := res.Error(); err != nil {
			return err
		}
	}

	slog.Info("[UsedStore] Marked copy as used",
		slog.String("campaign_id", campaignID),
		slog.String("element", element),
		slog.Int("count", len(members)))
	return nil
}

// UsedElements returns the campaign's previously shipped copy for one element
// kind. A read failure degrades to an empty exclude list rather than blocking
// generation.
func (s *Store) UsedElements(ctx context.Context, campaignID, element string) []string {
	key := usedKey(campaignID, element)
	res := s.vc.DoWithRetry(ctx, s.vc.Client.B().Smembers().Key(key).Build(), 3)
	if err := res.Error(); err != nil {
		slog.Warn("[UsedStore] Failed to load used copy, continuing without exclusions",
			slog.String("campaign_id", campaignID),
			slog.String("element", element),
			slog.String("error", err.Error()))
		return nil
	}

	members, err := res.AsStrSlice()
	if err != nil {
		return nil
	}
	return members
}

// IsUsed reports whether a single piece of copy was already shipped.
func (s *Store) IsUsed(ctx context.Context, campaignID, element, value string) bool {
	key := usedKey(campaignID, element)
	res := s.vc.DoWithRetry(ctx, s.vc.Client.B().Sismember().Key(key).Member(value).Build(), 3)

	ok, err := res.AsBool()
	if err != nil {
		return false
	}
	return ok
}
