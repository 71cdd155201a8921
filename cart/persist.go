package cart

import (
	"context"
	"log"

	"saaj/rdx"
)

// Namespace under which the serialized cart lives, one key per cart id.
const KeyPrefix = "saaj-cart:"

// Load fetches the persisted cart for cartID. A missing or corrupt entry
// yields an empty cart.
func Load(ctx context.Context, cartID string) *Store {
	raw, err := rdx.RdxGet(KeyPrefix + cartID)
	if err != nil {
		log.Println("cart: redis load error:", err)
		return NewStore()
	}
	return Decode([]byte(raw))
}

// Save serializes the full line collection after every mutation.
func Save(ctx context.Context, cartID string, s *Store) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	return rdx.RdxSet(KeyPrefix+cartID, string(data))
}

// Drop removes the persisted cart entirely (post-checkout).
func Drop(ctx context.Context, cartID string) error {
	_, err := rdx.RdxDel(KeyPrefix + cartID)
	return err
}
