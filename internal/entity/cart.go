package entity

// CartLine is one purchasable line in a session cart. Name, price and
// image are snapshots taken when the line was first added.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	ImageURL  string  `json:"image,omitempty"`
}

// LineKey identifies a cart line. Two lines are the same line iff
// product, size and color all match; an unselected size or color is the
// empty string and never matches a concrete value.
type LineKey struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Key returns the identity key of the line.
func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// AddLine merges newLine into lines. If a line with the same identity
// key exists, its quantity grows by newLine.Quantity and every other
// field keeps its first-written value; otherwise newLine is appended.
// The input slice is not modified. Callers must reject non-positive
// quantities before calling.
func AddLine(lines []CartLine, newLine CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)

	key := newLine.Key()
	for i := range out {
		if out[i].Key() == key {
			out[i].Quantity += newLine.Quantity
			return out
		}
	}
	return append(out, newLine)
}

// AdjustQuantity changes the quantity of the line identified by key by
// delta, clamped at zero. A line whose quantity reaches zero is removed.
// Returns the collection unchanged if no line matches.
func AdjustQuantity(lines []CartLine, key LineKey, delta int) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Key() == key {
			q := l.Quantity + delta
			if q < 0 {
				q = 0
			}
			if q == 0 {
				continue
			}
			l.Quantity = q
		}
		out = append(out, l)
	}
	return out
}

// RemoveLine filters out every line matching key (normally at most
// one). Removing an absent key is a no-op.
func RemoveLine(lines []CartLine, key LineKey) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Key() == key {
			continue
		}
		out = append(out, l)
	}
	return out
}

// CartTotal sums price times quantity over all lines. It is computed
// fresh on every call and never cached.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ToggleWishlist flips membership of productID in ids: present removes
// the first occurrence, absent appends. Returns the new membership list
// and whether productID is now a member.
func ToggleWishlist(ids []string, productID string) ([]string, bool) {
	for i, id := range ids {
		if id == productID {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			out = append(out, ids[i+1:]...)
			return out, false
		}
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return append(out, productID), true
}
