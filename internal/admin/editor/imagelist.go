package editor

import "errors"

// MaxImageSlots bounds the gallery editor. The trailing empty slot is the
// "type here to add the next image" affordance; at most one exists.
const MaxImageSlots = 5

var (
	// ErrSlotIndexOutOfRange is returned by SetAt for an index outside the list.
	ErrSlotIndexOutOfRange = errors.New("editor: image slot index out of range")
	// ErrImageListFull is returned by AddSlot when the list is at capacity.
	ErrImageListFull = errors.New("editor: image list is full")
	// ErrImageListEmpty is returned by RemoveSlot on an empty list.
	ErrImageListEmpty = errors.New("editor: image list is empty")
)

// ImageList is the bounded list of gallery URLs edited inside the product
// modal. Invariants: len <= MaxImageSlots, at most one trailing empty entry.
type ImageList []string

// SetAt replaces the entry at index, then applies the grow and shrink rules
// against the post-replace list, in that order. Only one of the two can fire
// for a given call, but both are checked explicitly.
func (l *ImageList) SetAt(index int, value string) error {
	s := *l
	if index < 0 || index >= len(s) {
		return ErrSlotIndexOutOfRange
	}
	s[index] = value

	// Grow: filling the last slot reveals the next one, up to the cap.
	if value != "" && index == len(s)-1 && len(s) < MaxImageSlots {
		s = append(s, "")
	}

	// Shrink: clearing a slot retires the trailing empty one.
	if value == "" && len(s) > 1 && s[len(s)-1] == "" {
		s = s[:len(s)-1]
	}

	*l = s
	return nil
}

// AddSlot appends an empty entry. Unlike the button-visibility-only guard in
// the original UI, the cap is enforced here.
func (l *ImageList) AddSlot() error {
	if len(*l) >= MaxImageSlots {
		return ErrImageListFull
	}
	*l = append(*l, "")
	return nil
}

// RemoveSlot drops the last entry.
func (l *ImageList) RemoveSlot() error {
	if len(*l) == 0 {
		return ErrImageListEmpty
	}
	*l = (*l)[:len(*l)-1]
	return nil
}

// Filtered returns the list without empty entries, the shape submitted to
// the backend.
func (l ImageList) Filtered() []string {
	out := make([]string, 0, len(l))
	for _, url := range l {
		if url != "" {
			out = append(out, url)
		}
	}
	return out
}

// CanAddSlot reports whether the add-image control should be offered:
// below the cap and the last slot, if any, already holds a value.
func (l ImageList) CanAddSlot() bool {
	if len(l) >= MaxImageSlots {
		return false
	}
	if len(l) == 0 {
		return true
	}
	return l[len(l)-1] != ""
}

// CanRemoveSlot reports whether the remove-image control should be offered.
func (l ImageList) CanRemoveSlot() bool {
	return len(l) >= 1
}

// Clone returns an independent copy.
func (l ImageList) Clone() ImageList {
	if l == nil {
		return nil
	}
	return append(ImageList(nil), l...)
}
