package heap

// Mark is an object's header word: identity hash and age bits packed above a
// 2-bit tag. The tag distinguishes an ordinary unlocked header from the two
// transient states a moving collector puts it through.
type Mark uint64

const (
	markTagBits = 2
	markTagMask = Mark(1<<markTagBits) - 1

	// TagUnlocked is the tag of every ordinary header.
	TagUnlocked Mark = 0b01
	// TagPreserved marks a header whose real word has been saved aside and
	// will be written back at restore time.
	TagPreserved Mark = 0b10
	// TagForwarded marks a header overlaid with a forwarding reference.
	TagForwarded Mark = 0b11

	markAgeBits  = 4
	markAgeShift = markTagBits
	markAgeMask  = Mark(1<<markAgeBits) - 1

	markHashShift = markAgeShift + markAgeBits
)

// NewMark packs an identity hash and an age into an unlocked header word.
func NewMark(hash uint64, age uint8) Mark {
	return Mark(hash)<<markHashShift |
		(Mark(age)&markAgeMask)<<markAgeShift |
		TagUnlocked
}

// Prototype is the header word every freshly allocated object starts with.
func Prototype() Mark {
	return TagUnlocked
}

//go:inline
func (m Mark) Tag() Mark {
	return m & markTagMask
}

//go:inline
func (m Mark) Hash() uint64 {
	return uint64(m >> markHashShift)
}

//go:inline
func (m Mark) Age() uint8 {
	return uint8((m >> markAgeShift) & markAgeMask)
}

//go:inline
func (m Mark) IsForwarded() bool {
	return m.Tag() == TagForwarded
}

// MustBePreserved reports whether the word carries information that cannot be
// reconstructed from the prototype and so has to be saved before the header
// is overwritten with a forwarding reference.
//
//go:inline
func (m Mark) MustBePreserved() bool {
	return m != Prototype()
}

// Object is a heap object header plus a side slot for the forwardee
// reference installed during compaction.
type Object struct {
	mark Mark
	fwd  *Object
}

// NewObject returns an object carrying the given header word.
func NewObject(m Mark) *Object {
	return &Object{mark: m}
}

func (o *Object) MarkWord() Mark {
	return o.mark
}

func (o *Object) SetMarkWord(m Mark) {
	o.mark = m
}

func (o *Object) IsForwarded() bool {
	return o.mark.IsForwarded()
}

// ForwardTo overlays the forwarded tag onto the header and records dst as the
// object's new location. The payload bits stay in place so DisplacedMark can
// recover the pre-forwarding word; any tag state beyond unlocked must have
// been preserved by the caller before forwarding.
func (o *Object) ForwardTo(dst *Object) {
	o.fwd = dst
	o.mark = o.mark&^markTagMask | TagForwarded
}

// Forwardee returns the object's new location, or nil if the object is not
// forwarded.
func (o *Object) Forwardee() *Object {
	if !o.IsForwarded() {
		return nil
	}
	return o.fwd
}

// DisplacedMark recovers the header word the object held before ForwardTo
// overlaid it. Only meaningful while the object is forwarded.
func (o *Object) DisplacedMark() Mark {
	return o.mark&^markTagMask | TagUnlocked
}

// RemoveForwarding installs m as the header word and drops the forwardee
// reference, leaving the object in a non-forwarded state.
func (o *Object) RemoveForwarding(m Mark) {
	o.mark = m
	o.fwd = nil
}
