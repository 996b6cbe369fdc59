package heap

// Visitor is applied to every live object of a region walk.
type Visitor interface {
	VisitObject(obj *Object)
}

// Region is a flat sequence of live objects, the unit a full collection
// walks one worker at a time.
type Region struct {
	objects []*Object
}

func NewRegion(capacity int) *Region {
	return &Region{objects: make([]*Object, 0, capacity)}
}

// Add appends an object to the region's live sequence.
func (r *Region) Add(obj *Object) {
	r.objects = append(r.objects, obj)
}

func (r *Region) Len() int {
	return len(r.objects)
}

// IterateObjects applies v to every object in allocation order.
func (r *Region) IterateObjects(v Visitor) {
	for _, obj := range r.objects {
		v.VisitObject(obj)
	}
}
