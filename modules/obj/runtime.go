package objmod

// --- obj module ---
//
// Engine object references reach scripts as opaque handles. A destroyed
// entity leaves its handle non-nil but dead, so nil checks alone are not
// enough: handles expose Alive() and is_valid consults it.

// Handle is implemented by engine object references.
type Handle interface {
	Alive() bool
}

type Obj struct{}

func (*Obj) IsNil(val interface{}) interface{} {
	return val == nil
}

func (*Obj) IsValid(val interface{}) interface{} {
	return objValid(val)
}

func (*Obj) OrElse(val, fallback interface{}) interface{} {
	if objValid(val) {
		return val
	}
	return fallback
}

func objValid(val interface{}) bool {
	if val == nil {
		return false
	}
	if h, ok := val.(Handle); ok {
		return h.Alive()
	}
	return true
}
