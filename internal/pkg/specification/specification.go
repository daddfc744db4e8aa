// Package specification provides composable predicates over a candidate value.
//
// Specifications are combined with And, Or and Not rather than by defining new
// types for each composite rule:
//
//	onTime := specification.Func[cargo.Itinerary](arrivesBy)
//	valid := specification.And(departsFrom, arrivesAt, onTime)
//	if valid.IsSatisfiedBy(itinerary) {
//	    // ...
//	}
package specification

// Specification is a predicate on candidates of type T.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// Func adapts an ordinary function to Specification.
type Func[T any] func(candidate T) bool

// IsSatisfiedBy calls f(candidate).
func (f Func[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

type andSpecification[T any] struct {
	specs []Specification[T]
}

func (s andSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}

type orSpecification[T any] struct {
	specs []Specification[T]
}

func (s orSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(candidate) {
			return true
		}
	}
	return false
}

type notSpecification[T any] struct {
	spec Specification[T]
}

func (s notSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return !s.spec.IsSatisfiedBy(candidate)
}

// And is satisfied when every spec is satisfied. And() with no arguments is always satisfied.
// Evaluation stops at the first unsatisfied spec.
func And[T any](specs ...Specification[T]) Specification[T] {
	return andSpecification[T]{specs: append([]Specification[T](nil), specs...)}
}

// Or is satisfied when at least one spec is satisfied. Or() with no arguments is never satisfied.
// Evaluation stops at the first satisfied spec.
func Or[T any](specs ...Specification[T]) Specification[T] {
	return orSpecification[T]{specs: append([]Specification[T](nil), specs...)}
}

// Not negates spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return notSpecification[T]{spec: spec}
}
