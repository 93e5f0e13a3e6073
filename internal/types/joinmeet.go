package types

// Join computes the least upper bound of a non-empty set of types
// under SubtypeOf, returning ErrorType() when no such bound exists.
// Rules (section 4.5):
//   - all equal and base/void -> that type
//   - all subtypes of some class -> the lowest common ancestor, found
//     by walking the first element's ancestor chain until every
//     element is a subtype of the candidate
//   - all function types of equal arity -> Join of each result plus
//     Meet of each corresponding parameter (contravariant)
//   - null is absorbed by any class or function type
func Join(ts []*Type) *Type {
	return joinMeet(ts, true)
}

// Meet computes the greatest lower bound of a non-empty set of types,
// returning ErrorType() when no such bound exists. Classes: the
// element that is a subtype of every other (if any). Function types:
// Meet of results, Join of parameters (contravariant).
func Meet(ts []*Type) *Type {
	return joinMeet(ts, false)
}

func joinMeet(ts []*Type, isJoin bool) *Type {
	if len(ts) == 0 {
		return ErrorType()
	}
	// error is absorbing: drop it from consideration if anything else
	// is present, since downstream checks should not cascade.
	filtered := make([]*Type, 0, len(ts))
	for _, t := range ts {
		if t != nil && t.Kind == KError {
			continue
		}
		filtered = append(filtered, t)
	}
	if len(filtered) == 0 {
		return ErrorType()
	}
	ts = filtered

	allEq := true
	for _, t := range ts[1:] {
		if !Eq(t, ts[0]) {
			allEq = false
			break
		}
	}
	if allEq && (ts[0].IsBase() || ts[0].Kind == KVoid) {
		return ts[0]
	}

	if classOrNullOnly(ts) {
		return joinMeetClasses(ts, isJoin)
	}

	if funOrNullOnly(ts) {
		return joinMeetFuns(funsOnly(ts), isJoin)
	}

	return ErrorType()
}

func classOrNullOnly(ts []*Type) bool {
	sawClass := false
	for _, t := range ts {
		switch t.Kind {
		case KClass:
			sawClass = true
		case KNull:
			// absorbed
		default:
			return false
		}
	}
	return sawClass
}

func joinMeetClasses(ts []*Type, isJoin bool) *Type {
	classes := make([]*Type, 0, len(ts))
	for _, t := range ts {
		if t.Kind == KClass {
			classes = append(classes, t)
		}
	}
	if len(classes) == 0 {
		return ErrorType()
	}

	if isJoin {
		// Walk the first class's own chain (itself, then ancestors)
		// until every element is a subtype of the candidate.
		for candidate := classes[0]; candidate != nil; candidate = candidate.Parent {
			ok := true
			for _, c := range classes {
				if !c.SubtypeOf(candidate) {
					ok = false
					break
				}
			}
			if ok {
				return candidate
			}
		}
		return ErrorType()
	}

	// Meet: the element that is a subtype of every other.
	for _, candidate := range classes {
		ok := true
		for _, c := range classes {
			if !candidate.SubtypeOf(c) {
				ok = false
				break
			}
		}
		if ok {
			return candidate
		}
	}
	return ErrorType()
}

// funOrNullOnly reports whether ts consists entirely of function types
// and (optionally) null, with at least one function type present, all
// sharing a common arity. null is absorbed by any function type, the
// same way classOrNullOnly absorbs it into a class type.
func funOrNullOnly(ts []*Type) bool {
	sawFun := false
	arity := -1
	for _, t := range ts {
		switch t.Kind {
		case KFun:
			sawFun = true
			if arity == -1 {
				arity = len(t.Params)
			} else if len(t.Params) != arity {
				return false
			}
		case KNull:
			// absorbed
		default:
			return false
		}
	}
	return sawFun
}

// funsOnly returns the KFun-kinded elements of ts, dropping any
// absorbed null entries.
func funsOnly(ts []*Type) []*Type {
	funs := make([]*Type, 0, len(ts))
	for _, t := range ts {
		if t.Kind == KFun {
			funs = append(funs, t)
		}
	}
	return funs
}

func joinMeetFuns(ts []*Type, isJoin bool) *Type {
	arity := len(ts[0].Params)

	rets := make([]*Type, len(ts))
	for i, t := range ts {
		rets[i] = t.Ret
	}
	var resultRet *Type
	if isJoin {
		resultRet = Join(rets)
	} else {
		resultRet = Meet(rets)
	}
	if resultRet.Kind == KError {
		return ErrorType()
	}

	params := make([]*Type, arity)
	for i := 0; i < arity; i++ {
		col := make([]*Type, len(ts))
		for j, t := range ts {
			col[j] = t.Params[i]
		}
		var p *Type
		// Parameters are contravariant: a Join of function types
		// takes the Meet of each parameter column, and vice versa.
		if isJoin {
			p = Meet(col)
		} else {
			p = Join(col)
		}
		if p.Kind == KError {
			return ErrorType()
		}
		params[i] = p
	}

	return Fun(resultRet, params...)
}
