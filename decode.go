package ais

// resolveClass returns c if it is not ClassUnknown, otherwise resolves
// the payload's actual class. This is what gives every per-field
// decoder its two call shapes: an explicit-class fast path and a
// payload-only slow path that dispatches for the caller.
func resolveClass(p Payload, c Class) Class {
	if c != ClassUnknown {
		return c
	}
	return ClassOf(p)
}

// decodeUint runs the shared unsigned-field pipeline: missing-field
// check, extraction, not-available sentinel, range check.
func decodeUint(p Payload, c Class, f Field) Result[uint32] {
	c = resolveClass(p, c)
	m := Meta(c, f)
	if m.NBits == 0 {
		return errResult[uint32](StatusMsgTypeHasNoSuchField)
	}
	raw := ExtractUint(p, m.FirstBit, m.NBits)
	if m.HasNA && int64(raw) == m.NAVal {
		return Result[uint32]{Value: raw, Status: StatusNotAvailable}
	}
	if int64(raw) < m.MinVal || int64(raw) > m.MaxVal {
		return Result[uint32]{Value: raw, Status: StatusNotDefined}
	}
	return ok(raw)
}

// decodeInt is decodeUint's two's-complement counterpart.
func decodeInt(p Payload, c Class, f Field) Result[int32] {
	c = resolveClass(p, c)
	m := Meta(c, f)
	if m.NBits == 0 {
		return errResult[int32](StatusMsgTypeHasNoSuchField)
	}
	raw := ExtractInt(p, m.FirstBit, m.NBits)
	if m.HasNA && int64(raw) == m.NAVal {
		return Result[int32]{Value: raw, Status: StatusNotAvailable}
	}
	if int64(raw) < m.MinVal || int64(raw) > m.MaxVal {
		return Result[int32]{Value: raw, Status: StatusNotDefined}
	}
	return ok(raw)
}

// decodeBool reads a single-bit flag field. Flags have no not-available
// sentinel or range beyond their bit width.
func decodeBool(p Payload, c Class, f Field) Result[bool] {
	c = resolveClass(p, c)
	m := Meta(c, f)
	if m.NBits == 0 {
		return errResult[bool](StatusMsgTypeHasNoSuchField)
	}
	return ok(ExtractUint(p, m.FirstBit, m.NBits) != 0)
}

// decodeText runs the shared text-field pipeline: missing-field check,
// 6-bit-character extraction, empty-after-trim detection.
func decodeText(p Payload, c Class, f Field) Result[string] {
	c = resolveClass(p, c)
	m := Meta(c, f)
	if m.NBits == 0 {
		return errResult[string](StatusMsgTypeHasNoSuchField)
	}
	s := ExtractText(p, m.FirstBit, m.NBits)
	if s == "" {
		return Result[string]{Status: StatusFieldEmpty}
	}
	return ok(s)
}
