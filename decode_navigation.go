package ais

// DecodeNavStatus returns the navigational status code (0-15), e.g. 0 =
// under way using engine, 1 = at anchor. Carried by m_1_2_3 and m_27.
func DecodeNavStatus(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldNavStatus)
}

// DecodeRateOfTurn returns rate of turn in degrees per minute, recovering
// the ROT sensor's non-linear encoding: sign(x) * (x/4.733)^2.
func DecodeRateOfTurn(p Payload, class Class) Result[float64] {
	res := decodeInt(p, class, FieldRateOfTurn)
	if res.Status != StatusSuccess {
		return Result[float64]{Status: res.Status}
	}
	x := float64(res.Value)
	scaled := (x / 4.733) * (x / 4.733)
	if x < 0 {
		scaled = -scaled
	}
	return ok(scaled)
}

// DecodeSpeedOverGround returns speed over ground in knots. m_27 reports
// whole knots directly; other classes report tenths of a knot. A raw
// value of 1023 in the tenths-of-a-knot classes means the vessel is
// moving at 102.2 knots or faster and is reported informationally rather
// than as not-available.
func DecodeSpeedOverGround(p Payload, class Class) Result[float64] {
	class = resolveClass(p, class)
	res := decodeUint(p, class, FieldSpeedOverGround)
	if res.Status == StatusSuccess && res.Value == 1023 {
		res.Status = StatusSpeedOverGroundExceeds102Point2Knots
	}
	divisor := 10.0
	if class == ClassM27 {
		divisor = 1.0
	}
	return Result[float64]{Value: float64(res.Value) / divisor, Status: res.Status}
}

// DecodePositionAccuracy reports whether the position fix is high (true,
// <=10m, DGPS) or low (false, >10m) accuracy.
func DecodePositionAccuracy(p Payload, class Class) Result[bool] {
	return decodeBool(p, class, FieldPositionAccuracy)
}

// DecodeLongitude returns longitude in degrees, east positive. The
// class-dependent raw divisor (600 for m_17/m_27, 600,000 otherwise) is
// applied after range/sentinel validation on the raw encoding.
func DecodeLongitude(p Payload, class Class) Result[float64] {
	class = resolveClass(p, class)
	res := decodeInt(p, class, FieldLongitude)
	divisor := 600000.0
	if class == ClassM17 || class == ClassM27 {
		divisor = 600.0
	}
	return Result[float64]{Value: float64(res.Value) / divisor, Status: res.Status}
}

// DecodeLatitude returns latitude in degrees, north positive.
func DecodeLatitude(p Payload, class Class) Result[float64] {
	class = resolveClass(p, class)
	res := decodeInt(p, class, FieldLatitude)
	divisor := 600000.0
	if class == ClassM17 || class == ClassM27 {
		divisor = 600.0
	}
	return Result[float64]{Value: float64(res.Value) / divisor, Status: res.Status}
}

// DecodeCourseOverGround returns course over ground in degrees true.
// m_27 reports whole degrees; other classes report tenths of a degree.
func DecodeCourseOverGround(p Payload, class Class) Result[float64] {
	class = resolveClass(p, class)
	res := decodeUint(p, class, FieldCourseOverGround)
	divisor := 10.0
	if class == ClassM27 {
		divisor = 1.0
	}
	return Result[float64]{Value: float64(res.Value) / divisor, Status: res.Status}
}

// DecodeTrueHeading returns true heading in whole degrees, 0-359.
func DecodeTrueHeading(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldTrueHeading)
}

// DecodeTimestamp returns the UTC second (0-59) at which the reported
// position was recorded. Raw values 61-63 describe the positioning
// equipment's operating mode rather than a second value and are surfaced
// as informational statuses instead of a plain second count.
func DecodeTimestamp(p Payload, class Class) Result[uint32] {
	res := decodeUint(p, class, FieldTimestamp)
	switch res.Value {
	case 61:
		res.Status = StatusPositioningSystemInManualInputMode
	case 62:
		res.Status = StatusElectronicPositionFixingSystemsInEstimatedMode
	case 63:
		res.Status = StatusPositioningSystemInoperative
	}
	return res
}

// DecodeSpecialManeuver returns the special maneuver indicator (1 = not
// engaged, 2 = engaged) for m_1_2_3.
func DecodeSpecialManeuver(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldSpecialManeuver)
}
