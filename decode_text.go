package ais

// DecodeText returns the free-text payload of a safety-related message
// (m_12 addressed, m_14 broadcast).
func DecodeText(p Payload, class Class) Result[string] {
	return decodeText(p, class, FieldText)
}

// DecodeCallsign returns the reporting vessel's radio call sign (m_5,
// m_24).
func DecodeCallsign(p Payload, class Class) Result[string] {
	return decodeText(p, class, FieldCallsign)
}

// DecodeShipName returns the reporting vessel's name (m_5, m_19, m_24).
func DecodeShipName(p Payload, class Class) Result[string] {
	return decodeText(p, class, FieldShipName)
}
