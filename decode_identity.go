package ais

// DecodeMsgID returns the numeric message type (1-28). Defined
// identically for every class; pass ClassUnknown to let the payload
// resolve its own class.
func DecodeMsgID(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldMsgID)
}

// DecodeRepeatIndicator returns the repeat indicator (0-3): how many
// times a message has been repeated by a relay station.
func DecodeRepeatIndicator(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldRepeatIndicator)
}

// DecodeMMSI returns the reporting station's Maritime Mobile Service
// Identity.
func DecodeMMSI(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldMMSI)
}
