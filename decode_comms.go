package ais

// DecodeRAIM reports the Receiver Autonomous Integrity Monitoring flag.
func DecodeRAIM(p Payload, class Class) Result[bool] {
	return decodeBool(p, class, FieldRAIM)
}

// DecodeSyncState returns the SOTDMA synchronization state (0-3).
func DecodeSyncState(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldSyncState)
}

// DecodeSlotTimeout returns the SOTDMA slot timeout in frames. Absent for
// message ID 3 within m_1_2_3: ITU-R M.1371 defines the slot region only
// for IDs 1 and 2.
func DecodeSlotTimeout(p Payload, class Class) Result[uint32] {
	class = resolveClass(p, class)
	if class == ClassM123 && MsgIDOf(p) == 3 {
		return errResult[uint32](StatusMsgTypeHasNoSuchField)
	}
	return decodeUint(p, class, FieldSlotTimeout)
}

// DecodeSlotOffset returns the SOTDMA slot offset. Presence matches
// DecodeSlotTimeout.
func DecodeSlotOffset(p Payload, class Class) Result[uint32] {
	class = resolveClass(p, class)
	if class == ClassM123 && MsgIDOf(p) == 3 {
		return errResult[uint32](StatusMsgTypeHasNoSuchField)
	}
	return decodeUint(p, class, FieldSlotOffset)
}

// DecodeDesignatedAreaCode returns the binary message's area designator,
// carried by m_6 and m_8.
func DecodeDesignatedAreaCode(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldDesignatedAreaCode)
}

// DecodeFunctionalID returns the binary message's function code within
// its designated area, carried by m_6 and m_8.
func DecodeFunctionalID(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldFunctionalID)
}

// DecodeSpare returns the first spare/reserved bit field for classes that
// carry one. Spare fields never fail with not-available or not-defined:
// any bit pattern is a valid reserved value.
func DecodeSpare(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldSpare)
}

// DecodeSpare2 returns the second spare/reserved bit field.
func DecodeSpare2(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldSpare2)
}

// DecodeSpare3 returns the third spare/reserved bit field.
func DecodeSpare3(p Payload, class Class) Result[uint32] {
	return decodeUint(p, class, FieldSpare3)
}

// DecodeSpare4 returns the fourth spare/reserved bit field, carried only
// by m_15. Type 15 messages vary in length (88/110/112/160 bits); a
// payload shorter than 26 armored characters does not reach this field's
// bit range and is reported not-available rather than read out of bounds.
func DecodeSpare4(p Payload, class Class) Result[uint32] {
	class = resolveClass(p, class)
	if HasField(class, FieldSpare4) && len(p) < 26 {
		return errResult[uint32](StatusNotAvailable)
	}
	return decodeUint(p, class, FieldSpare4)
}
