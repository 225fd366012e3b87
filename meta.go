package ais

// FieldMeta is the compile-time-constructible description of where a
// field lives in a message class's bit layout and how its raw value is
// validated. NBits==0 is the single source of truth for "this class does
// not carry this field".
type FieldMeta struct {
	FirstBit int
	NBits    int
	Signed   bool
	MinVal   int64
	MaxVal   int64
	HasNA    bool
	NAVal    int64
}

// fieldMeta is built once at package init, mirroring the table-driven PGN
// decoder a CAN/NMEA2000 decoder would build from its schema, except this
// table is literal rather than loaded from an external schema document:
// AIS message layouts are fixed by ITU-R M.1371, not discoverable at
// runtime.
var fieldMeta map[Class]map[Field]FieldMeta

func init() {
	fieldMeta = make(map[Class]map[Field]FieldMeta, 24)
	allClasses := []Class{
		ClassM123, ClassM411, ClassM5, ClassM6, ClassM713, ClassM8, ClassM9,
		ClassM10, ClassM12, ClassM14, ClassM15, ClassM16, ClassM17, ClassM18,
		ClassM19, ClassM20, ClassM21, ClassM22, ClassM23, ClassM24, ClassM25,
		ClassM26, ClassM27, ClassM28,
	}
	// universal fields: identical layout regardless of message class.
	for _, c := range allClasses {
		fieldMeta[c] = map[Field]FieldMeta{
			FieldMsgID:           {FirstBit: 0, NBits: 6, MinVal: 1, MaxVal: 28},
			FieldRepeatIndicator: {FirstBit: 6, NBits: 2, MinVal: 0, MaxVal: 3},
			FieldMMSI:            {FirstBit: 8, NBits: 30, MinVal: 0, MaxVal: 999999999},
		}
	}

	set := func(c Class, f Field, m FieldMeta) { fieldMeta[c][f] = m }

	set(ClassM123, FieldNavStatus, FieldMeta{FirstBit: 38, NBits: 4, MinVal: 0, MaxVal: 15})
	set(ClassM123, FieldRateOfTurn, FieldMeta{FirstBit: 42, NBits: 8, Signed: true, MinVal: -127, MaxVal: 127, HasNA: true, NAVal: -128})
	set(ClassM123, FieldSpeedOverGround, FieldMeta{FirstBit: 50, NBits: 10, MinVal: 0, MaxVal: 1023, HasNA: true, NAVal: 1022})
	set(ClassM123, FieldPositionAccuracy, FieldMeta{FirstBit: 60, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM123, FieldLongitude, FieldMeta{FirstBit: 61, NBits: 28, Signed: true, MinVal: -108000000, MaxVal: 108000000, HasNA: true, NAVal: 108600000})
	set(ClassM123, FieldLatitude, FieldMeta{FirstBit: 89, NBits: 27, Signed: true, MinVal: -54000000, MaxVal: 54000000, HasNA: true, NAVal: 54600000})
	set(ClassM123, FieldCourseOverGround, FieldMeta{FirstBit: 116, NBits: 12, MinVal: 0, MaxVal: 3599, HasNA: true, NAVal: 3600})
	set(ClassM123, FieldTrueHeading, FieldMeta{FirstBit: 128, NBits: 9, MinVal: 0, MaxVal: 359, HasNA: true, NAVal: 511})
	set(ClassM123, FieldTimestamp, FieldMeta{FirstBit: 137, NBits: 6, MinVal: 0, MaxVal: 59, HasNA: true, NAVal: 60})
	set(ClassM123, FieldSpecialManeuver, FieldMeta{FirstBit: 143, NBits: 2, MinVal: 1, MaxVal: 2, HasNA: true, NAVal: 0})
	set(ClassM123, FieldSpare, FieldMeta{FirstBit: 145, NBits: 3, MinVal: 0, MaxVal: 7})
	set(ClassM123, FieldRAIM, FieldMeta{FirstBit: 148, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM123, FieldSyncState, FieldMeta{FirstBit: 149, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM123, FieldSlotTimeout, FieldMeta{FirstBit: 151, NBits: 3, MinVal: 0, MaxVal: 7})
	set(ClassM123, FieldSlotOffset, FieldMeta{FirstBit: 154, NBits: 14, MinVal: 0, MaxVal: 1<<14 - 1})

	set(ClassM411, FieldLongitude, FieldMeta{FirstBit: 79, NBits: 28, Signed: true, MinVal: -108000000, MaxVal: 108000000, HasNA: true, NAVal: 108600000})
	set(ClassM411, FieldLatitude, FieldMeta{FirstBit: 107, NBits: 27, Signed: true, MinVal: -54000000, MaxVal: 54000000, HasNA: true, NAVal: 54600000})
	set(ClassM411, FieldPositionAccuracy, FieldMeta{FirstBit: 78, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM411, FieldRAIM, FieldMeta{FirstBit: 148, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM411, FieldSyncState, FieldMeta{FirstBit: 149, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM411, FieldSlotTimeout, FieldMeta{FirstBit: 151, NBits: 3, MinVal: 0, MaxVal: 7})
	set(ClassM411, FieldSlotOffset, FieldMeta{FirstBit: 154, NBits: 14, MinVal: 0, MaxVal: 1<<14 - 1})
	set(ClassM411, FieldSpare, FieldMeta{FirstBit: 138, NBits: 10, MinVal: 0, MaxVal: 1<<10 - 1})

	set(ClassM5, FieldCallsign, FieldMeta{FirstBit: 70, NBits: 42})
	set(ClassM5, FieldShipName, FieldMeta{FirstBit: 112, NBits: 120})
	set(ClassM5, FieldSpare, FieldMeta{FirstBit: 423, NBits: 1, MinVal: 0, MaxVal: 1})

	set(ClassM6, FieldDesignatedAreaCode, FieldMeta{FirstBit: 72, NBits: 10, MinVal: 0, MaxVal: 1023})
	set(ClassM6, FieldFunctionalID, FieldMeta{FirstBit: 82, NBits: 6, MinVal: 0, MaxVal: 63})
	set(ClassM6, FieldSpare, FieldMeta{FirstBit: 71, NBits: 1, MinVal: 0, MaxVal: 1})

	set(ClassM713, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})

	set(ClassM8, FieldDesignatedAreaCode, FieldMeta{FirstBit: 40, NBits: 10, MinVal: 0, MaxVal: 1023})
	set(ClassM8, FieldFunctionalID, FieldMeta{FirstBit: 50, NBits: 6, MinVal: 0, MaxVal: 63})
	set(ClassM8, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})

	set(ClassM9, FieldLongitude, FieldMeta{FirstBit: 61, NBits: 28, Signed: true, MinVal: -108000000, MaxVal: 108000000, HasNA: true, NAVal: 108600000})
	set(ClassM9, FieldLatitude, FieldMeta{FirstBit: 89, NBits: 27, Signed: true, MinVal: -54000000, MaxVal: 54000000, HasNA: true, NAVal: 54600000})
	set(ClassM9, FieldPositionAccuracy, FieldMeta{FirstBit: 60, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM9, FieldTimestamp, FieldMeta{FirstBit: 128, NBits: 6, MinVal: 0, MaxVal: 59, HasNA: true, NAVal: 60})
	set(ClassM9, FieldRAIM, FieldMeta{FirstBit: 147, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM9, FieldSpare, FieldMeta{FirstBit: 135, NBits: 7, MinVal: 0, MaxVal: 1<<7 - 1})
	set(ClassM9, FieldSpare2, FieldMeta{FirstBit: 143, NBits: 3, MinVal: 0, MaxVal: 7})

	set(ClassM10, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM10, FieldSpare2, FieldMeta{FirstBit: 70, NBits: 2, MinVal: 0, MaxVal: 3})

	set(ClassM12, FieldText, FieldMeta{FirstBit: 72, NBits: 936})
	set(ClassM12, FieldSpare, FieldMeta{FirstBit: 71, NBits: 1, MinVal: 0, MaxVal: 1})

	set(ClassM14, FieldText, FieldMeta{FirstBit: 40, NBits: 966})
	set(ClassM14, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})

	set(ClassM15, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM15, FieldSpare2, FieldMeta{FirstBit: 88, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM15, FieldSpare3, FieldMeta{FirstBit: 108, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM15, FieldSpare4, FieldMeta{FirstBit: 158, NBits: 2, MinVal: 0, MaxVal: 3})

	set(ClassM16, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM16, FieldSpare2, FieldMeta{FirstBit: 75, NBits: 5, MinVal: 0, MaxVal: 1<<5 - 1})

	set(ClassM17, FieldLongitude, FieldMeta{FirstBit: 40, NBits: 18, Signed: true, MinVal: -108000, MaxVal: 108000, HasNA: true, NAVal: 108600})
	set(ClassM17, FieldLatitude, FieldMeta{FirstBit: 58, NBits: 17, Signed: true, MinVal: -54000, MaxVal: 54000, HasNA: true, NAVal: 54600})
	set(ClassM17, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM17, FieldSpare2, FieldMeta{FirstBit: 75, NBits: 5, MinVal: 0, MaxVal: 1<<5 - 1})

	set(ClassM18, FieldSpeedOverGround, FieldMeta{FirstBit: 46, NBits: 10, MinVal: 0, MaxVal: 1023, HasNA: true, NAVal: 1022})
	set(ClassM18, FieldPositionAccuracy, FieldMeta{FirstBit: 56, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM18, FieldLongitude, FieldMeta{FirstBit: 57, NBits: 28, Signed: true, MinVal: -108000000, MaxVal: 108000000, HasNA: true, NAVal: 108600000})
	set(ClassM18, FieldLatitude, FieldMeta{FirstBit: 85, NBits: 27, Signed: true, MinVal: -54000000, MaxVal: 54000000, HasNA: true, NAVal: 54600000})
	set(ClassM18, FieldCourseOverGround, FieldMeta{FirstBit: 112, NBits: 12, MinVal: 0, MaxVal: 3599})
	set(ClassM18, FieldTrueHeading, FieldMeta{FirstBit: 124, NBits: 9, MinVal: 0, MaxVal: 359, HasNA: true, NAVal: 511})
	set(ClassM18, FieldTimestamp, FieldMeta{FirstBit: 133, NBits: 6, MinVal: 0, MaxVal: 59})
	set(ClassM18, FieldSpare, FieldMeta{FirstBit: 38, NBits: 8, MinVal: 0, MaxVal: 1<<8 - 1})
	set(ClassM18, FieldRAIM, FieldMeta{FirstBit: 147, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM18, FieldSyncState, FieldMeta{FirstBit: 149, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM18, FieldSlotTimeout, FieldMeta{FirstBit: 151, NBits: 3, MinVal: 0, MaxVal: 7})
	set(ClassM18, FieldSlotOffset, FieldMeta{FirstBit: 154, NBits: 14, MinVal: 0, MaxVal: 1<<14 - 1})

	set(ClassM19, FieldSpeedOverGround, FieldMeta{FirstBit: 46, NBits: 10, MinVal: 0, MaxVal: 1023, HasNA: true, NAVal: 1022})
	set(ClassM19, FieldPositionAccuracy, FieldMeta{FirstBit: 56, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM19, FieldLongitude, FieldMeta{FirstBit: 57, NBits: 28, Signed: true, MinVal: -108000000, MaxVal: 108000000, HasNA: true, NAVal: 108600000})
	set(ClassM19, FieldLatitude, FieldMeta{FirstBit: 85, NBits: 27, Signed: true, MinVal: -54000000, MaxVal: 54000000, HasNA: true, NAVal: 54600000})
	set(ClassM19, FieldCourseOverGround, FieldMeta{FirstBit: 112, NBits: 12, MinVal: 0, MaxVal: 3599})
	set(ClassM19, FieldTrueHeading, FieldMeta{FirstBit: 124, NBits: 9, MinVal: 0, MaxVal: 359, HasNA: true, NAVal: 511})
	set(ClassM19, FieldTimestamp, FieldMeta{FirstBit: 133, NBits: 6, MinVal: 0, MaxVal: 59})
	set(ClassM19, FieldShipName, FieldMeta{FirstBit: 143, NBits: 120})
	set(ClassM19, FieldSpare, FieldMeta{FirstBit: 38, NBits: 8, MinVal: 0, MaxVal: 1<<8 - 1})
	set(ClassM19, FieldSpare2, FieldMeta{FirstBit: 139, NBits: 4, MinVal: 0, MaxVal: 1<<4 - 1})
	set(ClassM19, FieldRAIM, FieldMeta{FirstBit: 305, NBits: 1, MinVal: 0, MaxVal: 1})

	set(ClassM22, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM22, FieldSpare2, FieldMeta{FirstBit: 145, NBits: 23, MinVal: 0, MaxVal: 1<<23 - 1})

	set(ClassM21, FieldLongitude, FieldMeta{FirstBit: 164, NBits: 28, Signed: true, MinVal: -108000000, MaxVal: 108000000, HasNA: true, NAVal: 108600000})
	set(ClassM21, FieldLatitude, FieldMeta{FirstBit: 192, NBits: 27, Signed: true, MinVal: -54000000, MaxVal: 54000000, HasNA: true, NAVal: 54600000})
	set(ClassM21, FieldRAIM, FieldMeta{FirstBit: 268, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM21, FieldSpare, FieldMeta{FirstBit: 271, NBits: 1, MinVal: 0, MaxVal: 1})

	set(ClassM23, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})
	set(ClassM23, FieldSpare2, FieldMeta{FirstBit: 122, NBits: 22, MinVal: 0, MaxVal: 1<<22 - 1})
	set(ClassM23, FieldSpare3, FieldMeta{FirstBit: 154, NBits: 6, MinVal: 0, MaxVal: 1<<6 - 1})

	set(ClassM24, FieldCallsign, FieldMeta{FirstBit: 90, NBits: 42})
	set(ClassM24, FieldShipName, FieldMeta{FirstBit: 40, NBits: 120})
	set(ClassM24, FieldSpare, FieldMeta{FirstBit: 160, NBits: 8, MinVal: 0, MaxVal: 1<<8 - 1})
	set(ClassM24, FieldSpare2, FieldMeta{FirstBit: 162, NBits: 6, MinVal: 0, MaxVal: 1<<6 - 1})

	set(ClassM27, FieldPositionAccuracy, FieldMeta{FirstBit: 38, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM27, FieldRAIM, FieldMeta{FirstBit: 39, NBits: 1, MinVal: 0, MaxVal: 1})
	set(ClassM27, FieldNavStatus, FieldMeta{FirstBit: 40, NBits: 4, MinVal: 0, MaxVal: 15})
	set(ClassM27, FieldLongitude, FieldMeta{FirstBit: 44, NBits: 18, Signed: true, MinVal: -108000, MaxVal: 108000, HasNA: true, NAVal: 108600})
	set(ClassM27, FieldLatitude, FieldMeta{FirstBit: 62, NBits: 17, Signed: true, MinVal: -54000, MaxVal: 54000, HasNA: true, NAVal: 54600})
	set(ClassM27, FieldSpeedOverGround, FieldMeta{FirstBit: 79, NBits: 6, MinVal: 0, MaxVal: 62, HasNA: true, NAVal: 63})
	set(ClassM27, FieldCourseOverGround, FieldMeta{FirstBit: 85, NBits: 9, MinVal: 0, MaxVal: 359, HasNA: true, NAVal: 511})
	set(ClassM27, FieldSpare, FieldMeta{FirstBit: 95, NBits: 1, MinVal: 0, MaxVal: 1})

	set(ClassM20, FieldSpare, FieldMeta{FirstBit: 38, NBits: 2, MinVal: 0, MaxVal: 3})

	// m_25, m_26, m_28 carry only the universal fields beyond what is set
	// above; they have no additional tabulated fields in this version.
}

// Meta returns the field layout for (class, field). The zero value with
// NBits==0 means the field is not defined for that class.
func Meta(c Class, f Field) FieldMeta {
	if fields, ok := fieldMeta[c]; ok {
		return fields[f]
	}
	return FieldMeta{}
}

// HasField reports whether class c defines field f.
func HasField(c Class, f Field) bool {
	return Meta(c, f).NBits != 0
}
