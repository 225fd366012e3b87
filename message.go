package ais

// FieldValue holds one decoded field's normalized value alongside its
// status, for callers (CLI front doors, logging) that want every
// applicable field of a message without calling each Decode function by
// name.
type FieldValue struct {
	ID     string      `json:"id"`
	Value  interface{} `json:"value"`
	Status StatusCode  `json:"status"`
}

// Message is every field a resolved Class defines, decoded from one
// payload.
type Message struct {
	Class  string      `json:"class"`
	MsgID  uint32      `json:"msg_id"`
	Fields []FieldValue `json:"fields"`
}

var fieldNames = map[Field]string{
	FieldMsgID:              "msg_id",
	FieldRepeatIndicator:     "repeat_indicator",
	FieldMMSI:                "mmsi",
	FieldNavStatus:           "nav_status",
	FieldRateOfTurn:          "rate_of_turn",
	FieldSpeedOverGround:     "speed_over_ground",
	FieldPositionAccuracy:    "position_accuracy",
	FieldLongitude:           "longitude",
	FieldLatitude:            "latitude",
	FieldCourseOverGround:    "course_over_ground",
	FieldTrueHeading:         "true_heading",
	FieldTimestamp:           "timestamp",
	FieldSpecialManeuver:     "special_maneuver",
	FieldSpare:               "spare",
	FieldSpare2:              "spare2",
	FieldSpare3:              "spare3",
	FieldSpare4:              "spare4",
	FieldRAIM:                "raim",
	FieldSyncState:           "sync_state",
	FieldSlotTimeout:         "slot_timeout",
	FieldSlotOffset:          "slot_offset",
	FieldDesignatedAreaCode:  "designated_area_code",
	FieldFunctionalID:        "functional_id",
	FieldText:                "text",
	FieldCallsign:            "callsign",
	FieldShipName:            "ship_name",
}

// Decode decodes every field the payload's resolved class defines into a
// Message. Fields the class does not carry are omitted rather than
// reported as StatusMsgTypeHasNoSuchField.
func Decode(p Payload) Message {
	class := ClassOf(p)
	fields, ok := fieldMeta[class]
	msg := Message{Class: className(class), MsgID: MsgIDOf(p)}
	if !ok {
		return msg
	}
	for f := range fields {
		fv, present := decodeNamedField(p, class, f)
		if present && fv.Status != StatusMsgTypeHasNoSuchField {
			msg.Fields = append(msg.Fields, fv)
		}
	}
	return msg
}

func decodeNamedField(p Payload, class Class, f Field) (FieldValue, bool) {
	name, ok := fieldNames[f]
	if !ok {
		return FieldValue{}, false
	}
	switch f {
	case FieldMsgID:
		r := DecodeMsgID(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldRepeatIndicator:
		r := DecodeRepeatIndicator(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldMMSI:
		r := DecodeMMSI(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldNavStatus:
		r := DecodeNavStatus(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldRateOfTurn:
		r := DecodeRateOfTurn(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSpeedOverGround:
		r := DecodeSpeedOverGround(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldPositionAccuracy:
		r := DecodePositionAccuracy(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldLongitude:
		r := DecodeLongitude(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldLatitude:
		r := DecodeLatitude(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldCourseOverGround:
		r := DecodeCourseOverGround(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldTrueHeading:
		r := DecodeTrueHeading(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldTimestamp:
		r := DecodeTimestamp(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSpecialManeuver:
		r := DecodeSpecialManeuver(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSpare:
		r := DecodeSpare(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSpare2:
		r := DecodeSpare2(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSpare3:
		r := DecodeSpare3(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSpare4:
		r := DecodeSpare4(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldRAIM:
		r := DecodeRAIM(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSyncState:
		r := DecodeSyncState(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSlotTimeout:
		r := DecodeSlotTimeout(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldSlotOffset:
		r := DecodeSlotOffset(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldDesignatedAreaCode:
		r := DecodeDesignatedAreaCode(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldFunctionalID:
		r := DecodeFunctionalID(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldText:
		r := DecodeText(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldCallsign:
		r := DecodeCallsign(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	case FieldShipName:
		r := DecodeShipName(p, class)
		return FieldValue{ID: name, Value: r.Value, Status: r.Status}, true
	default:
		return FieldValue{}, false
	}
}

func className(c Class) string {
	switch c {
	case ClassM123:
		return "m_1_2_3"
	case ClassM411:
		return "m_4_11"
	case ClassM5:
		return "m_5"
	case ClassM6:
		return "m_6"
	case ClassM713:
		return "m_7_13"
	case ClassM8:
		return "m_8"
	case ClassM9:
		return "m_9"
	case ClassM10:
		return "m_10"
	case ClassM12:
		return "m_12"
	case ClassM14:
		return "m_14"
	case ClassM15:
		return "m_15"
	case ClassM16:
		return "m_16"
	case ClassM17:
		return "m_17"
	case ClassM18:
		return "m_18"
	case ClassM19:
		return "m_19"
	case ClassM20:
		return "m_20"
	case ClassM21:
		return "m_21"
	case ClassM22:
		return "m_22"
	case ClassM23:
		return "m_23"
	case ClassM24:
		return "m_24"
	case ClassM25:
		return "m_25"
	case ClassM26:
		return "m_26"
	case ClassM27:
		return "m_27"
	case ClassM28:
		return "m_28"
	default:
		return "unknown"
	}
}
