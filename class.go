package ais

// Class groups AIS message IDs that share an identical leading-field bit
// layout. Message IDs not covered by any explicit bucket get their own
// single-member class.
type Class int

const (
	ClassUnknown Class = iota
	ClassM123          // position reports, types 1/2/3
	ClassM411          // base station / UTC+date response, types 4/11
	ClassM5            // static and voyage data, type 5
	ClassM6            // binary addressed message, type 6
	ClassM713          // binary acknowledge / safety ack, types 7/13
	ClassM8            // binary broadcast message, type 8
	ClassM9            // standard SAR aircraft position report, type 9
	ClassM10           // UTC/date inquiry, type 10
	ClassM12           // addressed safety related message, type 12
	ClassM14           // safety related broadcast message, type 14
	ClassM15           // interrogation, type 15
	ClassM16           // assigned mode command, type 16
	ClassM17           // DGNSS broadcast binary message, type 17
	ClassM18           // standard class B position report, type 18
	ClassM19           // extended class B position report, type 19
	ClassM20           // data link management, type 20
	ClassM21           // aid-to-navigation report, type 21
	ClassM22           // channel management, type 22
	ClassM23           // group assignment command, type 23
	ClassM24           // static data report, type 24
	ClassM25           // single slot binary message, type 25
	ClassM26           // multiple slot binary message, type 26
	ClassM27           // long range AIS broadcast, type 27
	ClassM28           // reserved for future use, type 28
)

// classOfID maps a numeric message ID (1-28) to its Class. IDs sharing
// identical leading-field layout collapse to one Class.
var classOfID = map[uint32]Class{
	1: ClassM123, 2: ClassM123, 3: ClassM123,
	4: ClassM411, 11: ClassM411,
	5:  ClassM5,
	6:  ClassM6,
	7:  ClassM713, 13: ClassM713,
	8:  ClassM8,
	9:  ClassM9,
	10: ClassM10,
	12: ClassM12,
	14: ClassM14,
	15: ClassM15,
	16: ClassM16,
	17: ClassM17,
	18: ClassM18,
	19: ClassM19,
	20: ClassM20,
	21: ClassM21,
	22: ClassM22,
	23: ClassM23,
	24: ClassM24,
	25: ClassM25,
	26: ClassM26,
	27: ClassM27,
	28: ClassM28,
}

// ClassOf resolves the message class of a payload from its first armored
// character. Returns ClassUnknown for an empty payload or an id outside
// 1-28.
func ClassOf(p Payload) Class {
	if len(p) == 0 {
		return ClassUnknown
	}
	id := ToASCII6(p[0])
	if c, ok := classOfID[id]; ok {
		return c
	}
	return ClassUnknown
}

// MsgIDOf returns the numeric message type (1-28) encoded in the first
// armored character of the payload, or 0 if the payload is empty.
func MsgIDOf(p Payload) uint32 {
	if len(p) == 0 {
		return 0
	}
	return ToASCII6(p[0])
}
