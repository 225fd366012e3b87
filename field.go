package ais

// Field names one semantic value a message class may carry. Not every
// class defines every field; Meta reports NBits==0 for an undefined pair.
type Field int

const (
	FieldMsgID Field = iota
	FieldRepeatIndicator
	FieldMMSI
	FieldNavStatus
	FieldRateOfTurn
	FieldSpeedOverGround
	FieldPositionAccuracy
	FieldLongitude
	FieldLatitude
	FieldCourseOverGround
	FieldTrueHeading
	FieldTimestamp
	FieldSpecialManeuver
	FieldSpare
	FieldSpare2
	FieldSpare3
	FieldSpare4
	FieldRAIM
	FieldSyncState
	FieldSlotTimeout
	FieldSlotOffset
	FieldDesignatedAreaCode
	FieldFunctionalID
	FieldText
	FieldCallsign
	FieldShipName
)
