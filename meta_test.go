package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeta_universalFieldsPresentOnEveryClass(t *testing.T) {
	classes := []Class{
		ClassM123, ClassM411, ClassM5, ClassM6, ClassM713, ClassM8, ClassM9,
		ClassM10, ClassM12, ClassM14, ClassM15, ClassM16, ClassM17, ClassM18,
		ClassM19, ClassM20, ClassM21, ClassM22, ClassM23, ClassM24, ClassM25,
		ClassM26, ClassM27, ClassM28,
	}
	for _, c := range classes {
		assert.True(t, HasField(c, FieldMsgID), "msg_id missing for %v", c)
		assert.True(t, HasField(c, FieldRepeatIndicator), "repeat_indicator missing for %v", c)
		assert.True(t, HasField(c, FieldMMSI), "mmsi missing for %v", c)
	}
}

func TestMeta_classM28HasNoOptionalFields(t *testing.T) {
	assert.False(t, HasField(ClassM28, FieldNavStatus))
	assert.False(t, HasField(ClassM28, FieldLongitude))
	assert.False(t, HasField(ClassM28, FieldSpare))
}

func TestMeta_spareFieldGroupedAt38_2(t *testing.T) {
	for _, c := range []Class{
		ClassM713, ClassM8, ClassM10, ClassM14, ClassM15, ClassM16,
		ClassM17, ClassM20, ClassM22, ClassM23,
	} {
		assert.True(t, HasField(c, FieldSpare), "spare missing for %v", c)
		m := Meta(c, FieldSpare)
		assert.Equal(t, 38, m.FirstBit, "spare firstbit for %v", c)
		assert.Equal(t, 2, m.NBits, "spare nbits for %v", c)
	}
}

func TestMeta_m6m8LackPositionFields(t *testing.T) {
	for _, c := range []Class{ClassM6, ClassM8} {
		assert.False(t, HasField(c, FieldLongitude))
		assert.False(t, HasField(c, FieldLatitude))
		assert.True(t, HasField(c, FieldDesignatedAreaCode))
		assert.True(t, HasField(c, FieldFunctionalID))
	}
}

func TestStatusCode_bandPartitioning(t *testing.T) {
	assert.True(t, StatusSpeedOverGroundExceeds102Point2Knots.IsInformational())
	assert.True(t, StatusPositioningSystemInoperative.IsInformational())
	assert.False(t, StatusSuccess.IsInformational())
	assert.False(t, StatusSuccess.IsError())
	assert.True(t, StatusNotAvailable.IsError())
	assert.True(t, StatusMemberNotPresent.IsError())
}
