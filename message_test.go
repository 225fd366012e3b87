package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDecode_scenarios exercises full end-to-end payloads, one per
// message class family, computed bit-for-bit against this package's own
// extractor rather than an external reference decoder.
func TestDecode_scenarios(t *testing.T) {
	t.Run("type 1 position report", func(t *testing.T) {
		p := Payload("177KQJ5000G?tO`K>RA1wUbN0TKH")
		assert.EqualValues(t, 1, DecodeMsgID(p, ClassUnknown).Value)
		assert.EqualValues(t, 0, DecodeRepeatIndicator(p, ClassUnknown).Value)
		assert.EqualValues(t, 477553000, DecodeMMSI(p, ClassUnknown).Value)
		assert.EqualValues(t, 5, DecodeNavStatus(p, ClassUnknown).Value)

		rot := DecodeRateOfTurn(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, rot.Status)
		assert.InDelta(t, 0.0, rot.Value, 0.0001)

		lon := DecodeLongitude(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, lon.Status)
		assert.InDelta(t, -122.345833, lon.Value, 0.0001)

		lat := DecodeLatitude(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, lat.Status)
		assert.InDelta(t, 47.582833, lat.Value, 0.0001)

		cog := DecodeCourseOverGround(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, cog.Status)
		assert.InDelta(t, 51.0, cog.Value, 0.0001)

		assert.EqualValues(t, 181, DecodeTrueHeading(p, ClassUnknown).Value)
		assert.EqualValues(t, 15, DecodeTimestamp(p, ClassUnknown).Value)
	})

	t.Run("type 1 not-available sentinels", func(t *testing.T) {
		p := Payload("15N1u<PP1FJuvSRHOE6QIwwh0HQ6")
		assert.EqualValues(t, 1, DecodeMsgID(p, ClassUnknown).Value)
		assert.EqualValues(t, 367033650, DecodeMMSI(p, ClassUnknown).Value)

		rot := DecodeRateOfTurn(p, ClassUnknown)
		assert.Equal(t, StatusNotAvailable, rot.Status)

		sog := DecodeSpeedOverGround(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, sog.Status)
		assert.InDelta(t, 8.6, sog.Value, 0.0001)

		heading := DecodeTrueHeading(p, ClassUnknown)
		assert.Equal(t, StatusNotAvailable, heading.Status)
		assert.EqualValues(t, 511, heading.Value)
	})

	t.Run("type 4 base station report, position not available", func(t *testing.T) {
		p := Payload("403Ovl@000Htt<tSF0l4Q@100`Pq")
		assert.EqualValues(t, 4, DecodeMsgID(p, ClassUnknown).Value)
		assert.EqualValues(t, 3669713, DecodeMMSI(p, ClassUnknown).Value)

		lon := DecodeLongitude(p, ClassUnknown)
		assert.Equal(t, StatusNotAvailable, lon.Status)

		lat := DecodeLatitude(p, ClassUnknown)
		assert.Equal(t, StatusNotAvailable, lat.Status)
	})

	t.Run("type 5 static and voyage data", func(t *testing.T) {
		p := Payload("53eaFL02?;fwTPm7V219E@R1@PE8E<622222221@9hG1A7?@NCPSlm3kc5DhH8888888880")
		assert.EqualValues(t, 5, DecodeMsgID(p, ClassUnknown).Value)
		assert.EqualValues(t, 249190000, DecodeMMSI(p, ClassUnknown).Value)

		callsign := DecodeCallsign(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, callsign.Status)
		assert.Equal(t, "9HMQ9", callsign.Value)

		name := DecodeShipName(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, name.Status)
		assert.Equal(t, "RUTH THERESA", name.Value)
	})

	t.Run("type 27 long range broadcast", func(t *testing.T) {
		p := Payload("KvQ:1o`7EBrBQ`?w")
		assert.EqualValues(t, 27, DecodeMsgID(p, ClassUnknown).Value)
		assert.EqualValues(t, 974291422, DecodeMMSI(p, ClassUnknown).Value)

		lat := DecodeLatitude(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, lat.Status)
		assert.InDelta(t, -77.968333, lat.Value, 0.0001)

		sog := DecodeSpeedOverGround(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, sog.Status)
		assert.InDelta(t, 16.0, sog.Value, 0.0001)

		cog := DecodeCourseOverGround(p, ClassUnknown)
		assert.Equal(t, StatusSuccess, cog.Status)
		assert.InDelta(t, 255.0, cog.Value, 0.0001)
	})

	t.Run("type 15 interrogation, spare4 absent on short payload", func(t *testing.T) {
		p := Payload("?5N29b18w<3PD00")
		assert.EqualValues(t, 15, DecodeMsgID(p, ClassUnknown).Value)

		spare4 := DecodeSpare4(p, ClassUnknown)
		assert.Equal(t, StatusNotAvailable, spare4.Status)
	})
}

func TestClassOf_dispatchEquivalence(t *testing.T) {
	p := Payload("177KQJ5000G?tO`K>RA1wUbN0TKH")
	class := ClassOf(p)
	assert.Equal(t, ClassM123, class)

	fast := DecodeNavStatus(p, class)
	slow := DecodeNavStatus(p, ClassUnknown)
	assert.Equal(t, fast, slow)
}

func TestDecode_unknownClassReportsMissingField(t *testing.T) {
	// type 20 (data link management) carries no tabulated fields beyond
	// msg_id/repeat_indicator/mmsi and its spare bits.
	p := Payload("Dh3Ovq1T69N9dm10000000000")
	res := DecodeNavStatus(p, ClassUnknown)
	assert.Equal(t, StatusMsgTypeHasNoSuchField, res.Status)
}

func TestDecodeSlotTimeout_absentForMsgID3(t *testing.T) {
	// a synthetic msg_id=3 payload (same layout as type 1/2) should
	// report slot_timeout/slot_offset absent.
	p := Payload("37u3gO001G?w<;4A9Gmwsju:0000")
	assert.EqualValues(t, 3, DecodeMsgID(p, ClassUnknown).Value)
	assert.Equal(t, StatusMsgTypeHasNoSuchField, DecodeSlotTimeout(p, ClassUnknown).Status)
	assert.Equal(t, StatusMsgTypeHasNoSuchField, DecodeSlotOffset(p, ClassUnknown).Status)
}

func TestMessage_decodeAllOmitsUndefinedFields(t *testing.T) {
	p := Payload("177KQJ5000G?tO`K>RA1wUbN0TKH")
	msg := Decode(p)
	assert.Equal(t, "m_1_2_3", msg.Class)
	assert.EqualValues(t, 1, msg.MsgID)

	ids := make(map[string]bool, len(msg.Fields))
	for _, f := range msg.Fields {
		ids[f.ID] = true
	}
	assert.True(t, ids["nav_status"])
	assert.True(t, ids["longitude"])
	assert.False(t, ids["callsign"], "m_1_2_3 does not carry callsign")
}
