package ais

// navStatusText holds the 16 ITU-R M.1371 navigational status strings
// indexed by the raw DecodeNavStatus value.
var navStatusText = [16]string{
	0:  "under way using engine",
	1:  "at anchor",
	2:  "not under command",
	3:  "restricted manoeuvrability",
	4:  "constrained by her draught",
	5:  "moored",
	6:  "aground",
	7:  "engaged in fishing",
	8:  "under way sailing",
	9:  "reserved for high speed craft",
	10: "reserved for wing in ground craft",
	11: "power-driven vessel towing astern",
	12: "power-driven vessel pushing ahead or towing alongside",
	13: "reserved for future use",
	14: "AIS-SART, MOB-AIS, EPIRB-AIS",
	15: "not defined",
}

// NavStatusText renders a DecodeNavStatus value as the human-readable
// status string ITU-R M.1371 assigns it.
func NavStatusText(code uint32) string {
	if code > 15 {
		return navStatusText[15]
	}
	return navStatusText[code]
}

// shipTypeText holds the ITU-R M.1371 ship and cargo type strings,
// indexed by the raw "type of ship and cargo" code carried in m_5/m_24
// static data (decoded separately from this package's field set; exposed
// here as a standalone lookup for callers that decode the code
// themselves).
var shipTypeText = map[uint32]string{
	0:  "not available",
	20: "wing in ground (WIG)",
	21: "wing in ground (WIG), hazardous category A",
	22: "wing in ground (WIG), hazardous category B",
	23: "wing in ground (WIG), hazardous category C",
	24: "wing in ground (WIG), hazardous category D",
	30: "fishing",
	31: "towing",
	32: "towing, length exceeds 200m or breadth exceeds 25m",
	33: "dredging or underwater operations",
	34: "diving operations",
	35: "military operations",
	36: "sailing",
	37: "pleasure craft",
	40: "high speed craft (HSC)",
	41: "high speed craft (HSC), hazardous category A",
	42: "high speed craft (HSC), hazardous category B",
	43: "high speed craft (HSC), hazardous category C",
	44: "high speed craft (HSC), hazardous category D",
	49: "high speed craft (HSC), no additional information",
	50: "pilot vessel",
	51: "search and rescue vessel",
	52: "tug",
	53: "port tender",
	54: "anti-pollution equipment",
	55: "law enforcement",
	58: "medical transport",
	59: "noncombatant ship per Annex IV of the Geneva Convention",
	60: "passenger",
	69: "passenger, no additional information",
	70: "cargo",
	79: "cargo, no additional information",
	80: "tanker",
	89: "tanker, no additional information",
	90: "other type",
	99: "other type, no additional information",
}

// ShipTypeText renders a "type of ship and cargo" code as its
// human-readable ITU-R M.1371 category. Codes not present in the table
// (reserved or not individually distinguished) render as "unspecified".
func ShipTypeText(code uint32) string {
	if s, ok := shipTypeText[code]; ok {
		return s
	}
	return "unspecified"
}
