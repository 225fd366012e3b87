package ais

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotAnAISSentence indicates the input line is not a recognizable
// !AIVDM/!AIVDO sentence.
var ErrNotAnAISSentence = errors.New("ais: not an AIVDM/AIVDO sentence")

// ErrMalformedSentence indicates an !AIVDM/!AIVDO sentence did not carry
// enough comma-delimited fields to contain a payload and fill-bit count.
var ErrMalformedSentence = errors.New("ais: sentence missing payload or fill-bits field")

// ExtractPayload pulls the armored payload field and the fill-bit count
// out of a single !AIVDM/!AIVDO sentence. A trailing CR/LF is stripped;
// the sentence must start with "!AIVDM" or "!AIVDO". It is deliberately forgiving: it does not verify the checksum, does
// not reassemble multi-part sentences, and does not validate sentence
// framing beyond locating the payload and fill-bit fields, all of which
// are the job of an external NMEA transport collaborator.
func ExtractPayload(sentence string) (Payload, int, error) {
	s := strings.TrimRight(sentence, "\r\n")
	if !strings.HasPrefix(s, "!AIVDM") && !strings.HasPrefix(s, "!AIVDO") {
		return "", 0, ErrNotAnAISSentence
	}
	fields := strings.Split(s, ",")
	if len(fields) < 7 {
		return "", 0, ErrMalformedSentence
	}
	payload := fields[5]
	tail := fields[6]
	star := strings.IndexByte(tail, '*')
	fillBitsStr := tail
	if star >= 0 {
		fillBitsStr = tail[:star]
	}
	fillBits, err := strconv.Atoi(fillBitsStr)
	if err != nil {
		return "", 0, ErrMalformedSentence
	}
	return Payload(payload), fillBits, nil
}
