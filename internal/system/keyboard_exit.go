package system

import "encoding/binary"

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc = 1
	keyF4  = 62

	keyPressed = 1
)

// findExitKey scans a buffer of input_event records for a press of ESC or F4.
func findExitKey(buf []byte, tvSize, eventSize int) (uint16, bool) {
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		// type and code are immediately after timeval.
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && value == keyPressed && (code == keyEsc || code == keyF4) {
			return code, true
		}
	}
	return 0, false
}

func keyName(code uint16) string {
	switch code {
	case keyEsc:
		return "ESC"
	case keyF4:
		return "F4"
	default:
		return "key"
	}
}
