package system

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testTV    = 16
	testEvent = testTV + 8
)

func inputEvent(typ, code uint16, value int32) []byte {
	rec := make([]byte, testEvent)
	binary.LittleEndian.PutUint16(rec[testTV:], typ)
	binary.LittleEndian.PutUint16(rec[testTV+2:], code)
	binary.LittleEndian.PutUint32(rec[testTV+4:], uint32(value))
	return rec
}

func TestFindExitKey(t *testing.T) {
	const evSyn = 0x00
	tests := []struct {
		name   string
		events [][]byte
		code   uint16
		found  bool
	}{
		{"escape press", [][]byte{inputEvent(evKey, keyEsc, 1)}, keyEsc, true},
		{"f4 after sync", [][]byte{inputEvent(evSyn, 0, 0), inputEvent(evKey, keyF4, 1)}, keyF4, true},
		{"release ignored", [][]byte{inputEvent(evKey, keyEsc, 0)}, 0, false},
		{"autorepeat ignored", [][]byte{inputEvent(evKey, keyF4, 2)}, 0, false},
		{"other key", [][]byte{inputEvent(evKey, 30, 1)}, 0, false},
		{"wrong event type", [][]byte{inputEvent(0x04, keyEsc, 1)}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf []byte
			for _, ev := range tt.events {
				buf = append(buf, ev...)
			}
			code, ok := findExitKey(buf, testTV, testEvent)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestFindExitKeyIgnoresPartialRecord(t *testing.T) {
	rec := inputEvent(evKey, keyEsc, 1)
	_, ok := findExitKey(rec[:testEvent-1], testTV, testEvent)
	assert.False(t, ok)
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "ESC", keyName(keyEsc))
	assert.Equal(t, "F4", keyName(keyF4))
}
