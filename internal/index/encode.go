package index

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"folio/internal/readtime"
)

var errCorrupt = errors.New("index: corrupt stats record")

// Key addresses the stats of body read at wpm words per minute:
// sha256(wpm(4) + body).
func Key(body string, wpm int) []byte {
	h := sha256.New()
	tmp := make([]byte, 4)
	binary.BigEndian.PutUint32(tmp, uint32(wpm))
	h.Write(tmp)
	h.Write([]byte(body))
	return h.Sum(nil)
}

// value = words(4) + minutes(4)
func encodeStats(s readtime.Stats) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], uint32(s.Words))
	binary.BigEndian.PutUint32(buf[4:8], uint32(s.Minutes))
	return buf
}

func decodeStats(v []byte) (readtime.Stats, error) {
	if len(v) != 8 {
		return readtime.Stats{}, errCorrupt
	}
	s := readtime.Stats{
		Words:   int(binary.BigEndian.Uint32(v[0:4])),
		Minutes: int(binary.BigEndian.Uint32(v[4:8])),
	}
	if s.Minutes < 1 {
		return readtime.Stats{}, errCorrupt
	}
	return s, nil
}
