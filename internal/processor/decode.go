package processor

import (
	"encoding/binary"
	"math"
	"path"
	"sort"
	"strings"
	"time"
)

// packetSize is the fixed width of one telemetry sample: a little-endian
// uint32 of unix seconds, one byte of centiseconds, and four value bytes.
const packetSize = 9

// usesIntegerEncoding reports whether the file's value field is an int32
// counter instead of a float32 measurement.
func usesIntegerEncoding(filename string) bool {
	for _, marker := range integerEncodedMarkers {
		if strings.Contains(filename, marker) {
			return true
		}
	}
	return false
}

// matchFileType resolves an upload's base name against the recognised
// dataset patterns. Matching is on the base name only, so uploads nested in
// folders or extracted from archives still resolve.
func matchFileType(filename string) (string, fileTypeDef, bool) {
	base := path.Base(filename)
	if !strings.HasSuffix(strings.ToLower(base), ".dtl") {
		return "", fileTypeDef{}, false
	}
	for fileType, def := range fileTypes {
		if ok, _ := path.Match(def.pattern, base); ok {
			return fileType, def, true
		}
	}
	return "", fileTypeDef{}, false
}

// decodePacket parses one 9-byte sample in the given location.
func decodePacket(packet []byte, integerValues bool, loc *time.Location) Record {
	ts := binary.LittleEndian.Uint32(packet[0:4])
	ms := int(packet[4]) * 10

	var value float64
	raw := binary.LittleEndian.Uint32(packet[5:9])
	if integerValues {
		value = float64(int32(raw))
	} else {
		value = float64(math.Float32frombits(raw))
	}

	t := time.Unix(int64(ts), 0).In(loc)
	return Record{
		Date:  t.Format("2006-01-02"),
		Time:  t.Format("15:04:05"),
		Ms:    ms,
		Value: value,
	}
}

// parseFile decodes every packet after the fixed header. Files whose payload
// is not a whole number of packets fail validation and decode to zero
// records, as do files shorter than their header.
func parseFile(data []byte, headerLength int, integerValues bool, loc *time.Location) []Record {
	if len(data) < headerLength {
		return nil
	}
	payload := data[headerLength:]
	if len(payload)%packetSize != 0 {
		return nil
	}

	records := make([]Record, 0, len(payload)/packetSize)
	for off := 0; off+packetSize <= len(payload); off += packetSize {
		records = append(records, decodePacket(payload[off:off+packetSize], integerValues, loc))
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].Time < records[j].Time
	})
	return records
}
