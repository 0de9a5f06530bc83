package processor

import (
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func floatPacket(ts uint32, centis byte, value float32) []byte {
	p := make([]byte, packetSize)
	binary.LittleEndian.PutUint32(p[0:4], ts)
	p[4] = centis
	binary.LittleEndian.PutUint32(p[5:9], math.Float32bits(value))
	return p
}

func intPacket(ts uint32, centis byte, value int32) []byte {
	p := make([]byte, packetSize)
	binary.LittleEndian.PutUint32(p[0:4], ts)
	p[4] = centis
	binary.LittleEndian.PutUint32(p[5:9], uint32(value))
	return p
}

func dtlFile(headerLength int, packets ...[]byte) []byte {
	data := make([]byte, headerLength)
	for _, p := range packets {
		data = append(data, p...)
	}
	return data
}

func TestDecodePacket_FloatValue(t *testing.T) {
	// 2021-03-04 05:06:07 UTC
	rec := decodePacket(floatPacket(1614834367, 25, 21.5), false, time.UTC)

	if rec.Date != "2021-03-04" {
		t.Errorf("expected date 2021-03-04, got %q", rec.Date)
	}
	if rec.Time != "05:06:07" {
		t.Errorf("expected time 05:06:07, got %q", rec.Time)
	}
	if rec.Ms != 250 {
		t.Errorf("expected 250 ms, got %d", rec.Ms)
	}
	if rec.Value != 21.5 {
		t.Errorf("expected value 21.5, got %v", rec.Value)
	}
}

func TestDecodePacket_IntegerValue(t *testing.T) {
	rec := decodePacket(intPacket(1614834367, 0, -42), true, time.UTC)
	if rec.Value != -42 {
		t.Errorf("expected integer value -42, got %v", rec.Value)
	}
}

func TestParseFile_SortsByDateThenTime(t *testing.T) {
	data := dtlFile(46,
		floatPacket(1614834367, 0, 2), // 2021-03-04 05:06:07
		floatPacket(1614747967, 0, 1), // 2021-03-03 05:06:07
	)

	records := parseFile(data, 46, false, time.UTC)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Value != 1 || records[1].Value != 2 {
		t.Errorf("expected records sorted chronologically, got %v then %v",
			records[0].Value, records[1].Value)
	}
}

func TestParseFile_RejectsMisalignedPayload(t *testing.T) {
	data := append(dtlFile(46, floatPacket(1614834367, 0, 1)), 0xFF)
	if records := parseFile(data, 46, false, time.UTC); len(records) != 0 {
		t.Errorf("expected a misaligned payload to decode to zero records, got %d", len(records))
	}
}

func TestParseFile_ShorterThanHeader(t *testing.T) {
	if records := parseFile(make([]byte, 10), 46, false, time.UTC); len(records) != 0 {
		t.Errorf("expected a truncated file to decode to zero records, got %d", len(records))
	}
}

func TestMatchFileType(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
		wantOK   bool
	}{
		{"Unit7-TrendTemperature.dtl", "trendtemp", true},
		{"Kitchen DataLogDoorDays.dtl", "doordays", true},
		{"nested/folder/Unit7-TrendTemperature.dtl", "trendtemp", true},
		{"notes.txt", "", false},
		{"Mystery.dtl", "", false},
	}
	for _, tt := range tests {
		fileType, _, ok := matchFileType(tt.filename)
		if ok != tt.wantOK || fileType != tt.wantType {
			t.Errorf("matchFileType(%q) = (%q, %v), expected (%q, %v)",
				tt.filename, fileType, ok, tt.wantType, tt.wantOK)
		}
	}
}

func TestUsesIntegerEncoding(t *testing.T) {
	if !usesIntegerEncoding("Kitchen DataLogDoorDays.dtl") {
		t.Error("expected door counters to use integer encoding")
	}
	if usesIntegerEncoding("Unit7-TrendTemperature.dtl") {
		t.Error("expected temperature trends to use float encoding")
	}
}
