package processor

// UploadedItem is a single file received from an HTTP upload.
type UploadedItem struct {
	Filename string
	Content  []byte
}

// Record is one decoded telemetry sample.
type Record struct {
	Date  string
	Time  string
	Ms    int
	Value float64
}

// DecodedFile holds one parsed .dtl dataset.
type DecodedFile struct {
	FileType      string
	OriginalName  string
	BaseName      string
	Records       []Record
	IntegerValues bool
}

// Result is returned to the caller once processing completes.
type Result struct {
	ZipFilename  string
	ZipBytes     []byte
	Recognized   int
	Unrecognized int
	FilesByType  map[string]int
	EmptyFiles   []string
}

// fileTypeDef pairs a dataset's filename glob with the fixed header length
// that precedes its packet stream.
type fileTypeDef struct {
	pattern      string
	headerLength int
}

// fileTypes lists every recognised Syker dataset. Uploads whose names match
// none of these patterns are counted but not decoded.
var fileTypes = map[string]fileTypeDef{
	"co2days":    {"*DataLogCO2Days.dtl", 39},
	"co2months":  {"*DataLogCO2Months.dtl", 44},
	"co2year":    {"*DataLogCO2Year.dtl", 43},
	"doorclose":  {"*DataLogDoorClose.dtl", 46},
	"doordays":   {"*DataLogDoorDays.dtl", 39},
	"doormonth":  {"*DataLogDoorMonth.dtl", 44},
	"dooropen":   {"*DataLogDoorOpen.dtl", 46},
	"dooryear":   {"*DataLogDoorYear.dtl", 43},
	"wastedays":  {"*DataLogWasteDays.dtl", 39},
	"wastemont":  {"*DataLogWasteMont.dtl", 44},
	"wasteyear":  {"*DataLogWasteYear.dtl", 43},
	"weightdiff": {"*DataLogWeighDiff.dtl", 46},
	"trendtemp":  {"*TrendTemperature.dtl", 46},
	"weightday":  {"*WeightDay.dtl", 46},
}

// integerEncodedMarkers identifies the datasets whose value field is a
// little-endian int32 rather than a float32.
var integerEncodedMarkers = []string{"DataLogDoorDays", "DataLogDoorMonth", "DataLogDoorYear"}

// valueColumns maps each dataset type to the header its value column gets in
// the exported workbook.
var valueColumns = map[string]string{
	"co2days":    "CO2 Emissions Prevented (kg)",
	"co2months":  "CO2 Emissions Prevented (kg)",
	"co2year":    "CO2 Emissions Prevented (kg)",
	"doorclose":  "Instances of Door Closures",
	"doordays":   "Instances of Door Actions",
	"doormonth":  "Door Openings per Day",
	"dooropen":   "Instances of Door Openings",
	"dooryear":   "Door Openings per Day",
	"wastedays":  "Cummulative Waste per Day (kg)",
	"wastemont":  "Total Waste per Day (kg)",
	"wasteyear":  "Total Waste per day (kg)",
	"weightdiff": "Weight Difference across door open and close (kg)",
	"trendtemp":  "Recorded Temperature (°C)",
	"weightday":  "Recorded Weight (kg)",
}
