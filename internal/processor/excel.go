package processor

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// workbookBytes renders one decoded dataset as an Excel workbook. Door
// counters are written as whole numbers, everything else as the decoded
// float.
func workbookBytes(decoded DecodedFile) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := []interface{}{"Date", "Time", "Milliseconds", valueColumnFor(decoded.FileType)}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write workbook header: %w", err)
	}

	for i, rec := range decoded.Records {
		var value interface{} = rec.Value
		if decoded.IntegerValues {
			value = int64(rec.Value)
		}
		row := []interface{}{rec.Date, rec.Time, rec.Ms, value}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address workbook row: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write workbook row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func valueColumnFor(fileType string) string {
	if column, ok := valueColumns[fileType]; ok {
		return column
	}
	return "Value"
}
