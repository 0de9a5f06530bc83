package processor

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Service converts uploaded Syker .dtl exports into a ZIP archive of Excel
// workbooks. It is side-effect free: uploads come in as bytes and the
// archive goes out as bytes.
type Service struct {
	loc *time.Location
	now func() time.Time
	log zerolog.Logger
}

// NewService creates a processing service decoding timestamps in UTC.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		loc: time.UTC,
		now: time.Now,
		log: log,
	}
}

// Process materializes the uploads, decodes every recognised dataset, and
// returns the assembled archive. Uploaded ZIP archives are expanded and
// their members processed like loose files. The archive label is advisory:
// it only influences the output's name.
func (s *Service) Process(uploads []UploadedItem, archiveLabel string) (*Result, error) {
	if len(uploads) == 0 {
		return nil, ErrNoFiles
	}

	stored, err := s.materialize(uploads)
	if err != nil {
		return nil, err
	}

	decoded, unrecognized := s.decodeAll(stored)
	if len(decoded) == 0 {
		return nil, ErrNoRecognizedFiles
	}

	label := archiveLabel
	if strings.TrimSpace(label) == "" {
		label = fallbackArchiveLabel
	}
	folderName := fmt.Sprintf("%s-Converted%s", sanitizeArchiveLabel(label), s.now().Format("20060102"))

	exports := make([]storedFile, 0, len(decoded))
	filesByType := make(map[string]int)
	var emptyFiles []string
	for _, d := range decoded {
		workbook, err := workbookBytes(d)
		if err != nil {
			return nil, err
		}
		exports = append(exports, storedFile{
			Path: d.FileType + "/" + d.BaseName + ".xlsx",
			Data: workbook,
		})
		filesByType[d.FileType]++
		if len(d.Records) == 0 {
			emptyFiles = append(emptyFiles, d.OriginalName)
		}
	}

	zipBytes, err := buildZip(folderName, exports)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("recognized", len(decoded)).Int("unrecognized", unrecognized).
		Str("archive", folderName+".zip").Msg("processed upload batch")

	return &Result{
		ZipFilename:  folderName + ".zip",
		ZipBytes:     zipBytes,
		Recognized:   len(decoded),
		Unrecognized: unrecognized,
		FilesByType:  filesByType,
		EmptyFiles:   emptyFiles,
	}, nil
}

// materialize flattens the uploads into addressed files, expanding any
// upload that is itself a ZIP archive.
func (s *Service) materialize(uploads []UploadedItem) ([]storedFile, error) {
	var stored []storedFile
	for i, upload := range uploads {
		filename := upload.Filename
		if filename == "" {
			filename = fmt.Sprintf("upload_%d.dtl", i)
		}

		if isZipContent(upload.Content) {
			extracted, err := extractZip(upload.Content, fmt.Sprintf("archive_%d", i))
			if err != nil {
				return nil, err
			}
			stored = append(stored, extracted...)
			continue
		}

		stored = append(stored, storedFile{
			Path: safeRelativePath(filename),
			Data: upload.Content,
		})
	}
	return stored, nil
}

// decodeAll parses every recognised dataset, deduplicating by base filename
// with later uploads winning, and counts the .dtl files nothing matched.
func (s *Service) decodeAll(stored []storedFile) ([]DecodedFile, int) {
	index := make(map[string]int)
	var decoded []DecodedFile
	unrecognized := 0

	for _, file := range stored {
		base := path.Base(file.Path)
		if !strings.HasSuffix(strings.ToLower(base), ".dtl") {
			continue
		}

		fileType, def, ok := matchFileType(base)
		if !ok {
			unrecognized++
			continue
		}

		d := DecodedFile{
			FileType:      fileType,
			OriginalName:  base,
			BaseName:      strings.TrimSuffix(base, path.Ext(base)),
			IntegerValues: usesIntegerEncoding(base),
		}
		d.Records = parseFile(file.Data, def.headerLength, d.IntegerValues, s.loc)

		if pos, exists := index[d.BaseName]; exists {
			decoded[pos] = d
			continue
		}
		index[d.BaseName] = len(decoded)
		decoded = append(decoded, d)
	}
	return decoded, unrecognized
}
