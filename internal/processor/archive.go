package processor

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// fallbackArchiveLabel names the output when the client sent no usable
// label.
const fallbackArchiveLabel = "Syker_Processed_Data"

var (
	labelIllegalRuns = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	labelDashRuns    = regexp.MustCompile(`-{2,}`)
)

// sanitizeArchiveLabel reduces a client-provided label to a
// filesystem-safe archive name.
func sanitizeArchiveLabel(label string) string {
	sanitized := labelIllegalRuns.ReplaceAllString(strings.TrimSpace(label), "-")
	sanitized = labelDashRuns.ReplaceAllString(sanitized, "-")
	sanitized = strings.Trim(sanitized, "-_")
	if sanitized == "" {
		return fallbackArchiveLabel
	}
	return sanitized
}

// storedFile is one materialized upload, addressed by a sanitized
// slash-separated path.
type storedFile struct {
	Path string
	Data []byte
}

// isZipContent reports whether the bytes carry a readable ZIP archive.
func isZipContent(data []byte) bool {
	_, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	return err == nil
}

// extractZip unpacks an uploaded archive under the given prefix, skipping
// directories. Member names are sanitized so hostile archives cannot escape
// the prefix.
func extractZip(data []byte, prefix string) ([]storedFile, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded archive: %w", err)
	}

	var files []storedFile
	for _, member := range reader.File {
		if member.FileInfo().IsDir() {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to read archive member %s: %w", member.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read archive member %s: %w", member.Name, err)
		}
		files = append(files, storedFile{
			Path: prefix + "/" + safeRelativePath(member.Name),
			Data: content,
		})
	}
	return files, nil
}

// safeRelativePath strips path-traversal components from an upload's name.
func safeRelativePath(name string) string {
	parts := strings.Split(strings.ReplaceAll(name, `\`, "/"), "/")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			continue
		}
		kept = append(kept, part)
	}
	if len(kept) == 0 {
		return "unnamed_uploaded_file.dtl"
	}
	return strings.Join(kept, "/")
}

// buildZip assembles the exported workbooks into one deflated archive, each
// entry nested under the archive's folder name.
func buildZip(folderName string, entries []storedFile) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, entry := range entries {
		w, err := writer.Create(folderName + "/" + entry.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry: %w", err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
