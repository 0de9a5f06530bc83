package selection

import (
	"testing"

	"syker-uplink/pkg/models"
)

func TestDeriveLabel(t *testing.T) {
	tests := []struct {
		name      string
		items     []models.Item
		wantLabel string
		wantOK    bool
	}{
		{
			name: "top-level folder from relative paths",
			items: []models.Item{
				{Name: "x.dtl", RelativePath: "FolderA/x.dtl"},
				{Name: "y.dtl", RelativePath: "FolderA/y.dtl"},
			},
			wantLabel: "FolderA",
			wantOK:    true,
		},
		{
			name: "backslash separated path",
			items: []models.Item{
				{Name: "x.dtl", RelativePath: `FolderB\sub\x.dtl`},
			},
			wantLabel: "FolderB",
			wantOK:    true,
		},
		{
			name: "first item with a relative path wins",
			items: []models.Item{
				{Name: "loose.dtl"},
				{Name: "x.dtl", RelativePath: "FolderC/x.dtl"},
			},
			wantLabel: "FolderC",
			wantOK:    true,
		},
		{
			name:      "single loose file strips extension",
			items:     []models.Item{{Name: "report.dtl"}},
			wantLabel: "report",
			wantOK:    true,
		},
		{
			name:      "only last extension is stripped",
			items:     []models.Item{{Name: "report.backup.dtl"}},
			wantLabel: "report.backup",
			wantOK:    true,
		},
		{
			name:      "name that is whitespace after stripping",
			items:     []models.Item{{Name: "  .dtl"}},
			wantLabel: "",
			wantOK:    false,
		},
		{
			name:      "empty selection",
			items:     nil,
			wantLabel: "",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := DeriveLabel(Merge(New(), tt.items))
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v (label %q)", tt.wantOK, ok, label)
			}
			if label != tt.wantLabel {
				t.Errorf("expected label %q, got %q", tt.wantLabel, label)
			}
		})
	}
}

func TestDeriveLabel_NilSelection(t *testing.T) {
	if label, ok := DeriveLabel(nil); ok || label != "" {
		t.Errorf("expected no label for nil selection, got %q", label)
	}
}
