package sheets

import (
	"context"
	"testing"
)

func TestNewAppender_RequiresSpreadsheetID(t *testing.T) {
	_, err := NewAppender(context.Background(), Config{CredentialsFile: "creds.json"})
	if err == nil {
		t.Fatalf("expected error for missing spreadsheet id")
	}
}

func TestNewAppender_RequiresCredentials(t *testing.T) {
	_, err := NewAppender(context.Background(), Config{SpreadsheetID: "sheet-id"})
	if err == nil {
		t.Fatalf("expected error for missing credentials")
	}
}
