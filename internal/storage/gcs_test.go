package storage

import "testing"

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri        string
		wantBucket string
		wantObject string
		wantErr    bool
	}{
		{"gs://docs-bucket/uploads/scan.png", "docs-bucket", "uploads/scan.png", false},
		{"gs://docs-bucket/uploads/nested/deep.jpg", "docs-bucket", "uploads/nested/deep.jpg", false},
		{"https://storage.googleapis.com/docs-bucket/uploads/scan.png", "", "", true},
		{"gs://docs-bucket", "", "", true},
		{"gs:///uploads/scan.png", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		bucket, object, err := parseURI(tt.uri)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseURI(%q) expected error, got bucket=%q object=%q", tt.uri, bucket, object)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseURI(%q) unexpected error: %v", tt.uri, err)
			continue
		}
		if bucket != tt.wantBucket || object != tt.wantObject {
			t.Errorf("parseURI(%q) = (%q, %q), want (%q, %q)", tt.uri, bucket, object, tt.wantBucket, tt.wantObject)
		}
	}
}
