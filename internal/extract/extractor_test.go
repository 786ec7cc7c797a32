package extract

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	putCalls    int
	deleteCalls int
	putErr      error
	deleteErr   error
	lastURI     string
}

func (f *fakeStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	f.putCalls++
	if f.putErr != nil {
		return "", f.putErr
	}
	f.lastURI = "gs://test-bucket/uploads/" + name
	return f.lastURI, nil
}

func (f *fakeStore) Delete(ctx context.Context, uri string) error {
	f.deleteCalls++
	return f.deleteErr
}

type fakeOCR struct {
	calls int
	text  string
	err   error
}

func (f *fakeOCR) DetectImageText(ctx context.Context, imageURI string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestExtractPastedTextVerbatim(t *testing.T) {
	e := NewExtractor(&fakeStore{}, &fakeOCR{})

	const pasted = "  Invoice #123, amount due $500  \nsecond line"
	text, err := e.Extract(context.Background(), Input{PastedText: pasted})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != pasted {
		t.Errorf("pasted text not returned verbatim: %q", text)
	}
}

func TestExtractUnsupportedKind(t *testing.T) {
	store := &fakeStore{}
	ocrSvc := &fakeOCR{}
	e := NewExtractor(store, ocrSvc)

	_, err := e.Extract(context.Background(), Input{File: &Document{Name: "notes.docx", Kind: Kind("docx")}})
	if !errors.Is(err, ErrUnsupportedMediaKind) {
		t.Fatalf("expected ErrUnsupportedMediaKind, got %v", err)
	}
	if store.putCalls != 0 || ocrSvc.calls != 0 {
		t.Error("unsupported kind must not touch storage or OCR")
	}
}

func TestExtractImageStagesAndCleansUp(t *testing.T) {
	store := &fakeStore{}
	ocrSvc := &fakeOCR{text: "Kontoauszug 2024"}
	e := NewExtractor(store, ocrSvc)

	text, err := e.Extract(context.Background(), Input{File: &Document{Name: "scan.png", Kind: KindPNG, Data: []byte{1, 2}}})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "Kontoauszug 2024" {
		t.Errorf("unexpected text: %q", text)
	}
	if store.putCalls != 1 || ocrSvc.calls != 1 {
		t.Errorf("expected one put and one OCR call, got %d/%d", store.putCalls, ocrSvc.calls)
	}
	if store.deleteCalls != 1 {
		t.Errorf("staged image must be deleted after success, got %d delete calls", store.deleteCalls)
	}
}

func TestExtractImageCleansUpOnOCRFailure(t *testing.T) {
	store := &fakeStore{}
	ocrSvc := &fakeOCR{err: errors.New("vision unavailable")}
	e := NewExtractor(store, ocrSvc)

	text, err := e.Extract(context.Background(), Input{File: &Document{Name: "scan.jpg", Kind: KindJPG, Data: []byte{1}}})
	if err != nil {
		t.Fatalf("OCR failure must degrade to empty text, got error %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
	if store.deleteCalls != 1 {
		t.Errorf("staged image must be deleted after OCR failure, got %d delete calls", store.deleteCalls)
	}
}

func TestExtractImageStagingFailureDegrades(t *testing.T) {
	store := &fakeStore{putErr: errors.New("bucket unreachable")}
	ocrSvc := &fakeOCR{}
	e := NewExtractor(store, ocrSvc)

	text, err := e.Extract(context.Background(), Input{File: &Document{Name: "scan.jpeg", Kind: KindJPEG, Data: []byte{1}}})
	if err != nil {
		t.Fatalf("staging failure must degrade to empty text, got error %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
	if ocrSvc.calls != 0 {
		t.Error("OCR must not run when staging failed")
	}
	if store.deleteCalls != 0 {
		t.Error("nothing to clean up when staging failed")
	}
}

func TestExtractInvalidPDFDegrades(t *testing.T) {
	e := NewExtractor(&fakeStore{}, &fakeOCR{})

	text, err := e.Extract(context.Background(), Input{File: &Document{Name: "broken.pdf", Kind: KindPDF, Data: []byte("not a pdf")}})
	if err != nil {
		t.Fatalf("PDF parse failure must degrade to empty text, got error %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestKindFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Kind
	}{
		{"pdf", KindPDF},
		{"PDF", KindPDF},
		{"png", KindPNG},
		{"jpg", KindJPG},
		{"JPEG", KindJPEG},
		{"txt", KindText},
		{"docx", ""},
	}
	for _, tt := range tests {
		if got := KindFromExtension(tt.ext); got != tt.want {
			t.Errorf("KindFromExtension(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestInputEmpty(t *testing.T) {
	if !(Input{}).Empty() {
		t.Error("zero input should be empty")
	}
	if !(Input{PastedText: "   \n\t"}).Empty() {
		t.Error("whitespace-only pasted text should count as empty")
	}
	if (Input{PastedText: "x"}).Empty() {
		t.Error("pasted text should not be empty")
	}
	if (Input{File: &Document{Kind: KindPDF}}).Empty() {
		t.Error("file input should not be empty")
	}
}
