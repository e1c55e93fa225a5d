package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCaptureWriterClipsBufferNotClient(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 8}

	payload := bytes.Repeat([]byte("x"), 20)
	if _, err := cw.Write(payload); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// the client always receives the full body
	if got := rec.Body.Len(); got != 20 {
		t.Errorf("client body = %d bytes, want 20", got)
	}
	// the capture buffer is bounded, and size records the true length
	if cw.buf.Len() != 8 {
		t.Errorf("captured = %d bytes, want 8", cw.buf.Len())
	}
	if cw.size != 20 {
		t.Errorf("size = %d, want 20", cw.size)
	}
}

func TestShouldCache(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		size, limit int64
		want        bool
	}{
		{"ok within limit", http.StatusOK, 100, 1024, true},
		{"ok at limit", http.StatusOK, 1024, 1024, true},
		{"clipped body", http.StatusOK, 2048, 1024, false},
		{"unlimited capture", http.StatusOK, 1 << 30, 0, true},
		{"non-200", http.StatusNotFound, 10, 1024, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldCache(tc.status, tc.size, tc.limit); got != tc.want {
				t.Errorf("shouldCache(%d, %d, %d) = %v, want %v", tc.status, tc.size, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`{"items":[]}`)
	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok || status != http.StatusOK {
		t.Fatalf("decode = (%d, %v)", status, ok)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("header lost: %v", gotHdr)
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}

	// a payload cut mid-header must be rejected, not served
	if _, _, _, ok := decodePayload(payload[:6]); ok {
		t.Error("truncated payload decoded as valid")
	}
}
