package hashing

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func TestChecksumReaderProxy_ReadAll(t *testing.T) {
	testData := "127.0.0.1\tads.example.com\n"
	proxy := NewMD5ReaderProxy(strings.NewReader(testData))

	allData, err := io.ReadAll(proxy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(allData) != testData {
		t.Errorf("Expected '%s', got '%s'", testData, string(allData))
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error getting checksum: %v", err)
	}

	expected, _ := StringChecksum(testData).GetChecksum()
	if checksum != expected {
		t.Errorf("Expected checksum %s, got %s", expected, checksum)
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	expectedErr := errors.New("read error")
	proxy := NewMD5ReaderProxy(&errorReader{err: expectedErr})

	buf := make([]byte, 10)
	if _, err := proxy.Read(buf); err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestStringChecksum(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// MD5 of empty string
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"hello world", "5eb63bbbe01eeed093cb22bb8f5acdc3"},
	}

	for _, tt := range tests {
		got, err := StringChecksum(tt.input).GetChecksum()
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if got != tt.expected {
			t.Errorf("StringChecksum(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}
