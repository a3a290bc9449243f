package materialize

import "testing"

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content []byte
		want    bool
	}{
		{
			name:    "plain text",
			path:    "readme.md",
			content: []byte("hello world\n"),
			want:    false,
		},
		{
			name:    "binary extension wins regardless of content",
			path:    "logo.png",
			content: []byte("looks like text"),
			want:    true,
		},
		{
			name:    "uppercase extension",
			path:    "ARCHIVE.ZIP",
			content: []byte("x"),
			want:    true,
		},
		{
			name:    "null byte in prefix",
			path:    "data.dat",
			content: []byte{'a', 'b', 0x00, 'c'},
			want:    true,
		},
		{
			name:    "null byte beyond sniffed prefix",
			path:    "data.dat",
			content: append(make([]byte, 0, 600), append(textBytes(513), 0x00)...),
			want:    false,
		},
		{
			name:    "empty file",
			path:    "empty.txt",
			content: []byte{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.path, tt.content); got != tt.want {
				t.Errorf("IsBinary(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// textBytes returns n printable bytes.
func textBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return b
}

func TestIsBinaryDeterministic(t *testing.T) {
	content := []byte{'x', 0x00, 'y'}
	first := IsBinary("file.dat", content)
	for i := 0; i < 10; i++ {
		if IsBinary("file.dat", content) != first {
			t.Fatal("classification must be deterministic for a given file")
		}
	}
}
