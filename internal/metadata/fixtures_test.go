package metadata

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// writeWAV создает WAV-файл с тишиной заданной длины в сэмплах
func writeWAV(t *testing.T, path string, sampleRate beep.SampleRate, samples int) {
	t.Helper()

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	defer file.Close()

	format := beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(file, beep.Silence(samples), format); err != nil {
		t.Fatalf("Ошибка кодирования WAV: %v", err)
	}
}

// id3v23 собирает тег ID3v2.3 с текстовыми фреймами
func id3v23(frames [][2]string) []byte {
	var body []byte
	for _, f := range frames {
		text := append([]byte{0x00}, []byte(f[1])...) // ISO-8859-1
		body = append(body, []byte(f[0])...)
		body = binary.BigEndian.AppendUint32(body, uint32(len(text)))
		body = append(body, 0x00, 0x00)
		body = append(body, text...)
	}

	size := len(body)
	header := []byte{'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(size >> 21 & 0x7f),
		byte(size >> 14 & 0x7f),
		byte(size >> 7 & 0x7f),
		byte(size & 0x7f),
	}
	return append(header, body...)
}

// writeFile записывает произвольное содержимое
func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
}
