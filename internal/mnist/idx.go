package mnist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// IDX magic numbers.
const (
	ImageMagic = 0x00000803 // 2051
	LabelMagic = 0x00000801 // 2049
)

// MaxSide bounds the rows and columns accepted from an IDX image header.
const MaxSide = 1 << 12

// Header describes an IDX image file.
type Header struct {
	Count int // Number of images declared by the file
	Rows  int
	Cols  int
}

// ReadImages reads an IDX image stream.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
//
// At most limit images are read; limit <= 0 reads all of them.
func ReadImages(r io.Reader, limit int) ([][]byte, Header, error) {
	var raw [4]uint32
	if err := binary.Read(r, binary.BigEndian, &raw); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read image header: %w", err)
	}
	if raw[0] != ImageMagic {
		return nil, Header{}, fmt.Errorf("%w: got %d, want %d", ErrInvalidMagic, raw[0], ImageMagic)
	}

	h := Header{Count: int(raw[1]), Rows: int(raw[2]), Cols: int(raw[3])}
	if h.Rows < 1 || h.Rows > MaxSide || h.Cols < 1 || h.Cols > MaxSide {
		return nil, h, fmt.Errorf("%w: image size %dx%d not in [1, %d]",
			ErrMalformedRecord, h.Rows, h.Cols, MaxSide)
	}
	n := h.Count
	if limit > 0 && limit < n {
		n = limit
	}

	size := h.Rows * h.Cols
	var images [][]byte
	for i := 0; i < n; i++ {
		img := make([]byte, size)
		if _, err := io.ReadFull(r, img); err != nil {
			return nil, h, fmt.Errorf("failed to read image %d: %w", i, err)
		}
		images = append(images, img)
	}

	return images, h, nil
}

// ReadLabels reads an IDX label stream.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
//
// At most limit labels are read; limit <= 0 reads all of them.
func ReadLabels(r io.Reader, limit int) ([]byte, error) {
	var raw [2]uint32
	if err := binary.Read(r, binary.BigEndian, &raw); err != nil {
		return nil, fmt.Errorf("failed to read label header: %w", err)
	}
	if raw[0] != LabelMagic {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidMagic, raw[0], LabelMagic)
	}

	n := int(raw[1])
	if limit > 0 && limit < n {
		n = limit
	}

	labels := make([]byte, 0, min(n, 1<<16))
	buf := make([]byte, 4096)
	for len(labels) < n {
		chunk := buf[:min(len(buf), n-len(labels))]
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, fmt.Errorf("failed to read labels: %w", err)
		}
		labels = append(labels, chunk...)
	}

	for i, l := range labels {
		if int(l) >= Classes {
			return nil, fmt.Errorf("%w: label %d at index %d", ErrLabelRange, l, i)
		}
	}

	return labels, nil
}

// ReadImagesFile opens path and reads it with ReadImages.
func ReadImagesFile(path string, limit int) ([][]byte, Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer file.Close()

	return ReadImages(bufio.NewReader(file), limit)
}

// ReadLabelsFile opens path and reads it with ReadLabels.
func ReadLabelsFile(path string, limit int) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadLabels(bufio.NewReader(file), limit)
}
