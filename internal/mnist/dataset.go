package mnist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/born-ml/neuro/internal/parallel"
)

// Dataset geometry.
const (
	Classes = 10
	Side    = 28
	Pixels  = Side * Side
)

// Standard file names of the official distribution.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// Dataset holds raw MNIST images and their labels.
type Dataset struct {
	Images [][]byte // [num_samples][rows*cols], 0-255
	Labels []byte   // [num_samples], 0-9
	Rows   int
	Cols   int
}

// Sample is one example in the form a Network consumes.
type Sample struct {
	Inputs  []float64 // Normalized pixels
	Targets []float64 // One-hot label
	Label   int
}

// Load reads the training or test split from dataDir.
//
// Expected files in dataDir:
//   - train-images-idx3-ubyte, train-labels-idx1-ubyte (train == true)
//   - t10k-images-idx3-ubyte, t10k-labels-idx1-ubyte (train == false)
//
// maxSamples <= 0 loads the whole split.
func Load(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	imageFile, labelFile := TestImagesFile, TestLabelsFile
	if train {
		imageFile, labelFile = TrainImagesFile, TrainLabelsFile
	}

	images, h, err := ReadImagesFile(filepath.Join(dataDir, imageFile), maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	if h.Rows*h.Cols != Pixels {
		return nil, fmt.Errorf("%w: image size %dx%d, want %dx%d",
			ErrMalformedRecord, h.Rows, h.Cols, Side, Side)
	}

	labels, err := ReadLabelsFile(filepath.Join(dataDir, labelFile), maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	if len(images) != len(labels) {
		return nil, fmt.Errorf("%w: %d images, %d labels", ErrCountMismatch, len(images), len(labels))
	}

	return &Dataset{Images: images, Labels: labels, Rows: h.Rows, Cols: h.Cols}, nil
}

// LoadCSV reads Kaggle-style CSV data with a header row:
//
//	label,pixel0,pixel1,...,pixel783
//	5,0,0,12,...,0
//
// maxSamples <= 0 reads every row.
func LoadCSV(r io.Reader, maxSamples int) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: CSV is empty or missing header", ErrMalformedRecord)
		}
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	d := &Dataset{Rows: Side, Cols: Side}
	for row := 1; maxSamples <= 0 || len(d.Labels) < maxSamples; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if len(record) != Pixels+1 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d",
				ErrMalformedRecord, row, len(record), Pixels+1)
		}

		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid label at row %d: %w", ErrMalformedRecord, row, err)
		}
		if label < 0 || label >= Classes {
			return nil, fmt.Errorf("%w: %d at row %d", ErrLabelRange, label, row)
		}

		img := make([]byte, Pixels)
		for j := range img {
			v, err := strconv.ParseUint(record[j+1], 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid pixel at row %d, column %d: %w",
					ErrMalformedRecord, row, j+1, err)
			}
			img[j] = byte(v)
		}

		d.Images = append(d.Images, img)
		d.Labels = append(d.Labels, byte(label))
	}

	return d, nil
}

// LoadCSVFile opens path and reads it with LoadCSV.
func LoadCSVFile(path string, maxSamples int) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadCSV(file, maxSamples)
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Images)
}

// Split splits the dataset into leading and trailing parts, the trailing
// one holding the given fraction of samples.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset) {
	return d.SplitAt(int(float64(d.Len()) * (1.0 - ratio)))
}

// SplitAt splits the dataset before sample idx, clamped to [0, Len].
func (d *Dataset) SplitAt(idx int) (*Dataset, *Dataset) {
	idx = max(0, min(idx, d.Len()))

	return &Dataset{Images: d.Images[:idx], Labels: d.Labels[:idx], Rows: d.Rows, Cols: d.Cols},
		&Dataset{Images: d.Images[idx:], Labels: d.Labels[idx:], Rows: d.Rows, Cols: d.Cols}
}

// Samples converts every image and label into network vectors.
func (d *Dataset) Samples(cfg parallel.Config) []Sample {
	samples := make([]Sample, d.Len())
	parallel.For(len(samples), func(i int) {
		samples[i] = Sample{
			Inputs:  NormalizeImage(d.Images[i]),
			Targets: OneHot(int(d.Labels[i]), Classes),
			Label:   int(d.Labels[i]),
		}
	}, cfg)
	return samples
}

// Render draws image i as text: ' ' for 0, 'O' for 255, '.' otherwise,
// followed by its label.
func (d *Dataset) Render(i int) string {
	var sb strings.Builder
	img := d.Images[i]
	for r := 0; r < d.Rows; r++ {
		for c := 0; c < d.Cols; c++ {
			switch img[r*d.Cols+c] {
			case 0:
				sb.WriteByte(' ')
			case 255:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strconv.Itoa(int(d.Labels[i])))
	return sb.String()
}

// Normalize maps a pixel intensity into [0, 1].
func Normalize(p byte) float64 {
	return float64(p) / 255.0
}

// NormalizeImage normalizes every pixel of img.
func NormalizeImage(img []byte) []float64 {
	out := make([]float64, len(img))
	for i, p := range img {
		out[i] = Normalize(p)
	}
	return out
}

// OneHot returns a vector of length classes with 1 at label and 0 elsewhere.
func OneHot(label, classes int) []float64 {
	out := make([]float64, classes)
	if label >= 0 && label < classes {
		out[label] = 1
	}
	return out
}
